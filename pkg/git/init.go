package git

import (
	"context"
	"log/slog"

	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/runner"
)

// InitOptions configures the initial commit and push.
type InitOptions struct {
	Branch        string // Branch the initial commit is pushed to (default: main)
	Remote        string // Remote name (default: origin)
	CommitMessage string // Initial commit message (default: "Initial commit")
}

func (o InitOptions) withDefaults() InitOptions {
	if o.Branch == "" {
		o.Branch = "main"
	}
	if o.Remote == "" {
		o.Remote = "origin"
	}
	if o.CommitMessage == "" {
		o.CommitMessage = "Initial commit"
	}
	return o
}

// Step is one git invocation in the initialization sequence.
type Step struct {
	Name string
	Args []string
}

// Initializer turns a freshly scaffolded directory into a pushed repository.
type Initializer struct {
	runner runner.CommandRunner
	opts   InitOptions
	logger *slog.Logger
}

// NewInitializer creates an Initializer that runs git through r.
func NewInitializer(r runner.CommandRunner, opts InitOptions) *Initializer {
	return &Initializer{runner: r, opts: opts.withDefaults(), logger: slog.Default()}
}

// Steps returns the ordered git steps for remoteURL.
func (i *Initializer) Steps(remoteURL string) []Step {
	o := i.opts
	return []Step{
		{Name: "init", Args: []string{"init"}},
		{Name: "add", Args: []string{"add", "."}},
		{Name: "commit", Args: []string{"commit", "-m", o.CommitMessage}},
		{Name: "remote", Args: []string{"remote", "add", o.Remote, remoteURL}},
		{Name: "branch", Args: []string{"branch", "-M", o.Branch}},
		{Name: "push", Args: []string{"push", "-u", o.Remote, o.Branch}},
	}
}

// Init runs every step in dir, stopping at the first failure.
func (i *Initializer) Init(ctx context.Context, dir, remoteURL string) error {
	if remoteURL == "" {
		return projerrors.NewValidationError("remote URL", "", "empty URL provided")
	}

	for _, step := range i.Steps(remoteURL) {
		i.logger.Debug("git step", "step", step.Name, "dir", dir)
		if err := i.runner.Run(ctx, dir, "git", step.Args...); err != nil {
			return projerrors.NewGitErrorWithCause(step.Name, dir, "git "+step.Name+" failed", err)
		}
	}

	return nil
}
