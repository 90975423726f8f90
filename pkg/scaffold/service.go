// Package scaffold wires the project creator, GitHub provisioner, git and
// conda into the interactive project setup flow.
package scaffold

import (
	"context"
	"log/slog"
	"os"

	"thoreinstein.com/projinit/pkg/github"
	"thoreinstein.com/projinit/pkg/project"
)

// Prompter asks the user questions. ui.Prompter implements it.
type Prompter interface {
	Text(label, def string) (string, error)
	Required(label string) (string, error)
	Select(label string, options []string) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// Reporter prints progress for the user. ui.Output implements it.
type Reporter interface {
	Info(format string, a ...any)
	Success(format string, a ...any)
	Warning(format string, a ...any)
	Error(format string, a ...any)
}

// StructureCreator lays out the project directory.
type StructureCreator interface {
	Create(name string, t project.Type) (*project.Project, error)
}

// RepoProvisioner finds or creates a GitHub repository.
type RepoProvisioner interface {
	Ensure(ctx context.Context, name string) (*github.Repository, error)
}

// ProvisionerFactory builds a RepoProvisioner on first use, so that flows
// which never touch GitHub never authenticate.
type ProvisionerFactory func(ctx context.Context) (RepoProvisioner, error)

// GitInitializer turns a directory into a pushed repository.
type GitInitializer interface {
	Init(ctx context.Context, dir, remoteURL string) error
}

// RepoCloner clones a remote repository.
type RepoCloner interface {
	Clone(ctx context.Context, remoteURL, target string) error
}

// EnvManager creates conda environments.
type EnvManager interface {
	Create(ctx context.Context, name, projectDir string) (string, error)
	CreateFromFile(ctx context.Context, descriptorPath, name string) error
	DescriptorName() string
}

// Service runs the project setup flow.
type Service struct {
	Prompter       Prompter
	Out            Reporter
	Creator        StructureCreator
	NewProvisioner ProvisionerFactory
	Initializer    GitInitializer
	Cloner         RepoCloner
	Env            EnvManager

	SSHHost string       // Clone through git@<SSHHost>:owner/repo.git when set
	Logger  *slog.Logger // Debug records; slog.Default() when nil
}

func (s *Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
