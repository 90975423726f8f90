package cmd

import (
	"context"
	"log/slog"

	"thoreinstein.com/projinit/pkg/conda"
	"thoreinstein.com/projinit/pkg/config"
	"thoreinstein.com/projinit/pkg/credentials"
	"thoreinstein.com/projinit/pkg/git"
	"thoreinstein.com/projinit/pkg/github"
	"thoreinstein.com/projinit/pkg/project"
	"thoreinstein.com/projinit/pkg/runner"
	"thoreinstein.com/projinit/pkg/scaffold"
	"thoreinstein.com/projinit/pkg/ui"
)

type secretPrompter interface {
	Secret(label string) (string, error)
}

// Replaceable in tests.
var (
	commandRunner     runner.CommandRunner = runner.NewReal()
	newPrompter                            = func() scaffold.Prompter { return ui.NewTerminalPrompter() }
	newSecretPrompter                      = func() secretPrompter { return ui.NewTerminalPrompter() }
	newTokenStore                          = func() credentials.Store { return credentials.NewKeychainStore() }
	apiClientOptions  []github.APIClientOption
)

func newLoader(cfg *config.Config) *credentials.Loader {
	l := credentials.NewLoader(cfg)
	l.Store = newTokenStore()
	return l
}

func newAPIClient(token string) (*github.APIClient, error) {
	opts := append([]github.APIClientOption{github.WithAPILogger(slog.Default())}, apiClientOptions...)
	return github.NewAPIClient(token, opts...)
}

func newCondaManager(cfg *config.Config) *conda.Manager {
	return conda.NewManager(commandRunner, conda.Options{
		Command:       cfg.Conda.Command,
		PythonVersion: cfg.Conda.PythonVersion,
		Descriptor:    cfg.Conda.Descriptor,
	})
}

// newService wires a scaffold.Service. token may be empty for flows that
// never reach GitHub; the provisioner is only built on first use.
func newService(cfg *config.Config, token string) *scaffold.Service {
	return &scaffold.Service{
		Prompter: newPrompter(),
		Out:      out,
		Creator:  project.NewCreator(cfg.Root, cfg.Template.Notebook),
		NewProvisioner: func(ctx context.Context) (scaffold.RepoProvisioner, error) {
			client, err := newAPIClient(token)
			if err != nil {
				return nil, err
			}
			return github.NewProvisioner(client, github.ProvisionOptions{
				Create: github.CreateOptions{
					Private:     cfg.GitHub.Private,
					Description: cfg.GitHub.Description,
				},
				StrictLookup: cfg.GitHub.StrictLookup,
			}), nil
		},
		Initializer: git.NewInitializer(commandRunner, git.InitOptions{
			Branch:        cfg.Git.DefaultBranch,
			Remote:        cfg.Git.Remote,
			CommitMessage: cfg.Git.CommitMessage,
		}),
		Cloner:  git.NewCloner(commandRunner),
		Env:     newCondaManager(cfg),
		SSHHost: cfg.Git.SSHHost,
		Logger:  slog.Default(),
	}
}
