package cmd

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"thoreinstein.com/projinit/pkg/bootstrap"
	"thoreinstein.com/projinit/pkg/config"
)

var configForce bool

// configPathFunc returns the user config path, replaceable in tests.
var configPathFunc = bootstrap.DefaultConfigPath

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or manage configuration",
	Long: `Show or manage projinit configuration.

Running bare 'projinit config' is the same as 'projinit config show'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowRun()
	},
}

var configInitCmd = &cobra.Command{
	Use:               "init",
	Short:             "Write a starter config file",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInitRun()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowRun()
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// fileConfig is the on-disk TOML layout written by 'config init'.
type fileConfig struct {
	Root     string `toml:"root" comment:"Projects root; projects live at <root>/<type>/<name>"`
	Template struct {
		Notebook string `toml:"notebook" comment:"Starter notebook; empty uses the built-in template"`
	} `toml:"template"`
	GitHub struct {
		TokenFile           string `toml:"token_file" comment:"File scanned for the token marker line"`
		TokenMarker         string `toml:"token_marker"`
		ClientID            string `toml:"client_id" comment:"OAuth app client ID for 'projinit auth login --device'"`
		Private             bool   `toml:"private"`
		Description         string `toml:"description"`
		StrictLookup        bool   `toml:"strict_lookup" comment:"Abort instead of creating the repository when the lookup fails for reasons other than 404"`
	} `toml:"github"`
	Git struct {
		DefaultBranch string `toml:"default_branch"`
		Remote        string `toml:"remote"`
		CommitMessage string `toml:"commit_message"`
		SSHHost       string `toml:"ssh_host" comment:"SSH host alias from ~/.ssh/config; empty clones over HTTPS"`
		MinVersion    string `toml:"min_version"`
	} `toml:"git"`
	Conda struct {
		Command       string `toml:"command"`
		PythonVersion string `toml:"python_version"`
		Descriptor    string `toml:"descriptor"`
		MinVersion    string `toml:"min_version"`
	} `toml:"conda"`
}

// starterConfig is projinit's default configuration. The token itself is
// never written; use GITHUB_PAT_TOKEN or 'projinit auth login'.
func starterConfig() fileConfig {
	var fc fileConfig
	fc.Root = config.DefaultRoot()
	fc.GitHub.TokenMarker = config.DefaultTokenMarker
	fc.Git.DefaultBranch = "main"
	fc.Git.Remote = "origin"
	fc.Git.CommitMessage = "Initial commit"
	fc.Git.MinVersion = "2.28.0"
	fc.Conda.Command = "conda"
	fc.Conda.PythonVersion = "3.11"
	fc.Conda.Descriptor = "environment.yml"
	fc.Conda.MinVersion = "4.6.0"
	return fc
}

func fileConfigFrom(cfg *config.Config) fileConfig {
	var fc fileConfig
	fc.Root = cfg.Root
	fc.Template.Notebook = cfg.Template.Notebook
	fc.GitHub.TokenFile = cfg.GitHub.TokenFile
	fc.GitHub.TokenMarker = cfg.GitHub.TokenMarker
	fc.GitHub.ClientID = cfg.GitHub.ClientID
	fc.GitHub.Private = cfg.GitHub.Private
	fc.GitHub.Description = cfg.GitHub.Description
	fc.GitHub.StrictLookup = cfg.GitHub.StrictLookup
	fc.Git.DefaultBranch = cfg.Git.DefaultBranch
	fc.Git.Remote = cfg.Git.Remote
	fc.Git.CommitMessage = cfg.Git.CommitMessage
	fc.Git.SSHHost = cfg.Git.SSHHost
	fc.Git.MinVersion = cfg.Git.MinVersion
	fc.Conda.Command = cfg.Conda.Command
	fc.Conda.PythonVersion = cfg.Conda.PythonVersion
	fc.Conda.Descriptor = cfg.Conda.Descriptor
	fc.Conda.MinVersion = cfg.Conda.MinVersion
	return fc
}

func marshalConfig(fc fileConfig) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# projinit configuration\n\n")
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(fc); err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return buf.Bytes(), nil
}

func configInitRun() error {
	cfgPath, err := configPathFunc()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		if !configForce {
			return errors.Newf("config file already exists: %s (use --force to overwrite)", cfgPath)
		}
		out.Warning("Overwriting existing config file")
	}

	data, err := marshalConfig(starterConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	out.Success("Config file created: %s", cfgPath)
	return nil
}

func configShowRun() error {
	data, err := marshalConfig(fileConfigFrom(appConfig))
	if err != nil {
		return err
	}

	if appConfig.GitHub.Token != "" {
		out.Warning("github.token is set in config (not shown)")
	}
	_, err = out.Out.Write(data)
	return err
}
