package config

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	projerrors "thoreinstein.com/projinit/pkg/errors"
)

// DefaultTokenMarker is the marker line prefix that precedes the token in the token file.
const DefaultTokenMarker = "Current Github PAT:"

// Config represents the application configuration
type Config struct {
	Root     string         `mapstructure:"root"` // Projects root; projects live at <root>/<type>/<name>
	Template TemplateConfig `mapstructure:"template"`
	GitHub   GitHubConfig   `mapstructure:"github"`
	Git      GitConfig      `mapstructure:"git"`
	Conda    CondaConfig    `mapstructure:"conda"`
}

// TemplateConfig holds scaffold template configuration
type TemplateConfig struct {
	Notebook string `mapstructure:"notebook"` // Empty means the built-in get_started.ipynb
}

// GitHubConfig holds GitHub integration configuration
type GitHubConfig struct {
	Token       string `mapstructure:"token"`        // Token in config (GITHUB_PAT_TOKEN env var takes precedence)
	TokenFile   string `mapstructure:"token_file"`   // Plaintext file scanned for TokenMarker
	TokenMarker string `mapstructure:"token_marker"` // Marker preceding the token
	ClientID    string `mapstructure:"client_id"`    // OAuth app client ID (for device flow)
	Private     bool   `mapstructure:"private"`      // Create new repositories as private
	Description string `mapstructure:"description"`  // Description for newly created repositories

	// StrictLookup aborts when the repository lookup fails for a reason
	// other than not-found, instead of attempting creation.
	StrictLookup bool `mapstructure:"strict_lookup"`
}

// GitConfig holds local git configuration
type GitConfig struct {
	DefaultBranch string `mapstructure:"default_branch"`
	Remote        string `mapstructure:"remote"`
	CommitMessage string `mapstructure:"commit_message"`
	SSHHost       string `mapstructure:"ssh_host"` // SSH host alias, e.g. github-personal
	MinVersion    string `mapstructure:"min_version"`
}

// CondaConfig holds environment manager configuration
type CondaConfig struct {
	Command       string `mapstructure:"command"`
	PythonVersion string `mapstructure:"python_version"`
	Descriptor    string `mapstructure:"descriptor"` // Descriptor filename at project root
	MinVersion    string `mapstructure:"min_version"`
}

// SecurityWarning represents a configuration security issue
type SecurityWarning struct {
	Field   string
	Message string
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	setDefaults()

	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// SSH_HOST is read unprefixed for compatibility with existing shell setups
	if config.Git.SSHHost == "" {
		config.Git.SSHHost = os.Getenv("SSH_HOST")
	}

	if config.GitHub.TokenFile == "" {
		config.GitHub.TokenFile = filepath.Join(config.Root, "README.txt")
	}

	if err := expandPaths(config); err != nil {
		return nil, errors.Wrap(err, "failed to expand paths")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

// CheckSecurityWarnings returns warnings for insecure configuration practices.
func CheckSecurityWarnings(config *Config) []SecurityWarning {
	var warnings []SecurityWarning

	if config.GitHub.Token != "" && os.Getenv("PROJINIT_GITHUB_TOKEN") == "" {
		warnings = append(warnings, SecurityWarning{
			Field:   "github.token",
			Message: "GitHub token is set in config file. For security, use GITHUB_PAT_TOKEN or 'projinit auth login' instead.",
		})
	}

	return warnings
}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() error {
	if c.Root == "" {
		return projerrors.NewConfigError("root", "projects root must not be empty")
	}
	if _, err := semver.NewVersion(c.Conda.PythonVersion); err != nil {
		return projerrors.NewConfigErrorWithCause("conda.python_version", "not a version: "+c.Conda.PythonVersion, err)
	}
	for field, v := range map[string]string{"conda.min_version": c.Conda.MinVersion, "git.min_version": c.Git.MinVersion} {
		if v == "" {
			continue
		}
		if _, err := semver.NewVersion(v); err != nil {
			return projerrors.NewConfigErrorWithCause(field, "not a version: "+v, err)
		}
	}
	if c.Git.DefaultBranch == "" {
		return projerrors.NewConfigError("git.default_branch", "must not be empty")
	}
	if c.Git.Remote == "" {
		return projerrors.NewConfigError("git.remote", "must not be empty")
	}
	if c.Conda.Descriptor == "" || filepath.Base(c.Conda.Descriptor) != c.Conda.Descriptor {
		return projerrors.NewConfigError("conda.descriptor", "must be a bare file name")
	}
	return nil
}

// DefaultRoot is the root used when none is configured: the parent of the
// working directory, so running from <root>/tools scaffolds into <root>.
func DefaultRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ".."
	}
	return filepath.Dir(cwd)
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("root", DefaultRoot())

	viper.SetDefault("template.notebook", "")

	// GitHub defaults (token_file empty means <root>/README.txt)
	viper.SetDefault("github.token", "")
	viper.SetDefault("github.token_file", "")
	viper.SetDefault("github.token_marker", DefaultTokenMarker)
	viper.SetDefault("github.client_id", "")
	viper.SetDefault("github.private", false)
	viper.SetDefault("github.description", "")
	viper.SetDefault("github.strict_lookup", false)

	// Git defaults
	viper.SetDefault("git.default_branch", "main")
	viper.SetDefault("git.remote", "origin")
	viper.SetDefault("git.commit_message", "Initial commit")
	viper.SetDefault("git.ssh_host", "")
	viper.SetDefault("git.min_version", "2.28.0")

	// Conda defaults
	viper.SetDefault("conda.command", "conda")
	viper.SetDefault("conda.python_version", "3.11")
	viper.SetDefault("conda.descriptor", "environment.yml")
	viper.SetDefault("conda.min_version", "4.6.0")
}

// expandPaths expands ~ in paths and makes them absolute, so subprocesses
// run in any directory see the same locations.
func expandPaths(config *Config) error {
	var err error

	config.Root, err = expandPath(config.Root)
	if err != nil {
		return err
	}

	config.Template.Notebook, err = expandPath(config.Template.Notebook)
	if err != nil {
		return err
	}

	config.GitHub.TokenFile, err = expandPath(config.GitHub.TokenFile)
	if err != nil {
		return err
	}

	return nil
}

// expandPath expands ~ to home directory and resolves relative paths
// against the working directory. An empty path stays empty.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(homeDir, path[1:])
	}

	return filepath.Abs(path)
}
