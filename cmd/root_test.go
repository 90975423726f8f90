package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommandStructure(t *testing.T) {
	// Not parallel - accesses global rootCmd
	cmd := rootCmd

	if cmd.Use != "projinit" {
		t.Errorf("root command Use = %q, want %q", cmd.Use, "projinit")
	}

	if cmd.Short == "" {
		t.Error("root command should have Short description")
	}

	expectedKeywords := []string{"GitHub", "Conda", "<root>/<type>/<name>"}
	for _, keyword := range expectedKeywords {
		if !strings.Contains(cmd.Long, keyword) {
			t.Errorf("root command Long description should mention %q", keyword)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	// Not parallel - accesses global rootCmd
	cmd := rootCmd

	configFlag := cmd.PersistentFlags().Lookup("config")
	if configFlag == nil {
		t.Fatal("root command should have --config persistent flag")
	}
	if configFlag.DefValue != "" {
		t.Errorf("--config default should be empty, got %q", configFlag.DefValue)
	}
	if configFlag.Shorthand != "C" {
		t.Errorf("--config shorthand should be 'C', got %q", configFlag.Shorthand)
	}
	if !strings.Contains(configFlag.Usage, "$HOME/.config/projinit") {
		t.Error("--config usage should mention default config location")
	}

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	if verboseFlag == nil {
		t.Fatal("root command should have --verbose persistent flag")
	}
	if verboseFlag.DefValue != "false" {
		t.Errorf("--verbose default should be 'false', got %q", verboseFlag.DefValue)
	}
	if verboseFlag.Shorthand != "v" {
		t.Errorf("--verbose shorthand should be 'v', got %q", verboseFlag.Shorthand)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	// Not parallel - accesses global rootCmd
	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[strings.Split(sub.Use, " ")[0]] = true
	}

	for _, expected := range []string{"new", "clone", "env", "list", "auth", "config", "doctor", "version"} {
		if !registered[expected] {
			t.Errorf("root command should have %q subcommand registered", expected)
		}
	}
}

func TestInitConfig_WithCustomConfigFile(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("SSH_HOST", "")
	t.Cleanup(resetConfig)

	root := filepath.Join(tmpDir, "projects")
	configContent := "root = \"" + root + "\"\n\n[git]\nssh_host = \"github-biz\"\ndefault_branch = \"trunk\"\n"
	customConfigPath := filepath.Join(tmpDir, "custom-config.toml")
	if err := os.WriteFile(customConfigPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write custom config: %v", err)
	}

	oldCfgFile := cfgFile
	cfgFile = customConfigPath
	defer func() { cfgFile = oldCfgFile }()

	if err := initConfig(); err != nil {
		t.Fatalf("initConfig() error = %v", err)
	}

	if appConfig.Root != root {
		t.Errorf("Root = %q, want %q", appConfig.Root, root)
	}
	if appConfig.Git.SSHHost != "github-biz" {
		t.Errorf("Git.SSHHost = %q, want %q", appConfig.Git.SSHHost, "github-biz")
	}
	if appConfig.Git.DefaultBranch != "trunk" {
		t.Errorf("Git.DefaultBranch = %q, want %q", appConfig.Git.DefaultBranch, "trunk")
	}
	if appConfig.GitHub.TokenFile != filepath.Join(root, "README.txt") {
		t.Errorf("GitHub.TokenFile = %q, want README.txt under root", appConfig.GitHub.TokenFile)
	}
}

func TestInitConfig_NoConfigFile(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(resetConfig)

	oldCfgFile := cfgFile
	cfgFile = ""
	defer func() { cfgFile = oldCfgFile }()

	if err := initConfig(); err != nil {
		t.Fatalf("initConfig() without a config file should succeed, got %v", err)
	}
	if appConfig == nil || appConfig.Conda.Command != "conda" {
		t.Error("defaults should be loaded when no config file exists")
	}
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	// Don't run in parallel - modifies global viper state
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(resetConfig)

	oldCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "missing.toml")
	defer func() { cfgFile = oldCfgFile }()

	if err := initConfig(); err == nil {
		t.Error("initConfig() with a missing --config file should fail")
	}
}

func TestExecute_HelpCommand(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test command",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	cmd.SetArgs([]string{"--help"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute with --help returned error: %v", err)
	}
}

func TestRootCommand_ExecuteWithUnknownCommand(t *testing.T) {
	var stderr bytes.Buffer

	testCmd := *rootCmd
	testCmd.SetArgs([]string{"unknown-subcommand-xyz"})
	testCmd.SetOut(&bytes.Buffer{})
	testCmd.SetErr(&stderr)

	if err := testCmd.Execute(); err == nil {
		t.Error("Execute with unknown subcommand should return error")
	}
}
