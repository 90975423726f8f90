package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"thoreinstein.com/projinit/pkg/bootstrap"
	"thoreinstein.com/projinit/pkg/config"
	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/ui"
)

var cfgFile string
var verbose bool
var appConfig *config.Config
var out = ui.NewOutput(false)

// Set from main via Execute.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "projinit",
	Short: "Projinit - scaffold data projects with GitHub and Conda",
	Long: `Projinit scaffolds a project directory under <root>/<type>/<name> with
data, results, notebooks and related-files folders and a starter notebook.

It can then link the project to a GitHub repository, either cloning one you
already have or creating it and pushing an initial commit, and set up a Conda
environment from the repository's environment.yml or from scratch.

Running projinit with no subcommand is the same as 'projinit new'.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	// Pre-parse so the logger is configured before cobra runs anything.
	cfgFile, verbose = bootstrap.PreParseGlobalFlags(os.Args)
	bootstrap.SetupLogger(os.Stderr, verbose)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", projerrors.FormatUserError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/projinit/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	appConfig, verbose, err = bootstrap.InitConfig(cfgFile, verbose)
	out = ui.NewOutput(verbose)
	return err
}

// skipConfig is used as PersistentPreRunE by commands that must work
// without a valid configuration.
func skipConfig(cmd *cobra.Command, args []string) error {
	out = ui.NewOutput(verbose)
	return nil
}

// resetConfig clears the cached configuration.
// This is primarily used in tests to ensure each test starts with a fresh config.
func resetConfig() {
	appConfig = nil
	bootstrap.Reset()
	viper.Reset()
}
