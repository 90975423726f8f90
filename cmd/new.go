package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"thoreinstein.com/projinit/pkg/project"
	"thoreinstein.com/projinit/pkg/scaffold"
)

var newName string
var newType projectTypeFlag

// projectTypeFlag is a pflag.Value that only accepts known project types.
type projectTypeFlag struct {
	value project.Type
}

var _ pflag.Value = (*projectTypeFlag)(nil)

func (f *projectTypeFlag) String() string { return string(f.value) }

func (f *projectTypeFlag) Set(s string) error {
	t, err := project.ParseType(s)
	if err != nil {
		return err
	}
	f.value = t
	return nil
}

func (f *projectTypeFlag) Type() string { return "type" }

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new project interactively",
	Long: `Create <root>/<type>/<name> with its standard folders and starter notebook,
then optionally clone or create a GitHub repository and set up a Conda
environment.

The GitHub token is resolved before anything is created, so a missing token
fails fast even if you later decline the repository steps.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd)
	},
}

func init() {
	newCmd.Flags().StringVarP(&newName, "name", "n", "", "project name (prompted if empty)")
	newCmd.Flags().VarP(&newType, "type", "t", "project type: tmp, poc or prod (prompted if empty)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command) error {
	cfg := appConfig

	tok, err := newLoader(cfg).Load()
	if err != nil {
		return err
	}
	out.VerboseLog("Using GitHub token from %s", tok.Source)

	svc := newService(cfg, tok.Value)
	_, err = svc.Run(cmd.Context(), scaffold.Answers{Name: newName, Type: newType.value})
	return err
}
