package cmd

import (
	"github.com/spf13/cobra"

	"thoreinstein.com/projinit/pkg/project"
	"thoreinstein.com/projinit/pkg/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List scaffolded projects",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := project.List(appConfig.Root, appConfig.Conda.Descriptor)
		if err != nil {
			return err
		}

		if len(projects) == 0 {
			out.Info("No projects under %s", appConfig.Root)
			return nil
		}

		table := out.Table([]string{"TYPE", "NAME", "REPO", "ENV", "PATH"})
		for _, p := range projects {
			if err := table.Append([]string{string(p.Type), ui.Cyan(p.Name), ui.YesNo(p.HasRepo), ui.YesNo(p.HasEnv), p.Path}); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
