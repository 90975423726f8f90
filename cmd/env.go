package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"thoreinstein.com/projinit/pkg/conda"
)

var envPath string
var envName string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Create a Conda environment for an existing project",
	Long: `Offer to create a Conda environment for a project.

If the project's cloned repository (repo/) or the project itself contains an
environment descriptor, you are first offered to build from it. A fresh
environment is only created when there is no descriptor or you decline it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveProjectDir(envPath)
		if err != nil {
			return err
		}

		name := envName
		if name == "" {
			name = filepath.Base(dir)
		}

		svc := newService(appConfig, "")
		descriptor := projectDescriptor(dir, svc.Env.DescriptorName())
		return svc.SetupEnvironment(cmd.Context(), descriptor, name, dir)
	},
}

func init() {
	envCmd.Flags().StringVarP(&envPath, "path", "p", "", "project directory (default: current directory)")
	envCmd.Flags().StringVarP(&envName, "name", "n", "", "environment name (default: project directory name)")
	rootCmd.AddCommand(envCmd)
}

// projectDescriptor prefers the cloned repository's descriptor over one at
// the project root. The returned path may not exist.
func projectDescriptor(dir, name string) string {
	if path, ok := conda.FindDescriptor(filepath.Join(dir, "repo"), name); ok {
		return path
	}
	path, _ := conda.FindDescriptor(dir, name)
	return path
}
