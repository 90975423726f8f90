package cmd

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var clonePath string
var cloneEnvName string

var cloneCmd = &cobra.Command{
	Use:   "clone <github-url>",
	Short: "Clone a GitHub repository into an existing project",
	Long: `Clone a GitHub repository into <project>/repo and offer to create a Conda
environment from its environment.yml.

The project defaults to the current directory. The clone goes over SSH when
git.ssh_host (or SSH_HOST) names a host alias, otherwise over HTTPS.

Examples:
  projinit clone https://github.com/owner/repo
  projinit clone https://github.com/owner/repo.git --path ~/projects/poc/demo --env demo-env`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveProjectDir(clonePath)
		if err != nil {
			return err
		}

		envName := cloneEnvName
		if envName == "" {
			envName = filepath.Base(dir)
		}

		svc := newService(appConfig, "")
		return svc.CloneAndSetup(cmd.Context(), args[0], filepath.Join(dir, "repo"), envName, dir)
	},
}

func init() {
	cloneCmd.Flags().StringVarP(&clonePath, "path", "p", "", "project directory (default: current directory)")
	cloneCmd.Flags().StringVarP(&cloneEnvName, "env", "e", "", "environment name (default: project directory name)")
	rootCmd.AddCommand(cloneCmd)
}

// resolveProjectDir returns the absolute project directory, defaulting to
// the working directory. The directory must already exist.
func resolveProjectDir(flagValue string) (string, error) {
	dir := flagValue
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to get working directory")
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "invalid project path: %s", dir)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "invalid project path: %s", abs)
	}
	if !info.IsDir() {
		return "", errors.Newf("project path is not a directory: %s", abs)
	}
	return abs, nil
}
