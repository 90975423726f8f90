package cmd

import (
	"context"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"thoreinstein.com/projinit/pkg/config"
	"thoreinstein.com/projinit/pkg/git"
	"thoreinstein.com/projinit/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that git, conda and a GitHub token are available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := runChecks(cmd.Context(), appConfig)

		table := out.Table([]string{"CHECK", "OK", "DETAIL"})
		failed := 0
		for _, c := range checks {
			if !c.OK {
				failed++
			}
			if err := table.Append([]string{c.Name, ui.YesNo(c.OK), c.Detail}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}

		if failed > 0 {
			return errors.Newf("%d of %d checks failed", failed, len(checks))
		}
		out.Success("All checks passed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type check struct {
	Name   string
	OK     bool
	Detail string
}

func runChecks(ctx context.Context, cfg *config.Config) []check {
	mgr := newCondaManager(cfg)
	checks := []check{
		toolCheck("git", cfg.Git.MinVersion, func() (*semver.Version, error) {
			return git.Version(ctx, commandRunner)
		}),
		toolCheck("conda", cfg.Conda.MinVersion, func() (*semver.Version, error) {
			return mgr.Version(ctx)
		}),
	}

	tok, err := newLoader(cfg).Load()
	if err != nil {
		checks = append(checks, check{Name: "github token", Detail: "not found"})
	} else {
		checks = append(checks, check{Name: "github token", OK: true, Detail: tok.Source})
	}

	info, err := os.Stat(cfg.Root)
	switch {
	case err != nil:
		checks = append(checks, check{Name: "projects root", Detail: cfg.Root + " does not exist"})
	case !info.IsDir():
		checks = append(checks, check{Name: "projects root", Detail: cfg.Root + " is not a directory"})
	default:
		checks = append(checks, check{Name: "projects root", OK: true, Detail: cfg.Root})
	}

	return checks
}

// toolCheck passes when version succeeds and reports at least minVersion.
// An empty minVersion only checks presence.
func toolCheck(label, minVersion string, version func() (*semver.Version, error)) check {
	v, err := version()
	if err != nil {
		return check{Name: label, Detail: "not found"}
	}
	if minVersion == "" {
		return check{Name: label, OK: true, Detail: v.String()}
	}

	c, err := semver.NewConstraint(">= " + minVersion)
	if err != nil {
		return check{Name: label, Detail: "invalid minimum version " + minVersion}
	}
	if !c.Check(v) {
		return check{Name: label, Detail: v.String() + " (need >= " + minVersion + ")"}
	}
	return check{Name: label, OK: true, Detail: v.String()}
}
