package git

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"thoreinstein.com/projinit/pkg/runner"
)

// Version returns the installed git version.
func Version(ctx context.Context, r runner.CommandRunner) (*semver.Version, error) {
	return runner.ToolVersion(ctx, r, "git")
}
