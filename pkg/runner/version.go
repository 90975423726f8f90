package runner

import (
	"context"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

var versionRegex = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// ToolVersion runs "<name> --version" and parses the result.
func ToolVersion(ctx context.Context, r CommandRunner, name string) (*semver.Version, error) {
	out, err := r.Output(ctx, "", name, "--version")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to run %s --version", name)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the first dotted version number from tool output,
// e.g. "git version 2.43.0 (Apple Git-115)" or "conda 24.1.2".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionRegex.FindString(output)
	if m == "" {
		return nil, errors.Newf("no version number in %q", output)
	}
	return semver.NewVersion(m)
}
