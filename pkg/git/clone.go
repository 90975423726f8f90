package git

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/runner"
)

// Cloner clones remote repositories into a target directory.
type Cloner struct {
	runner runner.CommandRunner
	logger *slog.Logger
}

// NewCloner creates a Cloner that runs git through r.
func NewCloner(r runner.CommandRunner) *Cloner {
	return &Cloner{runner: r, logger: slog.Default()}
}

// Clone runs git clone remoteURL target.
// The target must not exist or must be an empty directory; an existing
// non-empty target is rejected before git runs, leaving it untouched.
// A relative target is resolved against the working directory.
func (c *Cloner) Clone(ctx context.Context, remoteURL, target string) error {
	if remoteURL == "" {
		return projerrors.NewValidationError("remote URL", "", "empty URL provided")
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return errors.Wrapf(err, "invalid clone target %s", target)
	}
	target = abs

	empty, err := isEmptyOrMissing(target)
	if err != nil {
		return projerrors.NewGitErrorWithCause("clone", target, "cannot inspect target", err)
	}
	if !empty {
		return projerrors.NewValidationError("clone target", target, "already exists and is not empty")
	}

	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", parent)
	}

	c.logger.Debug("cloning repository", "url", remoteURL, "target", target)

	if err := c.runner.Run(ctx, parent, "git", "clone", remoteURL, target); err != nil {
		return projerrors.NewGitErrorWithCause("clone", parent, "git clone failed for "+remoteURL, err)
	}

	return nil
}

// isEmptyOrMissing reports whether path does not exist or is an empty directory.
func isEmptyOrMissing(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
