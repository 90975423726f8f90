// Package runner executes external tools (git, conda) with an explicit
// working directory. Nothing in projinit changes the process working
// directory; every invocation names the directory it runs in.
package runner

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// CommandRunner runs external commands.
type CommandRunner interface {
	// Run executes name with args in dir, streaming output to the user.
	Run(ctx context.Context, dir, name string, args ...string) error

	// Output executes name with args in dir and returns its stdout.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// Real runs commands with os/exec.
type Real struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

var _ CommandRunner = (*Real)(nil)

// NewReal creates a runner that streams to the process stdout/stderr.
func NewReal() *Real {
	return &Real{Stdout: os.Stdout, Stderr: os.Stderr, Logger: slog.Default()}
}

// Run executes the command and returns an error carrying its stderr tail on failure.
func (r *Real) Run(ctx context.Context, dir, name string, args ...string) error {
	r.logger().Debug("exec", "dir", dir, "cmd", name, "args", args)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 - callers pass fixed tool names
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = io.MultiWriter(orDiscard(r.Stderr), &stderr)

	if err := cmd.Run(); err != nil {
		return commandError(name, args, stderr.String(), err)
	}
	return nil
}

// Output executes the command and returns its stdout.
func (r *Real) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	r.logger().Debug("exec", "dir", dir, "cmd", name, "args", args)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 - callers pass fixed tool names
	cmd.Dir = dir
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return out, commandError(name, args, stderr.String(), err)
	}
	return out, nil
}

func (r *Real) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

func commandError(name string, args []string, stderr string, err error) error {
	msg := strings.TrimSpace(stderr)
	if i := strings.LastIndex(msg, "\n"); i >= 0 {
		msg = msg[i+1:]
	}
	full := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if msg != "" {
		return errors.Wrapf(err, "%s: %s", full, msg)
	}
	return errors.Wrap(err, full)
}
