// Package conda creates conda environments through the conda CLI.
package conda

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"

	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/runner"
)

// Options configures a Manager.
type Options struct {
	Command       string // conda binary (default: conda)
	PythonVersion string // Python pinned by Create (default: 3.11)
	Descriptor    string // Descriptor file name (default: environment.yml)
}

func (o Options) withDefaults() Options {
	if o.Command == "" {
		o.Command = "conda"
	}
	if o.PythonVersion == "" {
		o.PythonVersion = "3.11"
	}
	if o.Descriptor == "" {
		o.Descriptor = DefaultDescriptor
	}
	return o
}

// Manager runs conda commands.
type Manager struct {
	runner runner.CommandRunner
	opts   Options
	logger *slog.Logger
}

// NewManager creates a Manager that runs conda through r.
func NewManager(r runner.CommandRunner, opts Options) *Manager {
	return &Manager{runner: r, opts: opts.withDefaults(), logger: slog.Default()}
}

// DescriptorName returns the configured descriptor file name.
func (m *Manager) DescriptorName() string {
	return m.opts.Descriptor
}

// Create makes an environment pinned to the configured Python version and
// writes a starter descriptor into projectDir. It returns the descriptor path.
func (m *Manager) Create(ctx context.Context, name, projectDir string) (string, error) {
	if err := ValidateEnvName(name); err != nil {
		return "", err
	}

	m.logger.Debug("creating conda environment", "name", name, "python", m.opts.PythonVersion)

	args := []string{"create", "-y", "-n", name, "python=" + m.opts.PythonVersion}
	if err := m.runner.Run(ctx, projectDir, m.opts.Command, args...); err != nil {
		return "", projerrors.NewEnvErrorWithCause("create", name, "conda create failed", err)
	}

	path, _ := FindDescriptor(projectDir, m.opts.Descriptor)
	if err := os.WriteFile(path, StarterDescriptor(name, m.opts.PythonVersion), 0644); err != nil {
		return "", projerrors.NewEnvErrorWithCause("create", name, "failed to write "+path, err)
	}

	return path, nil
}

// CreateFromFile makes an environment named name from an existing descriptor.
func (m *Manager) CreateFromFile(ctx context.Context, descriptorPath, name string) error {
	if err := ValidateEnvName(name); err != nil {
		return err
	}
	if _, err := os.Stat(descriptorPath); err != nil {
		return projerrors.NewEnvErrorWithCause("create-from-file", name, "descriptor not found: "+descriptorPath, err)
	}

	m.logger.Debug("creating conda environment from file", "name", name, "file", descriptorPath)

	if err := m.runner.Run(ctx, "", m.opts.Command, "env", "create", "-f", descriptorPath, "-n", name); err != nil {
		return projerrors.NewEnvErrorWithCause("create-from-file", name, "conda env create failed", err)
	}
	return nil
}

// Version returns the installed conda version.
func (m *Manager) Version(ctx context.Context) (*semver.Version, error) {
	return runner.ToolVersion(ctx, m.runner, m.opts.Command)
}

// ValidateEnvName rejects names conda would refuse or misinterpret.
func ValidateEnvName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return projerrors.NewValidationError("environment name", name, "must not be empty")
	case strings.ContainsAny(name, " \t/\\:#"):
		return projerrors.NewValidationError("environment name", name, "must not contain spaces or any of / \\ : #")
	}
	return nil
}
