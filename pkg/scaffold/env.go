package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"thoreinstein.com/projinit/pkg/conda"
	projerrors "thoreinstein.com/projinit/pkg/errors"
)

// SetupEnvironment decides whether and how to create a conda environment.
// When descriptorPath exists the user may build from it; a fresh environment
// in fallbackDir is only offered after they decline. Otherwise the user may
// create a fresh environment, named envName unless they choose another.
// A descriptor that cannot be parsed is rejected before anything is asked.
func (s *Service) SetupEnvironment(ctx context.Context, descriptorPath, envName, fallbackDir string) error {
	if fileExists(descriptorPath) {
		base := filepath.Base(descriptorPath)
		d, err := conda.ReadDescriptor(descriptorPath)
		if err != nil {
			return projerrors.NewEnvErrorWithCause("read-descriptor", envName, base+" is not a valid environment file", err)
		}
		s.describe(base, d)

		useFile, err := s.Prompter.Confirm(fmt.Sprintf("An %s file was found. Create environment from this file?", base), true)
		if err != nil {
			return err
		}
		if useFile {
			if err := s.Env.CreateFromFile(ctx, descriptorPath, envName); err != nil {
				return err
			}
			s.Out.Success("Environment '%s' created from %s", envName, base)
			return nil
		}

		manual, err := s.Prompter.Confirm("Do you want to create a new environment manually?", true)
		if err != nil {
			return err
		}
		if manual {
			return s.createEnvironment(ctx, envName, fallbackDir)
		}
		return nil
	}

	return s.offerEnvironment(ctx, envName, fallbackDir)
}

func (s *Service) describe(base string, d *conda.Descriptor) {
	pkgs := d.Packages()
	if d.Name != "" {
		s.Out.Info("%s defines environment '%s' with %d packages", base, d.Name, len(pkgs))
	} else {
		s.Out.Info("%s lists %d packages", base, len(pkgs))
	}
	if len(pkgs) > 0 {
		s.Out.Info("Packages: %s", strings.Join(pkgs, ", "))
	}
}

// offerEnvironment asks whether to create a fresh environment and for its name.
func (s *Service) offerEnvironment(ctx context.Context, defaultName, dir string) error {
	create, err := s.Prompter.Confirm("Do you want to create a new Conda environment for this project?", true)
	if err != nil {
		return err
	}
	if !create {
		return nil
	}

	name, err := s.Prompter.Text("Environment name:", defaultName)
	if err != nil {
		return err
	}
	return s.createEnvironment(ctx, name, dir)
}

func (s *Service) createEnvironment(ctx context.Context, name, dir string) error {
	s.Out.Info("Creating Conda environment: %s", name)

	path, err := s.Env.Create(ctx, name, dir)
	if err != nil {
		return err
	}

	s.Out.Success("Environment created. To activate it: conda activate %s", name)
	s.Out.Info("A starter %s was added at: %s", s.Env.DescriptorName(), path)
	return nil
}
