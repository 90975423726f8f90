package conda

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"
)

// DefaultDescriptor is the conventional descriptor file name.
const DefaultDescriptor = "environment.yml"

// Descriptor is a conda environment file.
type Descriptor struct {
	Name         string       `yaml:"name"`
	Channels     []string     `yaml:"channels,omitempty"`
	Dependencies []Dependency `yaml:"dependencies"`
}

// Dependency is either a package spec ("python=3.11") or a pip sub-list.
type Dependency struct {
	Spec string
	Pip  []string
}

// UnmarshalYAML accepts a scalar spec or a {pip: [...]} mapping.
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d.Spec = node.Value
		return nil
	case yaml.MappingNode:
		var m struct {
			Pip []string `yaml:"pip"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		d.Pip = m.Pip
		return nil
	default:
		return errors.Newf("line %d: unsupported dependency entry", node.Line)
	}
}

// Packages returns the conda package specs, skipping pip entries.
func (d *Descriptor) Packages() []string {
	var out []string
	for _, dep := range d.Dependencies {
		if dep.Spec != "" {
			out = append(out, dep.Spec)
		}
	}
	return out
}

// StarterDescriptor returns the descriptor written after creating an
// environment from scratch.
func StarterDescriptor(name, pythonVersion string) []byte {
	return fmt.Appendf(nil, "name: %s\ndependencies:\n  - python=%s\n", name, pythonVersion)
}

// ReadDescriptor parses the descriptor at path.
func ReadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &d, nil
}

// FindDescriptor reports the path of the descriptor named name in dir, if
// it exists as a regular file.
func FindDescriptor(dir, name string) (string, bool) {
	if name == "" {
		name = DefaultDescriptor
	}
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}
