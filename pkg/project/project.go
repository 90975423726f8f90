// Package project creates and enumerates the on-disk project skeleton.
package project

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	projerrors "thoreinstein.com/projinit/pkg/errors"
)

// Type is the lifecycle bucket a project lives in.
type Type string

const (
	TypeTmp  Type = "tmp"
	TypePOC  Type = "poc"
	TypeProd Type = "prod"
)

// Types returns the valid project types in prompt order.
func Types() []Type {
	return []Type{TypeTmp, TypePOC, TypeProd}
}

// TypeNames returns Types as strings.
func TypeNames() []string {
	types := Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// ParseType validates s as a project type.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", projerrors.NewValidationError("project type", s, "must be one of "+strings.Join(TypeNames(), ", "))
}

// Subdirectories are created inside every project.
var Subdirectories = []string{"data", "results", "notebooks", "related-files"}

const notebookName = "get_started.ipynb"

// Project is a scaffolded project directory.
type Project struct {
	Name string
	Type Type
	Path string // <root>/<type>/<name>
}

// NotebookPath returns where the starter notebook is written.
func (p *Project) NotebookPath() string {
	return filepath.Join(p.Path, "notebooks", notebookName)
}

// RepoPath returns where a remote repository is cloned inside the project.
func (p *Project) RepoPath() string {
	return filepath.Join(p.Path, "repo")
}

// ValidateName rejects names that would escape or alias the type directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return projerrors.NewValidationError("project name", name, "must not be empty")
	case name == "." || name == "..":
		return projerrors.NewValidationError("project name", name, "must not be a relative path element")
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator):
		return projerrors.NewValidationError("project name", name, "must not contain path separators")
	}
	return nil
}

// Creator lays out project directories under Root.
type Creator struct {
	Root         string
	TemplatePath string // Optional notebook override; empty uses the embedded template

	logger *slog.Logger
}

// NewCreator creates a Creator rooted at root.
func NewCreator(root, templatePath string) *Creator {
	return &Creator{Root: root, TemplatePath: templatePath, logger: slog.Default()}
}

// PathFor returns the project path without touching the filesystem.
func (c *Creator) PathFor(name string, t Type) string {
	return filepath.Join(c.Root, string(t), name)
}

// Create makes the project directory, its subdirectories, and the starter
// notebook. Existing directories are kept; the notebook is overwritten.
func (c *Creator) Create(name string, t Type) (*Project, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if _, err := ParseType(string(t)); err != nil {
		return nil, err
	}

	p := &Project{Name: name, Type: t, Path: c.PathFor(name, t)}

	if err := os.MkdirAll(p.Path, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create project directory %s", p.Path)
	}
	for _, sub := range Subdirectories {
		dir := filepath.Join(p.Path, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	notebook, err := c.notebook()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(p.NotebookPath(), notebook, 0644); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", p.NotebookPath())
	}

	c.logger.Debug("project structure created", "path", p.Path)
	return p, nil
}

func (c *Creator) notebook() ([]byte, error) {
	if c.TemplatePath == "" {
		return RenderNotebook()
	}
	data, err := os.ReadFile(c.TemplatePath)
	if err != nil {
		return nil, projerrors.NewConfigErrorWithCause("template.notebook", "cannot read template "+c.TemplatePath, err)
	}
	return data, nil
}
