package project

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"

	"thoreinstein.com/projinit/pkg/git"
)

// Listing is an existing project found under the root.
type Listing struct {
	Project
	HasRepo bool // repo/ clone or a top-level .git
	HasEnv  bool // environment descriptor at the project root or in repo/
}

// List enumerates <root>/<type>/<name> for every known type. A missing type
// directory is skipped. descriptor is the environment file name to look for.
func List(root, descriptor string) ([]Listing, error) {
	var out []Listing

	for _, t := range Types() {
		typeDir := filepath.Join(root, string(t))
		entries, err := os.ReadDir(typeDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", typeDir)
		}

		for _, e := range entries {
			if !e.IsDir() || ValidateName(e.Name()) != nil {
				continue
			}
			path := filepath.Join(typeDir, e.Name())
			p := Project{Name: e.Name(), Type: t, Path: path}
			out = append(out, Listing{
				Project: p,
				HasRepo: git.IsGitRepo(p.RepoPath()) || git.IsGitRepo(path),
				HasEnv:  fileExists(filepath.Join(path, descriptor)) || fileExists(filepath.Join(p.RepoPath(), descriptor)),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return typeRank(out[i].Type) < typeRank(out[j].Type)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func typeRank(t Type) int {
	for i, known := range Types() {
		if known == t {
			return i
		}
	}
	return len(Types())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
