package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755))
}

func TestList(t *testing.T) {
	root := t.TempDir()

	// prod/alpha: cloned repo with descriptor inside it
	mustMkdir(t, filepath.Join(root, "prod", "alpha", "repo", ".git"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "prod", "alpha", "repo", "environment.yml"), nil, 0644))

	// poc/beta: initialized in place
	mustMkdir(t, filepath.Join(root, "poc", "beta", ".git"))

	// tmp/gamma: env only; tmp/delta: bare skeleton
	mustMkdir(t, filepath.Join(root, "tmp", "gamma"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tmp", "gamma", "environment.yml"), nil, 0644))
	mustMkdir(t, filepath.Join(root, "tmp", "delta"))

	// ignored: unknown type dir and stray file
	mustMkdir(t, filepath.Join(root, "archive", "old"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tmp", "notes.txt"), nil, 0644))

	got, err := List(root, "environment.yml")
	require.NoError(t, err)

	var names []string
	for _, l := range got {
		names = append(names, string(l.Type)+"/"+l.Name)
	}
	assert.Equal(t, []string{"tmp/delta", "tmp/gamma", "poc/beta", "prod/alpha"}, names)

	byName := map[string]Listing{}
	for _, l := range got {
		byName[l.Name] = l
	}
	assert.True(t, byName["alpha"].HasRepo)
	assert.True(t, byName["alpha"].HasEnv)
	assert.True(t, byName["beta"].HasRepo)
	assert.False(t, byName["beta"].HasEnv)
	assert.False(t, byName["gamma"].HasRepo)
	assert.True(t, byName["gamma"].HasEnv)
	assert.False(t, byName["delta"].HasRepo)
	assert.False(t, byName["delta"].HasEnv)
}

func TestList_EmptyRoot(t *testing.T) {
	got, err := List(t.TempDir(), "environment.yml")
	require.NoError(t, err)
	assert.Empty(t, got)
}
