package conda

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/runner"
)

func TestManager_Create(t *testing.T) {
	dir := t.TempDir()
	rec := &runner.Recorder{}
	m := NewManager(rec, Options{})

	path, err := m.Create(context.Background(), "demo", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"conda create -y -n demo python=3.11"}, rec.Commands())
	assert.Equal(t, filepath.Join(dir, "environment.yml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: demo\ndependencies:\n  - python=3.11\n", string(data))
}

func TestManager_CreateCustomOptions(t *testing.T) {
	dir := t.TempDir()
	rec := &runner.Recorder{}
	m := NewManager(rec, Options{Command: "mamba", PythonVersion: "3.12", Descriptor: "env.yaml"})

	path, err := m.Create(context.Background(), "ml", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"mamba create -y -n ml python=3.12"}, rec.Commands())
	assert.Equal(t, filepath.Join(dir, "env.yaml"), path)
}

func TestManager_CreateFailureSkipsDescriptor(t *testing.T) {
	dir := t.TempDir()
	rec := &runner.Recorder{
		RunFunc: func(dir, name string, args ...string) error {
			return errors.New("exit status 1")
		},
	}

	_, err := NewManager(rec, Options{}).Create(context.Background(), "demo", dir)
	require.Error(t, err)
	assert.True(t, projerrors.IsEnvError(err))

	_, statErr := os.Stat(filepath.Join(dir, "environment.yml"))
	assert.True(t, os.IsNotExist(statErr), "descriptor must not be written when conda fails")
}

func TestManager_CreateFromFile(t *testing.T) {
	descriptor := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(descriptor, StarterDescriptor("x", "3.11"), 0644))

	rec := &runner.Recorder{}
	require.NoError(t, NewManager(rec, Options{}).CreateFromFile(context.Background(), descriptor, "demo"))

	assert.Equal(t, []string{"conda env create -f " + descriptor + " -n demo"}, rec.Commands())
}

func TestManager_CreateFromFile_Missing(t *testing.T) {
	rec := &runner.Recorder{}
	err := NewManager(rec, Options{}).CreateFromFile(context.Background(), "/nonexistent/environment.yml", "demo")
	require.Error(t, err)
	assert.Empty(t, rec.Calls())
}

func TestValidateEnvName(t *testing.T) {
	for _, ok := range []string{"demo", "my-env_3.11"} {
		assert.NoError(t, ValidateEnvName(ok), ok)
	}
	for _, bad := range []string{"", "  ", "has space", "a/b", "x:y", "#c"} {
		assert.Error(t, ValidateEnvName(bad), bad)
	}
}

func TestManager_InvalidNameRunsNothing(t *testing.T) {
	rec := &runner.Recorder{}
	_, err := NewManager(rec, Options{}).Create(context.Background(), "bad name", t.TempDir())
	require.Error(t, err)
	assert.Empty(t, rec.Calls())
}

func TestManager_Version(t *testing.T) {
	rec := &runner.Recorder{
		OutputFunc: func(dir, name string, args ...string) ([]byte, error) {
			return []byte("conda 24.1.2\n"), nil
		},
	}
	v, err := NewManager(rec, Options{}).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "24.1.2", v.String())
}
