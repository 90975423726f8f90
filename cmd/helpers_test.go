package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"thoreinstein.com/projinit/pkg/config"
	"thoreinstein.com/projinit/pkg/credentials"
	"thoreinstein.com/projinit/pkg/runner"
	"thoreinstein.com/projinit/pkg/scaffold"
	"thoreinstein.com/projinit/pkg/ui"
)

// memStore is an in-memory credentials.Store.
type memStore struct {
	token string
}

func (m *memStore) Get() (string, error) { return m.token, nil }

func (m *memStore) Set(token string) error {
	m.token = token
	return nil
}

func (m *memStore) Clear() error {
	m.token = ""
	return nil
}

// setupCmdTest installs a config rooted at a temp directory, captured output,
// a recording runner and an in-memory token store. GitHub tokens from the
// environment are cleared.
func setupCmdTest(t *testing.T) (*config.Config, *bytes.Buffer, *bytes.Buffer, *runner.Recorder, *memStore) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{
		Root: root,
		GitHub: config.GitHubConfig{
			TokenFile:   filepath.Join(root, "README.txt"),
			TokenMarker: config.DefaultTokenMarker,
		},
		Git: config.GitConfig{
			DefaultBranch: "main",
			Remote:        "origin",
			CommitMessage: "Initial commit",
			MinVersion:    "2.28.0",
		},
		Conda: config.CondaConfig{
			Command:       "conda",
			PythonVersion: "3.11",
			Descriptor:    "environment.yml",
			MinVersion:    "4.6.0",
		},
	}

	for _, name := range credentials.EnvVars {
		t.Setenv(name, "")
	}

	var stdout, stderr bytes.Buffer
	rec := &runner.Recorder{}
	store := &memStore{}

	oldConfig, oldOut, oldRunner, oldStore := appConfig, out, commandRunner, newTokenStore
	appConfig = cfg
	out = &ui.Output{Out: &stdout, ErrOut: &stderr}
	commandRunner = rec
	newTokenStore = func() credentials.Store { return store }
	t.Cleanup(func() {
		appConfig, out, commandRunner, newTokenStore = oldConfig, oldOut, oldRunner, oldStore
	})

	return cfg, &stdout, &stderr, rec, store
}

// usePrompter feeds input to the interactive prompts for the rest of the test.
func usePrompter(t *testing.T, input string) {
	t.Helper()
	p := ui.NewPrompter(bytes.NewBufferString(input), &bytes.Buffer{})
	old, oldSecret := newPrompter, newSecretPrompter
	newPrompter = func() scaffold.Prompter { return p }
	newSecretPrompter = func() secretPrompter { return p }
	t.Cleanup(func() { newPrompter, newSecretPrompter = old, oldSecret })
}
