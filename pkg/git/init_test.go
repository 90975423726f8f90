package git

import (
	"context"
	"errors"
	"reflect"
	"testing"

	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/runner"
)

func TestInitializer_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mock := &runner.Recorder{}
	init := NewInitializer(mock, InitOptions{})

	if err := init.Init(context.Background(), dir, "https://github.com/owner/demo.git"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	want := []string{
		"git init",
		"git add .",
		"git commit -m Initial commit",
		"git remote add origin https://github.com/owner/demo.git",
		"git branch -M main",
		"git push -u origin main",
	}
	if got := mock.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("commands =\n%v\nwant\n%v", got, want)
	}

	for _, c := range mock.Calls() {
		if c.Dir != dir {
			t.Errorf("%s ran in %q, want %q", c, c.Dir, dir)
		}
	}
}

func TestInitializer_CustomOptions(t *testing.T) {
	t.Parallel()

	mock := &runner.Recorder{}
	init := NewInitializer(mock, InitOptions{Branch: "trunk", Remote: "upstream", CommitMessage: "scaffold"})

	if err := init.Init(context.Background(), t.TempDir(), "git@github-biz:o/r.git"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	cmds := mock.Commands()
	if cmds[2] != "git commit -m scaffold" {
		t.Errorf("commit = %q", cmds[2])
	}
	if cmds[3] != "git remote add upstream git@github-biz:o/r.git" {
		t.Errorf("remote = %q", cmds[3])
	}
	if cmds[5] != "git push -u upstream trunk" {
		t.Errorf("push = %q", cmds[5])
	}
}

func TestInitializer_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	mock := &runner.Recorder{
		RunFunc: func(dir, name string, args ...string) error {
			if args[0] == "commit" {
				return errors.New("nothing to commit")
			}
			return nil
		},
	}

	err := NewInitializer(mock, InitOptions{}).Init(context.Background(), t.TempDir(), "https://github.com/o/r.git")
	if err == nil {
		t.Fatal("Init() should fail when commit fails")
	}

	var gitErr *projerrors.GitError
	if !errors.As(err, &gitErr) {
		t.Fatalf("error = %T, want GitError", err)
	}
	if gitErr.Step != "commit" {
		t.Errorf("failed step = %q, want commit", gitErr.Step)
	}

	if got := len(mock.Calls()); got != 3 {
		t.Errorf("ran %d steps, want 3 (init, add, commit): %v", got, mock.Commands())
	}
}

func TestInitializer_EmptyRemote(t *testing.T) {
	mock := &runner.Recorder{}
	if err := NewInitializer(mock, InitOptions{}).Init(context.Background(), t.TempDir(), ""); err == nil {
		t.Error("Init() with empty remote should fail")
	}
	if len(mock.Calls()) != 0 {
		t.Errorf("no git command should run, got %v", mock.Commands())
	}
}

func TestVersion(t *testing.T) {
	mock := &runner.Recorder{
		OutputFunc: func(dir, name string, args ...string) ([]byte, error) {
			return []byte("git version 2.45.1\n"), nil
		},
	}
	v, err := Version(context.Background(), mock)
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if v.String() != "2.45.1" {
		t.Errorf("Version() = %s", v)
	}
}
