package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestPrompter_StandardOps(t *testing.T) {
	cases := []struct {
		name  string
		input string
		op    func(p *Prompter) (any, error)
		want  any
	}{
		{
			name:  "Text basic",
			input: "demo\n",
			op:    func(p *Prompter) (any, error) { return p.Text("Project name:", "") },
			want:  "demo",
		},
		{
			name:  "Text default",
			input: "\n",
			op:    func(p *Prompter) (any, error) { return p.Text("Environment name:", "demo") },
			want:  "demo",
		},
		{
			name:  "Text trims and accepts missing newline",
			input: "  spaced  ",
			op:    func(p *Prompter) (any, error) { return p.Text("Name:", "") },
			want:  "spaced",
		},
		{
			name:  "Required retries on empty",
			input: "\n\nfinal\n",
			op:    func(p *Prompter) (any, error) { return p.Required("Project name:") },
			want:  "final",
		},
		{
			name:  "Confirm yes",
			input: "y\n",
			op:    func(p *Prompter) (any, error) { return p.Confirm("Proceed?", false) },
			want:  true,
		},
		{
			name:  "Confirm YES uppercase",
			input: "YES\n",
			op:    func(p *Prompter) (any, error) { return p.Confirm("Proceed?", false) },
			want:  true,
		},
		{
			name:  "Confirm no",
			input: "n\n",
			op:    func(p *Prompter) (any, error) { return p.Confirm("Proceed?", true) },
			want:  false,
		},
		{
			name:  "Confirm empty uses default",
			input: "\n",
			op:    func(p *Prompter) (any, error) { return p.Confirm("Proceed?", true) },
			want:  true,
		},
		{
			name:  "Select by number",
			input: "2\n",
			op:    func(p *Prompter) (any, error) { return p.Select("Project type:", []string{"tmp", "poc", "prod"}) },
			want:  "poc",
		},
		{
			name:  "Select by name after invalid",
			input: "9\nPROD\n",
			op:    func(p *Prompter) (any, error) { return p.Select("Project type:", []string{"tmp", "poc", "prod"}) },
			want:  "prod",
		},
		{
			name:  "Secret without terminal reads line",
			input: "ghp_secret\n",
			op:    func(p *Prompter) (any, error) { return p.Secret("Token:") },
			want:  "ghp_secret",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPrompter(tc.input)
			got, err := tc.op(p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrompter_EOFCancels(t *testing.T) {
	p, _ := newTestPrompter("")

	_, err := p.Text("Name:", "x")
	assert.ErrorIs(t, err, ErrCancelled)

	_, err = p.Confirm("Sure?", true)
	assert.ErrorIs(t, err, ErrCancelled)

	_, err = p.Select("Pick:", []string{"a"})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPrompter_SharedReaderAcrossQuestions(t *testing.T) {
	p, out := newTestPrompter("demo\n2\ny\n")

	name, err := p.Text("Project name:", "")
	require.NoError(t, err)
	typ, err := p.Select("Project type:", []string{"tmp", "poc", "prod"})
	require.NoError(t, err)
	ok, err := p.Confirm("Create repo?", false)
	require.NoError(t, err)

	assert.Equal(t, "demo", name)
	assert.Equal(t, "poc", typ)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Project name:")
	assert.Contains(t, out.String(), "[y/N]")
}

func TestPrompter_SelectNoOptions(t *testing.T) {
	p, _ := newTestPrompter("1\n")
	_, err := p.Select("Pick:", nil)
	assert.Error(t, err)
}
