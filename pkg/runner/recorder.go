package runner

import (
	"context"
	"strings"
	"sync"
)

// Call is one command seen by a Recorder.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a shell-like command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Recorder is a CommandRunner for tests. It records every call and delegates
// to RunFunc/OutputFunc when they are set; otherwise calls succeed.
type Recorder struct {
	RunFunc    func(dir, name string, args ...string) error
	OutputFunc func(dir, name string, args ...string) ([]byte, error)

	mu    sync.Mutex
	calls []Call
}

var _ CommandRunner = (*Recorder)(nil)

// Run records the call.
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) error {
	r.record(dir, name, args)
	if r.RunFunc != nil {
		return r.RunFunc(dir, name, args...)
	}
	return nil
}

// Output records the call.
func (r *Recorder) Output(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	r.record(dir, name, args)
	if r.OutputFunc != nil {
		return r.OutputFunc(dir, name, args...)
	}
	return nil, nil
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Commands returns the recorded calls as command lines.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

func (r *Recorder) record(dir, name string, args []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Dir: dir, Name: name, Args: append([]string(nil), args...)})
}
