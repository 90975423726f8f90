package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestGitHubError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GitHubError
		expected string
	}{
		{
			name:     "with status",
			err:      NewGitHubErrorWithStatus("GetRepo", 404, "Not Found"),
			expected: "github GetRepo failed (HTTP 404): Not Found",
		},
		{
			name:     "without status",
			err:      NewGitHubError("CreateRepo", "token is required"),
			expected: "github CreateRepo failed: token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGitHubError_IsNotFound(t *testing.T) {
	if !NewGitHubErrorWithStatus("GetRepo", 404, "x").IsNotFound() {
		t.Error("404 should be not-found")
	}
	for _, code := range []int{401, 403, 429, 500} {
		if NewGitHubErrorWithStatus("GetRepo", code, "x").IsNotFound() {
			t.Errorf("HTTP %d should not be not-found", code)
		}
	}
}

func TestNewGitHubErrorWithStatus_Retryable(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{401, false},
		{403, false},
		{404, false},
		{422, false},
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
	}

	for _, tt := range tests {
		err := NewGitHubErrorWithStatus("op", tt.status, "msg")
		if err.Retryable != tt.want {
			t.Errorf("status %d: Retryable = %v, want %v", tt.status, err.Retryable, tt.want)
		}
		if IsRetryable(errors.Wrap(err, "wrapped")) != tt.want {
			t.Errorf("status %d: IsRetryable through wrap = %v, want %v", tt.status, !tt.want, tt.want)
		}
	}
}

func TestGitError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GitError
		expected string
	}{
		{
			name:     "with dir",
			err:      NewGitError("push", "/tmp/p", "exit status 128"),
			expected: "git push in /tmp/p failed: exit status 128",
		},
		{
			name:     "without dir",
			err:      NewGitError("clone", "", "target exists"),
			expected: "git clone failed: target exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEnvError_Error(t *testing.T) {
	if got := NewEnvError("create", "demo", "boom").Error(); got != "conda create for demo failed: boom" {
		t.Errorf("Error() = %q", got)
	}
	if got := NewEnvError("version", "", "boom").Error(); got != "conda version failed: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCredentialError_Error(t *testing.T) {
	err := NewCredentialError("no token found", "env", "keychain")
	if got := err.Error(); got != "credentials: no token found (checked: env, keychain)" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("project type", "dev", "must be one of tmp, poc, prod")
	want := `invalid project type "dev": must be one of tmp, poc, prod`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrap_PreservesCause(t *testing.T) {
	cause := errors.New("underlying cause")

	tests := []struct {
		name string
		err  error
	}{
		{"config", NewConfigErrorWithCause("root", "bad", cause)},
		{"credential", NewCredentialErrorWithCause("bad", cause)},
		{"github", NewGitHubErrorWithCause("GetRepo", "bad", cause)},
		{"git", NewGitErrorWithCause("init", "/tmp", "bad", cause)},
		{"env", NewEnvErrorWithCause("create", "demo", "bad", cause)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%T, cause) = false, want true", tt.err)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	wrapped := errors.Wrap(NewGitError("push", "", "x"), "init failed")

	if !IsGitError(wrapped) {
		t.Error("IsGitError should see through wrap")
	}
	if IsGitHubError(wrapped) || IsEnvError(wrapped) || IsConfigError(wrapped) {
		t.Error("unrelated Is* helpers should be false")
	}
	if !IsValidationError(NewValidationError("url", "x", "y")) {
		t.Error("IsValidationError should match")
	}
	if !IsCredentialError(NewCredentialError("x")) {
		t.Error("IsCredentialError should match")
	}
	if IsRetryable(nil) {
		t.Error("nil should not be retryable")
	}
}

func TestFormatUserError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "nil",
			err:      nil,
			contains: nil,
		},
		{
			name:     "github unauthorized",
			err:      errors.Wrap(NewGitHubErrorWithStatus("GetRepo", 401, "Bad credentials"), "lookup"),
			contains: []string{"GitHub error during GetRepo", "Authentication failed"},
		},
		{
			name:     "github rate limited",
			err:      NewGitHubErrorWithStatus("CreateRepo", 429, "slow down"),
			contains: []string{"Rate limit exceeded", "may be temporary"},
		},
		{
			name:     "git commit",
			err:      NewGitError("commit", "/tmp/p", "exit status 1"),
			contains: []string{"Git step 'commit' failed", "user.name"},
		},
		{
			name:     "credential",
			err:      NewCredentialError("no token found", "env"),
			contains: []string{"GITHUB_PAT_TOKEN", "projinit auth login"},
		},
		{
			name:     "env",
			err:      NewEnvError("create", "demo", "exit status 1"),
			contains: []string{"environment 'demo'", "projinit doctor"},
		},
		{
			name:     "config",
			err:      NewConfigError("conda.python_version", "not a version"),
			contains: []string{"conda.python_version", "projinit config init"},
		},
		{
			name:     "plain",
			err:      errors.New("something odd"),
			contains: []string{"something odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUserError(tt.err)
			if tt.err == nil && got != "" {
				t.Errorf("FormatUserError(nil) = %q, want empty", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatUserError() = %q, should contain %q", got, want)
				}
			}
		})
	}
}
