// Package errors provides typed errors for projinit.
//
// This package defines domain-specific error types that carry structured
// information for each subsystem (config, credentials, GitHub, git, conda).
// All error types implement the standard error interface and support
// errors.Is() and errors.As() from the standard library and cockroachdb/errors.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Field   string // Which config field has the issue
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with an underlying cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// CredentialError is returned when no GitHub token could be resolved.
type CredentialError struct {
	Sources []string // Sources that were consulted, in order
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CredentialError) Error() string {
	if len(e.Sources) > 0 {
		return fmt.Sprintf("credentials: %s (checked: %s)", e.Message, strings.Join(e.Sources, ", "))
	}
	return "credentials: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *CredentialError) Unwrap() error {
	return e.Cause
}

// NewCredentialError creates a new CredentialError.
func NewCredentialError(message string, sources ...string) *CredentialError {
	return &CredentialError{Message: message, Sources: sources}
}

// NewCredentialErrorWithCause creates a new CredentialError with an underlying cause.
func NewCredentialErrorWithCause(message string, cause error) *CredentialError {
	return &CredentialError{Message: message, Cause: cause}
}

// GitHubError represents GitHub API errors.
type GitHubError struct {
	Operation  string // e.g., "GetRepo", "CreateRepo"
	StatusCode int    // HTTP status code if applicable
	Message    string
	Retryable  bool
	Cause      error
}

// Error implements the error interface.
func (e *GitHubError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("github %s failed (HTTP %d): %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *GitHubError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the API answered 404.
func (e *GitHubError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// NewGitHubError creates a new GitHubError.
func NewGitHubError(operation, message string) *GitHubError {
	return &GitHubError{Operation: operation, Message: message}
}

// NewGitHubErrorWithStatus creates a new GitHubError with HTTP status code.
func NewGitHubErrorWithStatus(operation string, statusCode int, message string) *GitHubError {
	return &GitHubError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
		Retryable:  isRetryableHTTPStatus(statusCode),
	}
}

// NewGitHubErrorWithCause creates a new GitHubError with an underlying cause.
func NewGitHubErrorWithCause(operation, message string, cause error) *GitHubError {
	return &GitHubError{
		Operation: operation,
		Message:   message,
		Retryable: IsRetryable(cause),
		Cause:     cause,
	}
}

// GitError represents a failed git subprocess step.
type GitError struct {
	Step    string // e.g., "init", "commit", "push", "clone"
	Dir     string // Working directory the command ran in
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GitError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("git %s in %s failed: %s", e.Step, e.Dir, e.Message)
	}
	return fmt.Sprintf("git %s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *GitError) Unwrap() error {
	return e.Cause
}

// NewGitError creates a new GitError.
func NewGitError(step, dir, message string) *GitError {
	return &GitError{Step: step, Dir: dir, Message: message}
}

// NewGitErrorWithCause creates a new GitError with an underlying cause.
func NewGitErrorWithCause(step, dir, message string, cause error) *GitError {
	return &GitError{Step: step, Dir: dir, Message: message, Cause: cause}
}

// EnvError represents conda environment errors.
type EnvError struct {
	Operation string // e.g., "create", "create-from-file", "write-descriptor"
	Env       string
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *EnvError) Error() string {
	if e.Env != "" {
		return fmt.Sprintf("conda %s for %s failed: %s", e.Operation, e.Env, e.Message)
	}
	return fmt.Sprintf("conda %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *EnvError) Unwrap() error {
	return e.Cause
}

// NewEnvError creates a new EnvError.
func NewEnvError(operation, env, message string) *EnvError {
	return &EnvError{Operation: operation, Env: env, Message: message}
}

// NewEnvErrorWithCause creates a new EnvError with an underlying cause.
func NewEnvErrorWithCause(operation, env, message string, cause error) *EnvError {
	return &EnvError{Operation: operation, Env: env, Message: message, Cause: cause}
}

// ValidationError reports bad user input (names, URLs, paths).
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IsRetryable checks if an error or any error in its chain is retryable.
// projinit never retries on its own; the flag only drives user guidance.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Retryable
	}

	return false
}

// IsConfigError checks if an error or any error in its chain is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsCredentialError checks if an error or any error in its chain is a CredentialError.
func IsCredentialError(err error) bool {
	var credErr *CredentialError
	return errors.As(err, &credErr)
}

// IsGitHubError checks if an error or any error in its chain is a GitHubError.
func IsGitHubError(err error) bool {
	var ghErr *GitHubError
	return errors.As(err, &ghErr)
}

// IsGitError checks if an error or any error in its chain is a GitError.
func IsGitError(err error) bool {
	var gitErr *GitError
	return errors.As(err, &gitErr)
}

// IsEnvError checks if an error or any error in its chain is an EnvError.
func IsEnvError(err error) bool {
	var envErr *EnvError
	return errors.As(err, &envErr)
}

// IsValidationError checks if an error or any error in its chain is a ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// isRetryableHTTPStatus returns true for HTTP status codes that are typically retryable.
func isRetryableHTTPStatus(statusCode int) bool {
	switch statusCode {
	case 408, // Request Timeout
		429, // Too Many Requests
		500, // Internal Server Error
		502, // Bad Gateway
		503, // Service Unavailable
		504: // Gateway Timeout
		return true
	default:
		return false
	}
}

// Re-export commonly used functions from cockroachdb/errors for convenience.
// This allows consumers to use projerrors.Wrap() instead of importing two packages.
var (
	// New creates a new error with the given message.
	New = errors.New

	// Newf creates a new error with formatted message.
	Newf = errors.Newf

	// Wrap wraps an error with additional context.
	Wrap = errors.Wrap

	// Wrapf wraps an error with formatted additional context.
	Wrapf = errors.Wrapf

	// Is reports whether any error in err's chain matches target.
	Is = errors.Is

	// As finds the first error in err's chain that matches target.
	As = errors.As

	// Cause returns the root cause of an error.
	Cause = errors.Cause
)
