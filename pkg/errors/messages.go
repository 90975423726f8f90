package errors

import (
	"fmt"
	"strings"
)

// FormatUserError returns a user-friendly error message with actionable guidance.
// It examines the error chain and provides context-appropriate help text.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var configErr *ConfigError
	if As(err, &configErr) {
		return formatConfigError(configErr)
	}

	var credErr *CredentialError
	if As(err, &credErr) {
		return formatCredentialError(credErr)
	}

	var ghErr *GitHubError
	if As(err, &ghErr) {
		return formatGitHubError(ghErr)
	}

	var gitErr *GitError
	if As(err, &gitErr) {
		return formatGitError(gitErr)
	}

	var envErr *EnvError
	if As(err, &envErr) {
		return formatEnvError(envErr)
	}

	return err.Error()
}

func formatConfigError(err *ConfigError) string {
	var b strings.Builder

	if err.Field != "" {
		fmt.Fprintf(&b, "Configuration error in '%s': %s\n", err.Field, err.Message)
	} else {
		fmt.Fprintf(&b, "Configuration error: %s\n", err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Check your config file: ~/.config/projinit/config.toml\n")
	b.WriteString("  • Run 'projinit config init' to write a starter config\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

func formatCredentialError(err *CredentialError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "No GitHub token available: %s\n", err.Message)
	if len(err.Sources) > 0 {
		fmt.Fprintf(&b, "Checked: %s\n", strings.Join(err.Sources, ", "))
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Set GITHUB_PAT_TOKEN in the environment or a .env file\n")
	b.WriteString("  • Or run 'projinit auth login' to store a token in the system keychain\n")
	b.WriteString("  • Or add a line 'Current Github PAT: <token>' to the token file\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatGitHubError formats a GitHubError with actionable guidance based on status code.
func formatGitHubError(err *GitHubError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "GitHub error during %s: %s\n", err.Operation, err.Message)

	switch err.StatusCode {
	case 401:
		b.WriteString("\nAuthentication failed. To fix this:\n")
		b.WriteString("  • Check that your personal access token has not expired\n")
		b.WriteString("  • Run 'projinit auth login' to store a fresh token\n")

	case 403:
		b.WriteString("\nPermission denied. To fix this:\n")
		b.WriteString("  • Check that your token has the 'repo' scope\n")
		b.WriteString("  • If you hit a secondary rate limit, wait before retrying\n")

	case 404:
		b.WriteString("\nResource not found. To fix this:\n")
		b.WriteString("  • Verify the repository name and owner are correct\n")
		b.WriteString("  • Check that you have access to the repository\n")

	case 422:
		b.WriteString("\nValidation failed. To fix this:\n")
		b.WriteString("  • A repository with this name may already exist under another owner\n")
		b.WriteString("  • Repository names may only contain letters, digits, '-', '_' and '.'\n")

	case 429:
		b.WriteString("\nRate limit exceeded. To fix this:\n")
		b.WriteString("  • Wait a few minutes before running projinit again\n")

	case 500, 502, 503, 504:
		b.WriteString("\nGitHub server error. To fix this:\n")
		b.WriteString("  • Wait a few moments and try again\n")
		b.WriteString("  • Check GitHub Status: https://www.githubstatus.com\n")
	}

	if err.Retryable {
		b.WriteString("\nThis error may be temporary. You can try running the command again.\n")
	}

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

func formatGitError(err *GitError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Git step '%s' failed: %s\n", err.Step, err.Message)
	if err.Dir != "" {
		fmt.Fprintf(&b, "Directory: %s\n", err.Dir)
	}

	switch err.Step {
	case "commit":
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Configure your identity: git config --global user.name / user.email\n")
	case "push", "clone":
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Check your network connection and git credentials\n")
		b.WriteString("  • If you use an SSH alias, set git.ssh_host (or SSH_HOST)\n")
	default:
		b.WriteString("\nTo troubleshoot:\n")
		b.WriteString("  • Run with --verbose to see the exact git commands\n")
	}

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

func formatEnvError(err *EnvError) string {
	var b strings.Builder

	if err.Env != "" {
		fmt.Fprintf(&b, "Conda %s for environment '%s' failed: %s\n", err.Operation, err.Env, err.Message)
	} else {
		fmt.Fprintf(&b, "Conda %s failed: %s\n", err.Operation, err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Ensure conda is installed and on your PATH (or set conda.command)\n")
	b.WriteString("  • Run 'projinit doctor' to check tool versions\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}
