package github

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cli/oauth"

	projerrors "thoreinstein.com/projinit/pkg/errors"
)

const (
	// DefaultGitHubHost is the default GitHub host for the device flow.
	DefaultGitHubHost = "https://github.com"

	// DefaultScopes are the OAuth scopes needed to create and push repositories.
	DefaultScopes = "repo"
)

// OAuthConfig holds OAuth configuration for device flow authentication.
type OAuthConfig struct {
	ClientID string    // OAuth app client ID (required for device flow)
	Scopes   []string  // OAuth scopes to request
	HostURL  string    // GitHub host URL (default: github.com)
	Stdin    io.Reader // Read when waiting for Enter (default: os.Stdin)
}

// DeviceAuth performs OAuth device flow authentication and returns the
// access token. The user is shown a one-time code to enter at GitHub's
// verification URL while the flow polls for completion.
func DeviceAuth(ctx context.Context, cfg OAuthConfig, stdout io.Writer) (string, error) {
	if cfg.ClientID == "" {
		return "", projerrors.NewGitHubError("DeviceAuth", "github.client_id is required for OAuth device flow")
	}

	hostURL := cfg.HostURL
	if hostURL == "" {
		hostURL = DefaultGitHubHost
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{DefaultScopes}
	}

	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = io.Discard
	}

	host, err := oauth.NewGitHubHost(hostURL)
	if err != nil {
		return "", projerrors.NewGitHubErrorWithCause("DeviceAuth", "invalid GitHub host URL", err)
	}

	flow := &oauth.Flow{
		Host:     host,
		ClientID: cfg.ClientID,
		Scopes:   scopes,
		Stdout:   stdout,
		Stdin:    stdin,
		DisplayCode: func(code, verificationURL string) error {
			fmt.Fprintf(stdout, "\n! First, copy your one-time code: %s\n", code)
			fmt.Fprintf(stdout, "- Then open %s in your browser and paste it.\n", verificationURL)
			return nil
		},
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	// cli/oauth handles polling until the user authorizes or the code expires.
	token, err := flow.DeviceFlow()
	if err != nil {
		return "", projerrors.NewGitHubErrorWithCause("DeviceAuth", "device flow failed", err)
	}

	return token.Token, nil
}
