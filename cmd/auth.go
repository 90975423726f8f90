package cmd

import (
	"github.com/spf13/cobra"

	"thoreinstein.com/projinit/pkg/credentials"
	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/github"
)

var authDevice bool

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the GitHub token stored in the system keychain",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a GitHub token in the system keychain",
	Long: `Store a GitHub token in the system keychain.

By default you are asked for a personal access token with the 'repo' scope.
With --device, projinit runs the GitHub OAuth device flow instead; this needs
github.client_id in your config.

The token is verified against the GitHub API before it is stored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var token, source string
		if authDevice {
			t, err := github.DeviceAuth(cmd.Context(), github.OAuthConfig{ClientID: appConfig.GitHub.ClientID}, out.Out)
			if err != nil {
				return err
			}
			token, source = t, "device"
		} else {
			t, err := newSecretPrompter().Secret("GitHub personal access token:")
			if err != nil {
				return err
			}
			token, source = t, "pat"
		}

		if token == "" {
			return projerrors.NewCredentialError("no token entered")
		}

		login, err := verifyToken(cmd, token)
		if err != nil {
			return err
		}

		store := newTokenStore()
		if ks, ok := store.(*credentials.KeychainStore); ok {
			store = ks.WithSource(source)
		}
		if err := store.Set(token); err != nil {
			return err
		}

		out.Success("Logged in to GitHub as %s; token stored in the system keychain", login)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which GitHub token projinit would use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := newLoader(appConfig).Load()
		if err != nil {
			return err
		}

		source := tok.Source
		if tok.Detail != "" {
			source += " (" + tok.Detail + ")"
		}
		out.Info("Token source: %s", source)

		login, err := verifyToken(cmd, tok.Value)
		if err != nil {
			return err
		}
		out.Success("Authenticated as %s", login)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the GitHub token from the system keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newTokenStore().Clear(); err != nil {
			return err
		}
		out.Success("Removed GitHub token from the system keychain")
		return nil
	},
}

func init() {
	authLoginCmd.Flags().BoolVar(&authDevice, "device", false, "use the GitHub OAuth device flow")
	authCmd.AddCommand(authLoginCmd, authStatusCmd, authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func verifyToken(cmd *cobra.Command, token string) (string, error) {
	client, err := newAPIClient(token)
	if err != nil {
		return "", err
	}
	return client.CurrentUser(cmd.Context())
}
