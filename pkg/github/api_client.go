package github

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	projerrors "thoreinstein.com/projinit/pkg/errors"
)

// APIClient implements Client using GitHub REST API.
type APIClient struct {
	client  *gh.Client
	baseURL string
	logger  *slog.Logger
}

// APIClientOption is a functional option for configuring APIClient.
type APIClientOption func(*APIClient)

// WithAPILogger sets a custom logger for the API client.
func WithAPILogger(logger *slog.Logger) APIClientOption {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithBaseURL points the client at a different API root, such as a test
// server. The URL must be absolute.
func WithBaseURL(raw string) APIClientOption {
	return func(c *APIClient) {
		c.baseURL = raw
	}
}

// NewAPIClient creates a GitHub API client with the given token.
func NewAPIClient(token string, opts ...APIClientOption) (*APIClient, error) {
	if token == "" {
		return nil, projerrors.NewGitHubError("NewAPIClient", "token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	client := &APIClient{
		client: gh.NewClient(tc),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.baseURL != "" {
		raw := client.baseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() {
			return nil, projerrors.NewGitHubErrorWithCause("NewAPIClient", "invalid base URL "+client.baseURL, err)
		}
		client.client.BaseURL = u
	}

	return client, nil
}

// CurrentUser returns the login of the authenticated user.
func (c *APIClient) CurrentUser(ctx context.Context) (string, error) {
	c.logger.Debug("getting authenticated user")

	user, resp, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", toGitHubError("GetUser", resp, err)
	}
	return user.GetLogin(), nil
}

// GetRepository retrieves a repository by owner and name.
func (c *APIClient) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	c.logger.Debug("getting repository", "owner", owner, "repo", name)

	repo, resp, err := c.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, toGitHubError("GetRepo", resp, err)
	}
	return repositoryFromGitHub(repo), nil
}

// CreateRepository creates a repository owned by the authenticated user.
func (c *APIClient) CreateRepository(ctx context.Context, name string, opts CreateOptions) (*Repository, error) {
	c.logger.Debug("creating repository", "repo", name, "private", opts.Private)

	newRepo := &gh.Repository{
		Name:    gh.Ptr(name),
		Private: gh.Ptr(opts.Private),
	}
	if opts.Description != "" {
		newRepo.Description = gh.Ptr(opts.Description)
	}

	// Empty org creates under the authenticated user.
	repo, resp, err := c.client.Repositories.Create(ctx, "", newRepo)
	if err != nil {
		return nil, toGitHubError("CreateRepo", resp, err)
	}
	return repositoryFromGitHub(repo), nil
}

func repositoryFromGitHub(r *gh.Repository) *Repository {
	return &Repository{
		Owner:    r.GetOwner().GetLogin(),
		Name:     r.GetName(),
		CloneURL: r.GetCloneURL(),
		HTMLURL:  r.GetHTMLURL(),
		Private:  r.GetPrivate(),
	}
}

func toGitHubError(operation string, resp *gh.Response, err error) error {
	if resp != nil && resp.StatusCode > 0 {
		ghErr := projerrors.NewGitHubErrorWithStatus(operation, resp.StatusCode, apiMessage(err))
		ghErr.Cause = err
		return ghErr
	}
	return projerrors.NewGitHubErrorWithCause(operation, "API request failed", err)
}

// apiMessage prefers the message GitHub put in the response body.
func apiMessage(err error) string {
	var errResp *gh.ErrorResponse
	if projerrors.As(err, &errResp) && errResp.Message != "" {
		return errResp.Message
	}
	return err.Error()
}
