package github

import (
	"context"
)

// Client defines the GitHub operations projinit needs.
// APIClient implements it over the REST API; tests substitute fakes.
type Client interface {
	// CurrentUser returns the login of the authenticated user.
	CurrentUser(ctx context.Context) (string, error)

	// GetRepository returns owner/name, or a GitHubError with status 404
	// when it does not exist.
	GetRepository(ctx context.Context, owner, name string) (*Repository, error)

	// CreateRepository creates name under the authenticated user.
	CreateRepository(ctx context.Context, name string, opts CreateOptions) (*Repository, error)
}

// Compile-time check that APIClient implements Client.
var _ Client = (*APIClient)(nil)
