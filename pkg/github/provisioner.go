package github

import (
	"context"
	"log/slog"
	"regexp"

	projerrors "thoreinstein.com/projinit/pkg/errors"
)

var repoNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ProvisionOptions configures Provisioner.
type ProvisionOptions struct {
	Create CreateOptions

	// StrictLookup returns the lookup error when the lookup fails for a
	// reason other than 404. Without it a warning is logged and creation
	// is attempted anyway.
	StrictLookup bool
}

// Provisioner finds or creates the repository for a project under the
// authenticated user.
type Provisioner struct {
	client Client
	opts   ProvisionOptions
	logger *slog.Logger

	login string
}

// NewProvisioner creates a Provisioner backed by client.
func NewProvisioner(client Client, opts ProvisionOptions) *Provisioner {
	return &Provisioner{client: client, opts: opts, logger: slog.Default()}
}

// Lookup checks whether name exists under the authenticated user.
func (p *Provisioner) Lookup(ctx context.Context, name string) LookupResult {
	owner, err := p.owner(ctx)
	if err != nil {
		return LookupResult{Status: LookupFailed, Err: err}
	}

	repo, err := p.client.GetRepository(ctx, owner, name)
	if err != nil {
		var ghErr *projerrors.GitHubError
		if projerrors.As(err, &ghErr) && ghErr.IsNotFound() {
			return LookupResult{Status: LookupNotFound}
		}
		return LookupResult{Status: LookupFailed, Err: err}
	}

	return LookupResult{Status: LookupFound, Repository: repo}
}

// Ensure returns the existing repository named name, creating it when the
// lookup reports it missing or fails. An existing repository is never
// duplicated.
func (p *Provisioner) Ensure(ctx context.Context, name string) (*Repository, error) {
	if !repoNameRegex.MatchString(name) {
		return nil, projerrors.NewValidationError("repository name", name, "may only contain letters, digits, '-', '_' and '.'")
	}

	res := p.Lookup(ctx, name)
	p.logger.Debug("repository lookup", "repo", name, "status", res.Status.String())

	switch res.Status {
	case LookupFound:
		return res.Repository, nil
	case LookupNotFound:
	default:
		if p.opts.StrictLookup {
			return nil, res.Err
		}
		p.logger.Warn("repository lookup failed, attempting to create it anyway", "repo", name, "error", res.Err)
	}

	repo, err := p.client.CreateRepository(ctx, name, p.opts.Create)
	if err != nil {
		return nil, err
	}
	repo.Created = true
	return repo, nil
}

func (p *Provisioner) owner(ctx context.Context) (string, error) {
	if p.login != "" {
		return p.login, nil
	}
	login, err := p.client.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	p.login = login
	return login, nil
}
