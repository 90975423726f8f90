package github

// Repository is a GitHub repository projinit can push to.
type Repository struct {
	Owner    string
	Name     string
	CloneURL string // HTTPS clone URL
	HTMLURL  string
	Private  bool
	Created  bool // True when Ensure created it during this run
}

// FullName returns owner/name.
func (r *Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// CreateOptions controls how new repositories are created.
type CreateOptions struct {
	Private     bool
	Description string
}

// LookupStatus tags the outcome of a repository lookup.
type LookupStatus int

const (
	// LookupFailed means the lookup could not determine whether the
	// repository exists (auth, rate limit, network, server error).
	LookupFailed LookupStatus = iota
	// LookupFound means the repository exists.
	LookupFound
	// LookupNotFound means the API answered 404.
	LookupNotFound
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not found"
	default:
		return "failed"
	}
}

// LookupResult is the outcome of Provisioner.Lookup.
type LookupResult struct {
	Status     LookupStatus
	Repository *Repository // Set when Status is LookupFound
	Err        error       // Set when Status is LookupFailed
}
