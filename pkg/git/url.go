package git

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	projerrors "thoreinstein.com/projinit/pkg/errors"
)

// RepoURL represents a parsed GitHub repository URL
type RepoURL struct {
	Original string // Original input
	Protocol string // "ssh" or "https"
	Owner    string // GitHub org/user
	Repo     string // Repository name (without .git)
}

var (
	// SSH format: git@github.com:owner/repo.git or git@github.com:owner/repo
	sshURLRegex = regexp.MustCompile(`^git@github\.com:([a-zA-Z0-9_.-]+)/([a-zA-Z0-9_.-]+?)(?:\.git)?$`)

	segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// ParseHTTPSURL parses https://github.com/<owner>/<repo>[.git] into owner and repo.
// The host must be github.com or www.github.com and the path must have exactly
// two segments.
func ParseHTTPSURL(raw string) (owner, repo string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", projerrors.NewValidationError("GitHub URL", raw, "empty URL provided")
	}

	trimmed := strings.TrimSuffix(raw, ".git")

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", "", projerrors.NewValidationError("GitHub URL", raw, err.Error())
	}
	if u.Scheme != "https" {
		return "", "", projerrors.NewValidationError("GitHub URL", raw, "not a valid GitHub HTTPS URL")
	}
	if host := strings.ToLower(u.Host); host != "github.com" && host != "www.github.com" {
		return "", "", projerrors.NewValidationError("GitHub URL", raw, "not a valid GitHub HTTPS URL")
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", projerrors.NewValidationError("GitHub URL", raw, fmt.Sprintf("unexpected GitHub path format: %s", u.Path))
	}
	for _, p := range parts {
		if !segmentRegex.MatchString(p) {
			return "", "", projerrors.NewValidationError("GitHub URL", raw, fmt.Sprintf("invalid path segment %q", p))
		}
	}

	return parts[0], parts[1], nil
}

// ParseGitHubURL parses an HTTPS or SSH GitHub URL.
// Supported formats:
//   - HTTPS: https://github.com/owner/repo[.git]
//   - SSH: git@github.com:owner/repo[.git]
func ParseGitHubURL(input string) (*RepoURL, error) {
	input = strings.TrimSpace(input)

	if matches := sshURLRegex.FindStringSubmatch(input); len(matches) == 3 {
		return &RepoURL{
			Original: input,
			Protocol: "ssh",
			Owner:    matches[1],
			Repo:     matches[2],
		}, nil
	}

	owner, repo, err := ParseHTTPSURL(input)
	if err != nil {
		return nil, err
	}
	return &RepoURL{
		Original: input,
		Protocol: "https",
		Owner:    owner,
		Repo:     repo,
	}, nil
}

// HTTPSURL returns the canonical HTTPS clone URL.
func (u *RepoURL) HTTPSURL() string {
	return fmt.Sprintf("https://github.com/%s/%s.git", u.Owner, u.Repo)
}

// SSHURL returns the clone URL through the given SSH host or alias.
func (u *RepoURL) SSHURL(host string) string {
	return fmt.Sprintf("git@%s:%s/%s.git", host, u.Owner, u.Repo)
}

// RemoteURL returns the SSH URL through sshHost when one is configured,
// otherwise the HTTPS URL (which defers to the git credential helper).
func (u *RepoURL) RemoteURL(sshHost string) string {
	if sshHost != "" {
		return u.SSHURL(sshHost)
	}
	return u.HTTPSURL()
}
