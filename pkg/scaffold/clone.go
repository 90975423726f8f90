package scaffold

import (
	"context"
	"path/filepath"

	projerrors "thoreinstein.com/projinit/pkg/errors"
	"thoreinstein.com/projinit/pkg/git"
)

// CloneAndSetup clones repoURL into target and then runs SetupEnvironment
// against the clone's descriptor. A failed clone stops here: no environment
// step runs and nothing is cleaned up.
func (s *Service) CloneAndSetup(ctx context.Context, repoURL, target, envName, fallbackDir string) error {
	ref, err := git.ParseGitHubURL(repoURL)
	if err != nil {
		return err
	}

	if s.SSHHost == "" {
		s.Out.Info("SSH host not set; cloning over HTTPS")
	}
	remote := ref.RemoteURL(s.SSHHost)

	if err := s.Cloner.Clone(ctx, remote, target); err != nil {
		s.log().Debug("clone failed", "url", remote, "target", target, "error", err)
		return err
	}
	s.Out.Success("Repo cloned to %s", target)

	descriptor := filepath.Join(target, s.Env.DescriptorName())
	return s.SetupEnvironment(ctx, descriptor, envName, fallbackDir)
}

// isCloneFailure reports whether err came from the clone itself rather than
// from the environment step that follows it.
func isCloneFailure(err error) bool {
	var gitErr *projerrors.GitError
	if projerrors.As(err, &gitErr) && gitErr.Step == "clone" {
		return true
	}
	var valErr *projerrors.ValidationError
	return projerrors.As(err, &valErr) && valErr.Field == "clone target"
}
