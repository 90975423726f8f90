package scaffold

import (
	"context"

	"thoreinstein.com/projinit/pkg/git"
	"thoreinstein.com/projinit/pkg/github"
	"thoreinstein.com/projinit/pkg/project"
)

// Answers pre-fills questions that would otherwise be asked.
type Answers struct {
	Name string
	Type project.Type
}

// Result describes what Run did.
type Result struct {
	Project    *project.Project
	Repository *github.Repository // Set when a repository was provisioned
	InitErr    error              // Set when the initial push failed
	CloneErr   error              // Set when cloning failed; the project itself still exists
}

// Run asks for the project, creates its structure, then optionally links a
// GitHub repository and a conda environment.
func (s *Service) Run(ctx context.Context, ans Answers) (*Result, error) {
	name, err := s.askName(ans.Name)
	if err != nil {
		return nil, err
	}
	typ, err := s.askType(ans.Type)
	if err != nil {
		return nil, err
	}

	p, err := s.Creator.Create(name, typ)
	if err != nil {
		return nil, err
	}
	res := &Result{Project: p}

	hasRepo, err := s.Prompter.Confirm("Do you already have a GitHub repo for this project?", true)
	if err != nil {
		return nil, err
	}

	switch {
	case hasRepo:
		repoURL, err := s.askRepoURL()
		if err != nil {
			return nil, err
		}
		if err := s.cloneStep(ctx, repoURL, p, res); err != nil {
			return nil, err
		}

	default:
		create, err := s.Prompter.Confirm("Do you want to create a new GitHub repo?", true)
		if err != nil {
			return nil, err
		}
		if create {
			repo, err := s.provision(ctx, name)
			if err != nil {
				return nil, err
			}
			res.Repository = repo

			s.initStep(ctx, p, repo, res)
			if err := s.cloneStep(ctx, repo.CloneURL, p, res); err != nil {
				return nil, err
			}
		} else if err := s.offerEnvironment(ctx, name, p.Path); err != nil {
			return nil, err
		}
	}

	s.Out.Success("Project '%s' is ready at: %s", name, p.Path)
	return res, nil
}

// initStep pushes the project skeleton to a repository created by this run.
// A reused repository already has history, so it is only cloned. A failed
// push is recorded in res and the run continues to the clone.
func (s *Service) initStep(ctx context.Context, p *project.Project, repo *github.Repository, res *Result) {
	if !repo.Created {
		s.Out.Info("Skipping initial push to existing repo '%s'", repo.FullName())
		return
	}
	if err := s.Initializer.Init(ctx, p.Path, repo.CloneURL); err != nil {
		s.Out.Error("Failed to push the project to '%s': %v", repo.FullName(), err)
		res.InitErr = err
	}
}

// cloneStep runs CloneAndSetup, recording a clone failure in res instead of
// aborting the run. Environment errors still abort.
func (s *Service) cloneStep(ctx context.Context, repoURL string, p *project.Project, res *Result) error {
	err := s.CloneAndSetup(ctx, repoURL, p.RepoPath(), p.Name, p.Path)
	if err == nil {
		return nil
	}
	if isCloneFailure(err) {
		s.Out.Error("Failed to clone the repo: %v", err)
		res.CloneErr = err
		return nil
	}
	return err
}

func (s *Service) provision(ctx context.Context, name string) (*github.Repository, error) {
	prov, err := s.NewProvisioner(ctx)
	if err != nil {
		return nil, err
	}

	repo, err := prov.Ensure(ctx, name)
	if err != nil {
		return nil, err
	}

	if repo.Created {
		s.Out.Success("Created new repo '%s'", repo.FullName())
	} else {
		s.Out.Warning("Repo '%s' already exists. Using existing repo.", repo.FullName())
	}
	return repo, nil
}

func (s *Service) askName(preset string) (string, error) {
	if preset != "" {
		return preset, project.ValidateName(preset)
	}
	for {
		name, err := s.Prompter.Required("Project name:")
		if err != nil {
			return "", err
		}
		if err := project.ValidateName(name); err != nil {
			s.Out.Warning("%v", err)
			continue
		}
		return name, nil
	}
}

func (s *Service) askType(preset project.Type) (project.Type, error) {
	if preset != "" {
		return project.ParseType(string(preset))
	}
	choice, err := s.Prompter.Select("Project type:", project.TypeNames())
	if err != nil {
		return "", err
	}
	return project.ParseType(choice)
}

func (s *Service) askRepoURL() (string, error) {
	for {
		raw, err := s.Prompter.Required("Enter the GitHub repo URL:")
		if err != nil {
			return "", err
		}
		if _, err := git.ParseGitHubURL(raw); err != nil {
			s.Out.Warning("%v", err)
			continue
		}
		return raw, nil
	}
}
