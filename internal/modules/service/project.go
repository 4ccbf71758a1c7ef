package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/contracts-electrical/tracker/internal/modules/model"
	"github.com/contracts-electrical/tracker/internal/modules/repo"
)

type ProjectService interface {
	Create(ctx context.Context, p *model.Project) (string, error)
	ListForViewer(ctx context.Context, in ListProjectsInput) ([]*model.ViewerProject, error)
	Get(ctx context.Context, id string) (*model.StoredProject, error)
	Update(ctx context.Context, id string, p *model.Project) error
	Delete(ctx context.Context, in DeleteProjectInput) error
}

type projectService struct {
	projects repo.ProjectRepo
	users    repo.UserRepo
}

func NewProjectService(projects repo.ProjectRepo, users repo.UserRepo) ProjectService {
	return &projectService{projects: projects, users: users}
}

func (s *projectService) Create(ctx context.Context, p *model.Project) (string, error) {
	return s.projects.Create(ctx, p)
}

type ListProjectsInput struct {
	Username string
	Role     string
}

// ListForViewer resolves supervisor ids to first names and filters by role:
// admins see everything, anyone else only projects they supervise.
func (s *projectService) ListForViewer(ctx context.Context, in ListProjectsInput) ([]*model.ViewerProject, error) {
	res, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	firstNames := make(map[string]string, len(users))
	for _, u := range users {
		firstNames[u.Username] = u.FirstName
	}

	out := make([]*model.ViewerProject, 0, len(res.Items))
	for _, sp := range res.Items {
		if in.Role != model.RoleAdmin && (in.Username == "" || !slices.Contains(sp.Supervisors, in.Username)) {
			continue
		}
		names := make([]string, 0, len(sp.Supervisors))
		for _, id := range sp.Supervisors {
			if name, ok := firstNames[id]; ok {
				names = append(names, name)
			} else {
				names = append(names, id)
			}
		}
		out = append(out, &model.ViewerProject{Project: sp.Project, SupervisorsFirstNames: names})
	}
	return out, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*model.StoredProject, error) {
	return s.projects.FindByPrefix(ctx, id)
}

func (s *projectService) Update(ctx context.Context, id string, p *model.Project) error {
	return s.projects.Update(ctx, id, p)
}

type DeleteProjectInput struct {
	ID       string
	Role     string
	Username string
}

// Delete trusts the caller-supplied role; nothing ties it to a login.
func (s *projectService) Delete(ctx context.Context, in DeleteProjectInput) error {
	if in.Role != model.RoleAdmin {
		return ErrForbidden
	}
	return s.projects.Delete(ctx, in.ID)
}
