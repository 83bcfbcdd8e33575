package application

import (
	"errors"
	"strings"

	"github.com/linskybing/bugtrackr/internal/domain/project"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

// CreateProject stores a new project owned by actor. Unknown member ids are
// dropped without error. The returned project keeps its references as ids.
func (s *ProjectService) CreateProject(actor user.Actor, input project.UpsertProjectDTO) (*project.Project, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	name, description, err := validateProjectFields(input)
	if err != nil {
		return nil, err
	}

	members, err := s.existingMembers(input.Members)
	if err != nil {
		return nil, err
	}

	p := &project.Project{
		Name:        name,
		Description: description,
		CreatedBy:   actor.ID,
		Members:     members,
	}
	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) ListProjects(actor user.Actor) ([]project.ProjectView, error) {
	if err := authenticated(actor); err != nil {
		return nil, err
	}
	projects, err := s.Repos.Project.ListProjects()
	if err != nil {
		return nil, err
	}

	users, err := loadUsers(s.Repos.User, projectUserIDs(projects...))
	if err != nil {
		return nil, err
	}

	views := make([]project.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ExpandProject(p, users))
	}
	return views, nil
}

func (s *ProjectService) GetProject(actor user.Actor, id string) (*project.ProjectView, error) {
	if err := authenticated(actor); err != nil {
		return nil, err
	}
	p, err := s.findProject(id)
	if err != nil {
		return nil, err
	}
	return s.expand(p)
}

// UpdateProject overwrites name and description and replaces the member set.
func (s *ProjectService) UpdateProject(actor user.Actor, id string, input project.UpsertProjectDTO) (*project.ProjectView, error) {
	if err := adminOnly(actor); err != nil {
		return nil, err
	}
	name, description, err := validateProjectFields(input)
	if err != nil {
		return nil, err
	}

	p, err := s.findProject(id)
	if err != nil {
		return nil, err
	}

	members, err := s.existingMembers(input.Members)
	if err != nil {
		return nil, err
	}

	p.Name = name
	p.Description = description
	p.Members = members

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}
	return s.expand(p)
}

// DeleteProject removes the project only; bugs that reference it are kept
// and render with a null project afterwards.
func (s *ProjectService) DeleteProject(actor user.Actor, id string) error {
	if err := adminOnly(actor); err != nil {
		return err
	}
	if _, err := s.findProject(id); err != nil {
		return err
	}
	return s.Repos.Project.DeleteProject(id)
}

func (s *ProjectService) findProject(id string) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) expand(p project.Project) (*project.ProjectView, error) {
	users, err := loadUsers(s.Repos.User, projectUserIDs(p))
	if err != nil {
		return nil, err
	}
	view := ExpandProject(p, users)
	return &view, nil
}

// existingMembers keeps the ids that resolve to users, in request order and
// without duplicates.
func (s *ProjectService) existingMembers(ids []string) (datatypes.JSONSlice[string], error) {
	members := datatypes.JSONSlice[string]{}
	requested := newIDSet()
	for _, id := range ids {
		requested.add(strings.TrimSpace(id))
	}
	if len(requested.list) == 0 {
		return members, nil
	}

	found, err := loadUsers(s.Repos.User, requested.list)
	if err != nil {
		return nil, err
	}
	for _, id := range requested.list {
		if _, ok := found[id]; ok {
			members = append(members, id)
		}
	}
	return members, nil
}

func validateProjectFields(input project.UpsertProjectDTO) (string, string, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" || description == "" {
		return "", "", ErrProjectFieldsRequired
	}
	return name, description, nil
}
