package application

import (
	"errors"
	"strings"

	"github.com/linskybing/bugtrackr/internal/domain/bug"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
	"gorm.io/gorm"
)

type BugService struct {
	Repos *repository.Repos
}

func NewBugService(repos *repository.Repos) *BugService {
	return &BugService{
		Repos: repos,
	}
}

// CreateBug reports a bug against an existing project. Any authenticated
// user may report; the reporter is always the actor.
func (s *BugService) CreateBug(actor user.Actor, input bug.CreateBugDTO) (*bug.BugView, error) {
	if err := authenticated(actor); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	priority := bug.Priority(strings.TrimSpace(input.Priority))
	projectID := strings.TrimSpace(input.Project)
	if title == "" || description == "" || priority == "" || projectID == "" {
		return nil, ErrBugFieldsRequired
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	var assigneeID *string
	if input.Assignee != nil && strings.TrimSpace(*input.Assignee) != "" {
		id, err := s.resolveUser(strings.TrimSpace(*input.Assignee), ErrAssigneeNotFound)
		if err != nil {
			return nil, err
		}
		assigneeID = &id
	}

	b := &bug.Bug{
		Title:       title,
		Description: description,
		Status:      bug.StatusOpen,
		Priority:    priority,
		ProjectID:   projectID,
		AssigneeID:  assigneeID,
		ReporterID:  actor.ID,
	}
	if err := s.Repos.Bug.CreateBug(b); err != nil {
		return nil, err
	}
	return s.expandOne(*b)
}

// ListBugs returns all bugs, newest first, with references expanded.
func (s *BugService) ListBugs(actor user.Actor) ([]bug.BugView, error) {
	if err := authenticated(actor); err != nil {
		return nil, err
	}
	bugs, err := s.Repos.Bug.ListBugs()
	if err != nil {
		return nil, err
	}
	return s.expand(bugs)
}

func (s *BugService) GetBug(actor user.Actor, id string) (*bug.BugView, error) {
	if err := authenticated(actor); err != nil {
		return nil, err
	}
	b, err := s.findBug(id)
	if err != nil {
		return nil, err
	}
	return s.expandOne(b)
}

// UpdateBug applies the fields present in input. Only an admin or the
// current assignee may update. Status may move between any two values.
func (s *BugService) UpdateBug(actor user.Actor, id string, input bug.UpdateBugDTO) (*bug.BugView, error) {
	if err := authenticated(actor); err != nil {
		return nil, err
	}
	b, err := s.findBug(id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !b.IsAssignedTo(actor.ID) {
		return nil, ErrBugUpdateForbidden
	}

	if input.Status != nil && *input.Status != "" {
		status := bug.Status(*input.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		b.Status = status
	}
	if input.Priority != nil && *input.Priority != "" {
		priority := bug.Priority(*input.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
		b.Priority = priority
	}
	if input.Assignee.Set {
		assignee := ""
		if input.Assignee.Value != nil {
			assignee = strings.TrimSpace(*input.Assignee.Value)
		}
		if assignee == "" {
			b.AssigneeID = nil
		} else {
			uid, err := s.resolveUser(assignee, ErrNewAssigneeNotFound)
			if err != nil {
				return nil, err
			}
			b.AssigneeID = &uid
		}
	}

	if err := s.Repos.Bug.UpdateBug(&b); err != nil {
		return nil, err
	}
	return s.expandOne(b)
}

func (s *BugService) DeleteBug(actor user.Actor, id string) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrBugDeleteForbidden
	}
	if _, err := s.findBug(id); err != nil {
		return err
	}
	return s.Repos.Bug.DeleteBug(id)
}

// CountOrphanedBugs counts bugs whose project has been deleted.
func (s *BugService) CountOrphanedBugs() (int64, error) {
	return s.Repos.Bug.CountOrphanedBugs()
}

func (s *BugService) findBug(id string) (bug.Bug, error) {
	b, err := s.Repos.Bug.GetBugByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bug.Bug{}, ErrBugNotFound
		}
		return bug.Bug{}, err
	}
	return b, nil
}

func (s *BugService) resolveUser(id string, notFound error) (string, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFound
		}
		return "", err
	}
	return u.ID, nil
}

func (s *BugService) expandOne(b bug.Bug) (*bug.BugView, error) {
	views, err := s.expand([]bug.Bug{b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *BugService) expand(bugs []bug.Bug) ([]bug.BugView, error) {
	projectIDs, userIDs := bugRefIDs(bugs...)

	projects, err := loadProjects(s.Repos.Project, projectIDs)
	if err != nil {
		return nil, err
	}
	users, err := loadUsers(s.Repos.User, userIDs)
	if err != nil {
		return nil, err
	}

	views := make([]bug.BugView, 0, len(bugs))
	for _, b := range bugs {
		views = append(views, ExpandBug(b, projects, users))
	}
	return views, nil
}
