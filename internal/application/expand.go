package application

import (
	"github.com/linskybing/bugtrackr/internal/domain/bug"
	"github.com/linskybing/bugtrackr/internal/domain/project"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
)

// ExpandProject replaces the user ids of p with summaries taken from users.
// Members that no longer resolve are dropped; an unresolved creator is nil.
func ExpandProject(p project.Project, users map[string]user.User) project.ProjectView {
	view := project.ProjectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   userSummary(users, p.CreatedBy),
		Members:     make([]user.Summary, 0, len(p.Members)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, id := range p.Members {
		if u, ok := users[id]; ok {
			view.Members = append(view.Members, u.Summary())
		}
	}
	return view
}

// ExpandBug replaces the references of b with summaries. Any reference that
// does not resolve, such as the project of an orphaned bug, is nil.
func ExpandBug(b bug.Bug, projects map[string]project.Project, users map[string]user.User) bug.BugView {
	view := bug.BugView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Status:      b.Status,
		Priority:    b.Priority,
		ReportedBy:  userSummary(users, b.ReporterID),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if p, ok := projects[b.ProjectID]; ok {
		s := p.Summary()
		view.Project = &s
	}
	if b.AssigneeID != nil {
		view.Assignee = userSummary(users, *b.AssigneeID)
	}
	return view
}

func userSummary(users map[string]user.User, id string) *user.Summary {
	u, ok := users[id]
	if !ok {
		return nil
	}
	s := u.Summary()
	return &s
}

func projectUserIDs(projects ...project.Project) []string {
	ids := newIDSet()
	for _, p := range projects {
		ids.add(p.CreatedBy)
		for _, m := range p.Members {
			ids.add(m)
		}
	}
	return ids.list
}

func bugRefIDs(bugs ...bug.Bug) (projectIDs, userIDs []string) {
	ps, us := newIDSet(), newIDSet()
	for _, b := range bugs {
		ps.add(b.ProjectID)
		us.add(b.ReporterID)
		if b.AssigneeID != nil {
			us.add(*b.AssigneeID)
		}
	}
	return ps.list, us.list
}

func loadUsers(repo repository.UserRepo, ids []string) (map[string]user.User, error) {
	users, err := repo.ListUsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func loadProjects(repo repository.ProjectRepo, ids []string) (map[string]project.Project, error) {
	projects, err := repo.ListProjectsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]project.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID, nil
}

// idSet keeps ids unique in order of first appearance, skipping blanks.
type idSet struct {
	seen map[string]struct{}
	list []string
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[string]struct{}), list: []string{}}
}

func (s *idSet) add(id string) {
	if id == "" {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.list = append(s.list, id)
}
