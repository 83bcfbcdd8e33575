package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/domain/project"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
	"github.com/linskybing/bugtrackr/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	adminActor = user.Actor{ID: "admin-1", Role: user.RoleAdmin}
	userActor  = user.Actor{ID: "user-1", Role: user.RoleUser}

	adminUser = user.User{ID: "admin-1", Name: "Admin", Email: "admin@test.com", Role: user.RoleAdmin}
	plainUser = user.User{ID: "user-1", Name: "Dev", Email: "dev@test.com", Role: user.RoleUser}
)

func setupProjectMocks(t *testing.T) (*application.ProjectService, *mock.MockProjectRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)

	repos := &repository.Repos{
		Project: mockProject,
		User:    mockUser,
	}
	return application.NewProjectService(repos), mockProject, mockUser
}

func TestProjectServiceCreate(t *testing.T) {
	t.Run("admin creates project with existing members only", func(t *testing.T) {
		svc, mockProject, mockUser := setupProjectMocks(t)

		mockUser.EXPECT().ListUsersByIDs([]string{"user-1", "ghost"}).Return([]user.User{plainUser}, nil)
		mockProject.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.ID = "p1"
			return nil
		})

		p, err := svc.CreateProject(adminActor, project.UpsertProjectDTO{
			Name:        " Apollo ",
			Description: "Moon",
			Members:     []string{"user-1", "ghost", "user-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "Apollo", p.Name)
		assert.Equal(t, "admin-1", p.CreatedBy)
		assert.Equal(t, datatypes.JSONSlice[string]{"user-1"}, p.Members)
	})

	t.Run("no members skips lookup", func(t *testing.T) {
		svc, mockProject, _ := setupProjectMocks(t)

		mockProject.EXPECT().CreateProject(gomock.Any()).Return(nil)

		p, err := svc.CreateProject(adminActor, project.UpsertProjectDTO{Name: "A", Description: "B"})
		require.NoError(t, err)
		assert.NotNil(t, p.Members)
		assert.Empty(t, p.Members)
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		svc, _, _ := setupProjectMocks(t)

		_, err := svc.CreateProject(userActor, project.UpsertProjectDTO{Name: "A", Description: "B"})
		assert.Equal(t, application.ErrAdminOnly, err)
		assert.True(t, errors.Is(err, application.ErrForbidden))
	})

	t.Run("missing description", func(t *testing.T) {
		svc, _, _ := setupProjectMocks(t)

		_, err := svc.CreateProject(adminActor, project.UpsertProjectDTO{Name: "A", Description: "  "})
		assert.Equal(t, application.ErrProjectFieldsRequired, err)
	})
}

func TestProjectServiceRead(t *testing.T) {
	stored := project.Project{
		ID:          "p1",
		Name:        "Apollo",
		Description: "Moon",
		CreatedBy:   "admin-1",
		Members:     datatypes.JSONSlice[string]{"user-1", "deleted-user"},
	}

	t.Run("list expands creator and members", func(t *testing.T) {
		svc, mockProject, mockUser := setupProjectMocks(t)

		mockProject.EXPECT().ListProjects().Return([]project.Project{stored}, nil)
		mockUser.EXPECT().ListUsersByIDs([]string{"admin-1", "user-1", "deleted-user"}).
			Return([]user.User{adminUser, plainUser}, nil)

		views, err := svc.ListProjects(userActor)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, &user.Summary{ID: "admin-1", Name: "Admin", Email: "admin@test.com"}, views[0].CreatedBy)
		assert.Equal(t, []user.Summary{{ID: "user-1", Name: "Dev", Email: "dev@test.com"}}, views[0].Members)
	})

	t.Run("empty list", func(t *testing.T) {
		svc, mockProject, mockUser := setupProjectMocks(t)

		mockProject.EXPECT().ListProjects().Return([]project.Project{}, nil)
		mockUser.EXPECT().ListUsersByIDs([]string{}).Return([]user.User{}, nil)

		views, err := svc.ListProjects(userActor)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("get not found", func(t *testing.T) {
		svc, mockProject, _ := setupProjectMocks(t)

		mockProject.EXPECT().GetProjectByID("missing").Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.GetProject(userActor, "missing")
		assert.Equal(t, application.ErrProjectNotFound, err)
	})

	t.Run("get expands", func(t *testing.T) {
		svc, mockProject, mockUser := setupProjectMocks(t)

		mockProject.EXPECT().GetProjectByID("p1").Return(stored, nil)
		mockUser.EXPECT().ListUsersByIDs(gomock.Any()).Return([]user.User{plainUser}, nil)

		view, err := svc.GetProject(userActor, "p1")
		require.NoError(t, err)
		assert.Nil(t, view.CreatedBy)
		assert.Len(t, view.Members, 1)
	})
}

func TestProjectServiceUpdate(t *testing.T) {
	stored := project.Project{ID: "p1", Name: "Old", Description: "Old", CreatedBy: "admin-1", Members: datatypes.JSONSlice[string]{"user-1"}}

	t.Run("replaces fields and member set", func(t *testing.T) {
		svc, mockProject, mockUser := setupProjectMocks(t)

		mockProject.EXPECT().GetProjectByID("p1").Return(stored, nil)
		mockProject.EXPECT().UpdateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			assert.Equal(t, "New", p.Name)
			assert.Empty(t, p.Members)
			assert.Equal(t, "admin-1", p.CreatedBy)
			return nil
		})
		mockUser.EXPECT().ListUsersByIDs([]string{"admin-1"}).Return([]user.User{adminUser}, nil)

		view, err := svc.UpdateProject(adminActor, "p1", project.UpsertProjectDTO{Name: "New", Description: "Desc"})
		require.NoError(t, err)
		assert.Equal(t, "New", view.Name)
		assert.Empty(t, view.Members)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockProject, _ := setupProjectMocks(t)

		mockProject.EXPECT().GetProjectByID("nope").Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.UpdateProject(adminActor, "nope", project.UpsertProjectDTO{Name: "N", Description: "D"})
		assert.Equal(t, application.ErrProjectNotFound, err)
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		svc, _, _ := setupProjectMocks(t)

		_, err := svc.UpdateProject(userActor, "p1", project.UpsertProjectDTO{Name: "N", Description: "D"})
		assert.Equal(t, application.ErrAdminOnly, err)
	})
}

func TestProjectServiceDelete(t *testing.T) {
	t.Run("deletes existing", func(t *testing.T) {
		svc, mockProject, _ := setupProjectMocks(t)

		mockProject.EXPECT().GetProjectByID("p1").Return(project.Project{ID: "p1"}, nil)
		mockProject.EXPECT().DeleteProject("p1").Return(nil)

		assert.NoError(t, svc.DeleteProject(adminActor, "p1"))
	})

	t.Run("missing", func(t *testing.T) {
		svc, mockProject, _ := setupProjectMocks(t)

		mockProject.EXPECT().GetProjectByID("p1").Return(project.Project{}, gorm.ErrRecordNotFound)

		assert.Equal(t, application.ErrProjectNotFound, svc.DeleteProject(adminActor, "p1"))
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		svc, _, _ := setupProjectMocks(t)

		assert.Equal(t, application.ErrAdminOnly, svc.DeleteProject(userActor, "p1"))
	})
}
