package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/bugtrackr/internal/api/handlers"
	"github.com/linskybing/bugtrackr/internal/domain/bug"
	"github.com/linskybing/bugtrackr/internal/domain/project"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
	"github.com/linskybing/bugtrackr/internal/repository/mock"
	"github.com/linskybing/bugtrackr/internal/testutils"
	"github.com/linskybing/bugtrackr/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	admin = user.User{ID: "admin-1", Name: "Admin", Email: "admin@test.com", Role: user.RoleAdmin}
	dev   = user.User{ID: "user-1", Name: "Dev", Email: "dev@test.com", Role: user.RoleUser}
)

type testEnv struct {
	router  *gin.Engine
	user    *mock.MockUserRepo
	project *mock.MockProjectRepo
	bug     *mock.MockBugRepo
}

func setupEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	env := &testEnv{
		user:    mock.NewMockUserRepo(ctrl),
		project: mock.NewMockProjectRepo(ctrl),
		bug:     mock.NewMockBugRepo(ctrl),
	}
	repos := &repository.Repos{User: env.user, Project: env.project, Bug: env.bug}
	env.router = testutils.SetupRouter(repos)
	return env
}

// as makes the JWT middleware resolve u for its token.
func (e *testEnv) as(u user.User) string {
	e.user.EXPECT().GetUserByID(u.ID).Return(u, nil)
	return testutils.MintToken(u.ID, u.Role)
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestAuthRequired(t *testing.T) {
	env := setupEnv(t)

	w := env.do(http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, no token", message(t, w))

	w = env.do(http.MethodGet, "/api/bugs", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, token failed", message(t, w))
}

func TestTokenForDeletedUser(t *testing.T) {
	env := setupEnv(t)

	env.user.EXPECT().GetUserByID("gone").Return(user.User{}, gorm.ErrRecordNotFound)
	token := testutils.MintToken("gone", user.RoleAdmin)

	w := env.do(http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, user not found", message(t, w))
}

func TestRegisterAndLogin(t *testing.T) {
	t.Run("register returns 201 with summary", func(t *testing.T) {
		env := setupEnv(t)

		env.user.EXPECT().GetUserByEmail("new@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
		env.user.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
			u.ID = "u-new"
			return nil
		})

		w := env.do(http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "New", "email": "new@test.com", "password": "secret1", "role": "admin",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var body response.RegisterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "u-new", body.User.ID)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("register validation", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/auth/register", "", map[string]string{"name": "x", "email": "bad", "password": "1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please provide a valid email", message(t, w))

		w = env.do(http.MethodPost, "/api/auth/register", "", map[string]string{"name": "x", "email": "x@test.com", "password": "1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Password must be at least 6 characters", message(t, w))

		w = env.do(http.MethodPost, "/api/auth/register", "", map[string]string{"email": "x@test.com", "password": "123456"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name is required", message(t, w))
	})

	t.Run("login wrong email", func(t *testing.T) {
		env := setupEnv(t)

		env.user.EXPECT().GetUserByEmail("who@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

		w := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "who@test.com", "password": "secret1"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", message(t, w))
	})
}

func TestProjectRoutes(t *testing.T) {
	t.Run("regular user cannot create", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/projects", env.as(dev), map[string]string{"name": "A", "description": "B"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Admin access required", message(t, w))
	})

	t.Run("admin creates", func(t *testing.T) {
		env := setupEnv(t)

		env.project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.ID = "p1"
			return nil
		})

		w := env.do(http.MethodPost, "/api/projects", env.as(admin), map[string]string{"name": "Apollo", "description": "Moon"})
		require.Equal(t, http.StatusCreated, w.Code)

		var p project.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "admin-1", p.CreatedBy)
	})

	t.Run("admin create missing fields", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/projects", env.as(admin), map[string]string{"name": "Apollo"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Project name and description are required", message(t, w))
	})

	t.Run("malformed body", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPut, "/api/projects/p1", env.as(admin), "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", message(t, w))
	})

	t.Run("get missing", func(t *testing.T) {
		env := setupEnv(t)

		env.project.EXPECT().GetProjectByID("nope").Return(project.Project{}, gorm.ErrRecordNotFound)

		w := env.do(http.MethodGet, "/api/projects/nope", env.as(dev), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Project not found", message(t, w))
	})

	t.Run("delete", func(t *testing.T) {
		env := setupEnv(t)

		env.project.EXPECT().GetProjectByID("p1").Return(project.Project{ID: "p1"}, nil)
		env.project.EXPECT().DeleteProject("p1").Return(nil)

		w := env.do(http.MethodDelete, "/api/projects/p1", env.as(admin), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Project deleted", message(t, w))
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		env := setupEnv(t)

		env.project.EXPECT().ListProjects().Return(nil, errors.New("connection reset"))

		w := env.do(http.MethodGet, "/api/projects", env.as(dev), nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error while fetching projects", message(t, w))
	})
}

func TestBugRoutes(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		env := setupEnv(t)

		env.project.EXPECT().GetProjectByID("p1").Return(project.Project{ID: "p1", Name: "Apollo"}, nil)
		env.bug.EXPECT().CreateBug(gomock.Any()).DoAndReturn(func(b *bug.Bug) error {
			b.ID = "b1"
			return nil
		})
		env.project.EXPECT().ListProjectsByIDs([]string{"p1"}).Return([]project.Project{{ID: "p1", Name: "Apollo"}}, nil)
		env.user.EXPECT().ListUsersByIDs([]string{"user-1"}).Return([]user.User{dev}, nil)

		w := env.do(http.MethodPost, "/api/bugs", env.as(dev), map[string]string{
			"title": "Crash", "description": "On start", "priority": "High", "project": "p1",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var view bug.BugView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, bug.StatusOpen, view.Status)
		assert.Equal(t, "Apollo", view.Project.Name)
		assert.Equal(t, "Dev", view.ReportedBy.Name)
		assert.Nil(t, view.Assignee)
	})

	t.Run("update by non assignee forbidden", func(t *testing.T) {
		env := setupEnv(t)

		other := "user-9"
		env.bug.EXPECT().GetBugByID("b1").Return(bug.Bug{ID: "b1", ReporterID: "user-1", AssigneeID: &other}, nil)

		w := env.do(http.MethodPut, "/api/bugs/b1", env.as(dev), map[string]string{"status": "Closed"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to update this bug", message(t, w))
	})

	t.Run("admin clears assignee with null", func(t *testing.T) {
		env := setupEnv(t)

		assigned := "user-1"
		env.bug.EXPECT().GetBugByID("b1").Return(bug.Bug{
			ID: "b1", ProjectID: "p1", ReporterID: "admin-1", AssigneeID: &assigned,
			Status: bug.StatusOpen, Priority: bug.PriorityHigh,
		}, nil)
		env.bug.EXPECT().UpdateBug(gomock.Any()).DoAndReturn(func(b *bug.Bug) error {
			assert.Nil(t, b.AssigneeID)
			assert.Equal(t, bug.StatusOpen, b.Status)
			return nil
		})
		env.project.EXPECT().ListProjectsByIDs(gomock.Any()).Return([]project.Project{{ID: "p1", Name: "Apollo"}}, nil)
		env.user.EXPECT().ListUsersByIDs(gomock.Any()).Return([]user.User{admin, dev}, nil)

		w := env.do(http.MethodPut, "/api/bugs/b1", env.as(admin), `{"assignee": null}`)
		require.Equal(t, http.StatusOK, w.Code)

		var view bug.BugView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Nil(t, view.Assignee)
		assert.Equal(t, "Admin", view.ReportedBy.Name)
	})

	t.Run("delete by regular user forbidden", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodDelete, "/api/bugs/b1", env.as(dev), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Admins only can delete bugs", message(t, w))
	})

	t.Run("admin deletes", func(t *testing.T) {
		env := setupEnv(t)

		env.bug.EXPECT().GetBugByID("b1").Return(bug.Bug{ID: "b1"}, nil)
		env.bug.EXPECT().DeleteBug("b1").Return(nil)

		w := env.do(http.MethodDelete, "/api/bugs/b1", env.as(admin), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bug removed", message(t, w))
	})
}

func TestNoRoute(t *testing.T) {
	env := setupEnv(t)

	w := env.do(http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", message(t, w))
}

func TestNoRouteServesFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(handlers.NoRoute(dir))

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")

	w = get("/projects/123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app")

	w = get("/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
