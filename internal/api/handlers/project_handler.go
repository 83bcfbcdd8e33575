package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/domain/project"
	"github.com/linskybing/bugtrackr/pkg/response"
	"github.com/linskybing/bugtrackr/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjects godoc
// @Summary List projects
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.ProjectView
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	projects, err := h.svc.ListProjects(actor)
	if err != nil {
		respondError(c, err, "Server error while fetching projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get project by ID
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.ProjectView
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	p, err := h.svc.GetProject(actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Server error while fetching project")
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
// @Summary Create a new project
// @Description Admin only. Member ids that do not resolve to users are dropped.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.UpsertProjectDTO true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	var input project.UpsertProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c, err)
		return
	}

	p, err := h.svc.CreateProject(actor, input)
	if err != nil {
		respondError(c, err, "Server error")
		return
	}
	utils.LogMutation(c, "create", "project", p.ID, p)
	c.JSON(http.StatusCreated, p)
}

// UpdateProject godoc
// @Summary Update project by ID
// @Description Admin only. Replaces name, description and the whole member set.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body project.UpsertProjectDTO true "Project"
// @Success 200 {object} project.ProjectView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	var input project.UpsertProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c, err)
		return
	}

	p, err := h.svc.UpdateProject(actor, c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Server error while updating project")
		return
	}
	utils.LogMutation(c, "update", "project", p.ID, p)
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete project by ID
// @Description Admin only. Bugs of the project are kept.
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.MessageResponse "Project deleted"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	if err := h.svc.DeleteProject(actor, c.Param("id")); err != nil {
		respondError(c, err, "Server error while deleting project")
		return
	}
	utils.LogMutation(c, "delete", "project", c.Param("id"), nil)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted"})
}
