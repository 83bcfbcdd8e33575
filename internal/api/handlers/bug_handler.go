package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/domain/bug"
	"github.com/linskybing/bugtrackr/pkg/response"
	"github.com/linskybing/bugtrackr/pkg/utils"
)

type BugHandler struct {
	svc *application.BugService
}

func NewBugHandler(svc *application.BugService) *BugHandler {
	return &BugHandler{svc: svc}
}

// GetBugs godoc
// @Summary List bugs
// @Description All bugs, newest first, with project, assignee and reporter expanded.
// @Tags bugs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} bug.BugView
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /bugs [get]
func (h *BugHandler) GetBugs(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	bugs, err := h.svc.ListBugs(actor)
	if err != nil {
		respondError(c, err, "Server error while fetching bugs")
		return
	}
	c.JSON(http.StatusOK, bugs)
}

// GetBugByID godoc
// @Summary Get bug by ID
// @Tags bugs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bug ID"
// @Success 200 {object} bug.BugView
// @Failure 404 {object} response.ErrorResponse "Bug not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /bugs/{id} [get]
func (h *BugHandler) GetBugByID(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	b, err := h.svc.GetBug(actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Server error while fetching bug")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBug godoc
// @Summary Report a bug
// @Tags bugs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body bug.CreateBugDTO true "Bug"
// @Success 201 {object} bug.BugView
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Project or assignee not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /bugs [post]
func (h *BugHandler) CreateBug(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	var input bug.CreateBugDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c, err)
		return
	}

	b, err := h.svc.CreateBug(actor, input)
	if err != nil {
		respondError(c, err, "Server error while creating bug")
		return
	}
	utils.LogMutation(c, "create", "bug", b.ID, b)
	c.JSON(http.StatusCreated, b)
}

// UpdateBug godoc
// @Summary Update bug status, priority or assignee
// @Description Allowed for admins and the current assignee. Absent fields are unchanged; an empty assignee unassigns.
// @Tags bugs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bug ID"
// @Param input body bug.UpdateBugDTO true "Fields to change"
// @Success 200 {object} bug.BugView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /bugs/{id} [put]
func (h *BugHandler) UpdateBug(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	var input bug.UpdateBugDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c, err)
		return
	}

	b, err := h.svc.UpdateBug(actor, c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Server error while updating bug")
		return
	}
	utils.LogMutation(c, "update", "bug", b.ID, input)
	c.JSON(http.StatusOK, b)
}

// DeleteBug godoc
// @Summary Delete bug by ID
// @Description Admin only.
// @Tags bugs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bug ID"
// @Success 200 {object} response.MessageResponse "Bug removed"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Bug not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /bugs/{id} [delete]
func (h *BugHandler) DeleteBug(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	if err := h.svc.DeleteBug(actor, c.Param("id")); err != nil {
		respondError(c, err, "Server error while deleting bug")
		return
	}
	utils.LogMutation(c, "delete", "bug", c.Param("id"), nil)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Bug removed"})
}
