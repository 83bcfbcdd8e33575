package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/pkg/response"
	"github.com/linskybing/bugtrackr/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a regular user. A role supplied in the body is ignored.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Registration payload"
// @Success 201 {object} response.RegisterResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c, err)
		return
	}

	usr, err := h.svc.RegisterUser(input)
	if err != nil {
		respondError(c, err, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, response.RegisterResponse{Message: "User registered", User: usr.Summary()})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c, err)
		return
	}

	usr, token, err := h.svc.LoginUser(input.Email, input.Password)
	if err != nil {
		respondError(c, err, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, User: usr.Summary(), Role: usr.Role})
}

// GetUsers godoc
// @Summary List users
// @Description Summaries of every user, used to pick project members and assignees.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.Summary
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		respondError(c, application.ErrUnauthenticated, "")
		return
	}

	users, err := h.svc.ListUserSummaries(actor)
	if err != nil {
		respondError(c, err, "Server error while fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}
