package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/pkg/response"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors to status codes. Unexpected errors are
// logged and answered with the generic fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, application.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		log.Error().Err(err).Str("method", c.Request.Method).Str("route", c.FullPath()).Msg(fallback)
		c.JSON(status, response.ErrorResponse{Message: fallback})
		return
	}
	c.JSON(status, response.ErrorResponse{Message: err.Error()})
}

// badRequestBody answers a failed bind. Validation failures name the first
// offending field; malformed JSON gets a generic message.
func badRequestBody(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingMessage(err)})
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please provide a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
