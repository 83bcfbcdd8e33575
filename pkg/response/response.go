package response

import "github.com/linskybing/bugtrackr/internal/domain/user"

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message" example:"Project not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Project deleted"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  user.Summary `json:"user"`
	Role  user.Role    `json:"role" example:"user"`
}

type RegisterResponse struct {
	Message string       `json:"message" example:"User registered"`
	User    user.Summary `json:"user"`
}
