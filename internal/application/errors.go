package application

import (
	"errors"

	"github.com/linskybing/bugtrackr/internal/domain/user"
)

// Error kinds. Every error returned by a service either wraps one of these or
// is an unexpected store failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a client-facing message and the kind it belongs to.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrUnauthenticated    = newError(ErrUnauthorized, "Not authorized, no user")
	ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid email or password")
	ErrEmailTaken         = newError(ErrInvalidInput, "Email already registered")
	ErrUserFieldsRequired = newError(ErrInvalidInput, "Name, email and password are required")

	ErrAdminOnly             = newError(ErrForbidden, "Admin access required")
	ErrProjectFieldsRequired = newError(ErrInvalidInput, "Project name and description are required")
	ErrProjectNotFound       = newError(ErrNotFound, "Project not found")

	ErrBugFieldsRequired   = newError(ErrInvalidInput, "Title, description, priority, and project are required")
	ErrInvalidPriority     = newError(ErrInvalidInput, "Priority must be one of Low, Medium, High, Critical")
	ErrInvalidStatus       = newError(ErrInvalidInput, "Status must be one of Open, In Progress, Resolved, Closed")
	ErrBugNotFound         = newError(ErrNotFound, "Bug not found")
	ErrAssigneeNotFound    = newError(ErrNotFound, "Assignee user not found")
	ErrNewAssigneeNotFound = newError(ErrNotFound, "New assignee user not found")
	ErrBugUpdateForbidden  = newError(ErrForbidden, "Not authorized to update this bug")
	ErrBugDeleteForbidden  = newError(ErrForbidden, "Admins only can delete bugs")
)

func authenticated(actor user.Actor) error {
	if actor.ID == "" {
		return ErrUnauthenticated
	}
	return nil
}

func adminOnly(actor user.Actor) error {
	if err := authenticated(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}
