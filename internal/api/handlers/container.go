package handlers

import (
	"github.com/linskybing/bugtrackr/internal/application"
)

type Handlers struct {
	User    *UserHandler
	Project *ProjectHandler
	Bug     *BugHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		User:    NewUserHandler(svc.User),
		Project: NewProjectHandler(svc.Project),
		Bug:     NewBugHandler(svc.Bug),
	}
}
