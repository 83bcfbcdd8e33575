package application

import (
	"github.com/linskybing/bugtrackr/internal/repository"
)

type Services struct {
	User    *UserService
	Project *ProjectService
	Bug     *BugService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User:    NewUserService(repos),
		Project: NewProjectService(repos),
		Bug:     NewBugService(repos),
	}
}
