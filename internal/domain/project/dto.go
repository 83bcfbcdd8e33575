package project

import (
	"time"

	"github.com/linskybing/bugtrackr/internal/domain/user"
)

// UpsertProjectDTO is used for both create and update; members replace the
// stored set wholesale.
type UpsertProjectDTO struct {
	Name        string   `json:"name" example:"Alpha"`
	Description string   `json:"description" example:"Customer portal"`
	Members     []string `json:"members,omitempty"`
}

type Summary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectView is a project with its user references expanded.
type ProjectView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedBy   *user.Summary  `json:"createdBy"`
	Members     []user.Summary `json:"members"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
