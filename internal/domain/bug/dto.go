package bug

import (
	"encoding/json"
	"time"

	"github.com/linskybing/bugtrackr/internal/domain/project"
	"github.com/linskybing/bugtrackr/internal/domain/user"
)

type CreateBugDTO struct {
	Title       string  `json:"title" example:"Login button does nothing"`
	Description string  `json:"description" example:"Clicking login on Safari has no effect"`
	Priority    string  `json:"priority" example:"High"`
	Project     string  `json:"project" example:"8d0a3c1e-5b7f-4e2a-9c6d-1f0b2a3c4d5e"`
	Assignee    *string `json:"assignee,omitempty"`
}

// UpdateBugDTO is a partial update. A nil field is left unchanged. Assignee
// is applied whenever the key is present; null or "" clears the assignment.
type UpdateBugDTO struct {
	Status   *string        `json:"status,omitempty" example:"Resolved"`
	Priority *string        `json:"priority,omitempty" example:"Critical"`
	Assignee OptionalString `json:"assignee" swaggertype:"string"`
}

// OptionalString tells an absent JSON key apart from an explicit null.
// Set is true once the key was decoded; Value is nil for null.
type OptionalString struct {
	Set   bool
	Value *string
}

// SetString returns a present OptionalString holding s.
func SetString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// BugView is a bug with project, assignee and reporter expanded. A reference
// that no longer resolves is rendered as null.
type BugView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      Status           `json:"status"`
	Priority    Priority         `json:"priority"`
	Project     *project.Summary `json:"project"`
	Assignee    *user.Summary    `json:"assignee"`
	ReportedBy  *user.Summary    `json:"reportedBy"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
