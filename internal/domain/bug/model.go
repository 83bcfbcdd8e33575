package bug

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Bug is a reported defect. ProjectID, AssigneeID and ReporterID are plain
// references; existence is checked when they are written, not afterwards.
type Bug struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      Status    `gorm:"size:20;not null;default:'Open'" json:"status"`
	Priority    Priority  `gorm:"size:20;not null;default:'Medium'" json:"priority"`
	ProjectID   string    `gorm:"column:project_id;type:varchar(36);not null;index" json:"project"`
	AssigneeID  *string   `gorm:"column:assignee_id;type:varchar(36);index" json:"assignee"`
	ReporterID  string    `gorm:"column:reported_by;type:varchar(36);not null" json:"reportedBy"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Bug) TableName() string {
	return "bugs"
}

func (b *Bug) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusOpen
	}
	if b.Priority == "" {
		b.Priority = PriorityMedium
	}
	return nil
}

// IsAssignedTo reports whether uid is the current assignee.
func (b Bug) IsAssignedTo(uid string) bool {
	return b.AssigneeID != nil && *b.AssigneeID == uid
}
