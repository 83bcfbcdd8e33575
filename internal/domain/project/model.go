package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project groups bugs. Members holds user ids; it is stored as a JSON array
// and is not constrained by foreign keys.
type Project struct {
	ID          string                      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string                      `gorm:"size:200;not null" json:"name"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	CreatedBy   string                      `gorm:"type:varchar(36);not null;index" json:"createdBy"`
	Members     datatypes.JSONSlice[string] `json:"members"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Members == nil {
		p.Members = datatypes.JSONSlice[string]{}
	}
	return nil
}

// Summary is the projection used when a bug references its project.
func (p Project) Summary() Summary {
	return Summary{ID: p.ID, Name: p.Name}
}
