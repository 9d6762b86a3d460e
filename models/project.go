package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle stage of a constituency project
type ProjectStatus string

const (
	ProjectProposed   ProjectStatus = "PROPOSED"
	ProjectApproved   ProjectStatus = "APPROVED"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// Project represents a development project funded within a constituency
type Project struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"type:varchar(255);not null" json:"title"`
	Description    string        `gorm:"type:text" json:"description"`
	Status         ProjectStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Budget         float64       `gorm:"not null" json:"budget"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        *time.Time    `json:"end_date,omitempty"`
	ConstituencyID uint          `gorm:"not null;index" json:"constituency_id"`

	// Relations
	Constituency *Constituency   `gorm:"foreignKey:ConstituencyID" json:"constituency,omitempty"`
	Updates      []ProjectUpdate `gorm:"foreignKey:ProjectID" json:"updates,omitempty"`
}

// ProjectUpdate is an append-only progress note on a project
type ProjectUpdate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	Date        time.Time `json:"date"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url,omitempty"`
}

// BeforeSave is a GORM hook that rejects negative budgets
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Budget < 0 {
		return fmt.Errorf("project budget must be non-negative, got %.2f", p.Budget)
	}
	return nil
}
