package models

import (
	"time"
)

// Statement represents a public statement attributed to a representative
type Statement struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RepresentativeID uint      `gorm:"not null;index" json:"representative_id"`
	Topic            string    `gorm:"type:varchar(255);not null" json:"topic"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	Date             time.Time `json:"date"`
	Source           string    `gorm:"type:varchar(100)" json:"source"` // Parliamentary Debate, Media Interview, ...
	URL              string    `gorm:"type:varchar(255)" json:"url,omitempty"`
}
