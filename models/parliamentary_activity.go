package models

import (
	"time"
)

// ActivityType categorizes parliamentary activity entries
type ActivityType string

const (
	ActivitySpeech        ActivityType = "SPEECH"
	ActivityMotion        ActivityType = "MOTION"
	ActivityQuestion      ActivityType = "QUESTION"
	ActivityCommitteeWork ActivityType = "COMMITTEE_WORK"
)

// ParliamentaryActivity represents a representative's recorded action in parliament
type ParliamentaryActivity struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	RepresentativeID uint         `gorm:"not null;index" json:"representative_id"`
	ActivityType     ActivityType `gorm:"type:varchar(20);not null" json:"activity_type"`
	Date             time.Time    `json:"date"`
	Description      string       `gorm:"type:text;not null" json:"description"`
	DocumentURL      string       `gorm:"type:varchar(255)" json:"document_url,omitempty"`
}
