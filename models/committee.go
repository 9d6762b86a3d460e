package models

import (
	"time"
)

// Committee represents a parliamentary committee
type Committee struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relations
	Members []CommitteeMember `gorm:"foreignKey:CommitteeID" json:"members,omitempty"`
}

// CommitteeMember joins representatives to committees with a role label
type CommitteeMember struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	RepresentativeID uint       `gorm:"not null;index" json:"representative_id"`
	CommitteeID      uint       `gorm:"not null;index" json:"committee_id"`
	Role             string     `gorm:"type:varchar(50);not null" json:"role"` // Chair, Vice Chair, Member
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`

	// Relations
	Representative *Representative `gorm:"foreignKey:RepresentativeID" json:"representative,omitempty"`
	Committee      *Committee      `gorm:"foreignKey:CommitteeID" json:"committee,omitempty"`
}
