package models

import (
	"time"
)

// Representative represents an elected official's public profile
type Representative struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"unique;not null" json:"user_id"`         // One-to-one with User
	ConstituencyID uint      `gorm:"unique;not null" json:"constituency_id"` // At most one representative per constituency
	Title          string    `gorm:"type:varchar(100);not null" json:"title"`
	Party          string    `gorm:"type:varchar(50);not null;index" json:"party"`
	Biography      string    `gorm:"type:text" json:"biography"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	OfficeAddress  string    `gorm:"type:varchar(255)" json:"office_address,omitempty"`
	Website        string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	User               *User                   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Constituency       *Constituency           `gorm:"foreignKey:ConstituencyID" json:"constituency,omitempty"`
	SocialMedia        *SocialMedia            `gorm:"foreignKey:RepresentativeID" json:"social_media,omitempty"`
	CommitteeMembers   []CommitteeMember       `gorm:"foreignKey:RepresentativeID" json:"committee_members,omitempty"`
	PerformanceMetrics []PerformanceMetric     `gorm:"foreignKey:RepresentativeID" json:"performance_metrics,omitempty"`
	VotingRecords      []VotingRecord          `gorm:"foreignKey:RepresentativeID" json:"voting_records,omitempty"`
	Statements         []Statement             `gorm:"foreignKey:RepresentativeID" json:"statements,omitempty"`
	Activities         []ParliamentaryActivity `gorm:"foreignKey:RepresentativeID" json:"activities,omitempty"`
}

// SocialMedia holds a representative's social network handles
type SocialMedia struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	RepresentativeID uint   `gorm:"unique;not null" json:"representative_id"`
	Facebook         string `gorm:"type:varchar(255)" json:"facebook,omitempty"`
	Twitter          string `gorm:"type:varchar(255)" json:"twitter,omitempty"`
	Instagram        string `gorm:"type:varchar(255)" json:"instagram,omitempty"`
	Youtube          string `gorm:"type:varchar(255)" json:"youtube,omitempty"`
	LinkedIn         string `gorm:"type:varchar(255)" json:"linkedin,omitempty"`
}

// TableName keeps the default pluralizer away from "social_medias"
func (SocialMedia) TableName() string {
	return "social_media"
}
