package models

import (
	"time"
)

// BillStatus represents where a bill sits in the legislative pipeline
type BillStatus string

const (
	BillIntroduced   BillStatus = "INTRODUCED"
	BillInCommittee  BillStatus = "IN_COMMITTEE"
	BillPassedHouse  BillStatus = "PASSED_HOUSE"
	BillPassedSenate BillStatus = "PASSED_SENATE"
	BillEnacted      BillStatus = "ENACTED"
	BillDefeated     BillStatus = "DEFEATED"
)

// Vote represents a recorded vote position
type Vote string

const (
	VoteYes     Vote = "YES"
	VoteNo      Vote = "NO"
	VoteAbstain Vote = "ABSTAIN"
	VoteAbsent  Vote = "ABSENT"
)

// Bill represents a piece of legislation before parliament
type Bill struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Status          BillStatus `gorm:"type:varchar(20);not null" json:"status"`
	Category        string     `gorm:"type:varchar(50)" json:"category"`
	IntroducedDate  time.Time  `json:"introduced_date"`
	LastUpdatedDate time.Time  `json:"last_updated_date"`
	DocumentURL     string     `gorm:"type:varchar(255)" json:"document_url,omitempty"`
	SponsorID       uint       `gorm:"not null" json:"sponsor_id"`

	// Relations
	Sponsor       *Representative `gorm:"foreignKey:SponsorID" json:"sponsor,omitempty"`
	VotingRecords []VotingRecord  `gorm:"foreignKey:BillID" json:"voting_records,omitempty"`
}

// VotingRecord represents one representative's vote on one bill
type VotingRecord struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RepresentativeID uint      `gorm:"not null;index" json:"representative_id"`
	BillID           uint      `gorm:"not null;index" json:"bill_id"`
	Vote             Vote      `gorm:"type:varchar(10);not null" json:"vote"`
	Date             time.Time `json:"date"`

	// Relations
	Representative *Representative `gorm:"foreignKey:RepresentativeID" json:"representative,omitempty"`
	Bill           *Bill           `gorm:"foreignKey:BillID" json:"bill,omitempty"`
}
