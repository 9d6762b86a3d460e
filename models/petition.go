package models

import (
	"time"
)

// PetitionStatus represents the lifecycle stage of a petition
type PetitionStatus string

const (
	PetitionActive    PetitionStatus = "ACTIVE"
	PetitionCompleted PetitionStatus = "COMPLETED"
	PetitionExpired   PetitionStatus = "EXPIRED"
)

// Petition represents a citizen petition tracked toward a signature target
type Petition struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	TargetCount     int            `gorm:"not null" json:"target_count"`
	SignaturesCount int            `gorm:"not null;default:0" json:"signatures_count"`
	Status          PetitionStatus `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	ExpiresAt       time.Time      `json:"expires_at"`

	// Relations
	Signatures []PetitionSignature `gorm:"foreignKey:PetitionID" json:"signatures,omitempty"`
}

// PetitionSignature records that a user signed a petition once
type PetitionSignature struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PetitionID uint      `gorm:"not null;uniqueIndex:idx_petition_signer" json:"petition_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_petition_signer" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
