package models

import (
	"time"
)

// Message represents a citizen-to-representative (or staff) message.
// Read transitions one way only: false to true.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Subject     string    `gorm:"type:varchar(255);not null" json:"subject"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	SenderID    uint      `gorm:"not null;index" json:"sender_id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	Read        bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}
