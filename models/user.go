package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole represents the role a user holds in the platform
type UserRole string

const (
	RoleCitizen        UserRole = "CITIZEN"
	RoleRepresentative UserRole = "REPRESENTATIVE"
	RoleStaff          UserRole = "STAFF"
	RoleAdmin          UserRole = "ADMIN"
)

// User represents a platform account: citizens, representatives, staff and admins
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Email          string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password       string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Role           UserRole  `gorm:"type:varchar(20);not null;default:CITIZEN" json:"role"`
	Image          string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	ConstituencyID *uint     `json:"constituency_id,omitempty"` // Home constituency, optional
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Constituency *Constituency `gorm:"foreignKey:ConstituencyID" json:"constituency,omitempty"`
}

// ElevatedRole reports whether the role may receive citizen messages
func (r UserRole) ElevatedRole() bool {
	return r == RoleRepresentative || r == RoleStaff
}

// BeforeSave is a GORM hook that hashes plaintext passwords. GORM runs
// it for both creates and updates.
func (u *User) BeforeSave(tx *gorm.DB) error {
	// Bcrypt hashes are 60 bytes; shorter values are plaintext
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
