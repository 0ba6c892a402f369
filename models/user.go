package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the two roles the app knows.
func ValidRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}

type User struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	Name          string    `json:"name"`
	Role          string    `gorm:"not null;default:staff" json:"role"`
	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
