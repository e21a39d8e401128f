package models

import "time"

// Role is a closed enum; the store only ever holds these two values.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

func (r Role) IsAdmin() bool { return r == RoleAdmin }

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:191;not null"`
	Email        string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Location     string `gorm:"size:191"`
	Role         Role   `gorm:"size:32;not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
