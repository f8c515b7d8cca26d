package models

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// IsValid reports whether the role is one of the closed set of roles.
// Unknown role strings are rejected at the boundary instead of being
// silently defaulted.
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID    uint     `json:"id" gorm:"primaryKey"`
	Name  string   `json:"name" gorm:"not null;size:100"`
	Email string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role  UserRole `json:"role" gorm:"not null;size:20;default:user"`

	// PasswordHash is always set: accounts created through Google login get
	// an unusable hash derived from the Google subject id so the column can
	// stay non-null without ever matching a typed password.
	PasswordHash string `json:"-" gorm:"not null;size:255"`

	IsVerified bool    `json:"is_verified" gorm:"default:false"`
	GoogleID   *string `json:"google_id,omitempty" gorm:"size:255;index"`
	AvatarURL  *string `json:"avatar_url,omitempty" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed by the admin listing query; never migrated or written.
	SuggestionCount int64 `json:"suggestion_count,omitempty" gorm:"->;-:migration"`
	SubmissionCount int64 `json:"submission_count,omitempty" gorm:"->;-:migration"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the reduced user shape embedded in admin submission
// listings (name/email only, per the admin view contract).
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
