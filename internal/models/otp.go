package models

import (
	"time"
)

type OtpPurpose string

const (
	OtpPurposeRegister OtpPurpose = "REGISTER"
	OtpPurposeReset    OtpPurpose = "RESET"
)

func (p OtpPurpose) IsValid() bool {
	return p == OtpPurposeRegister || p == OtpPurposeReset
}

// OneTimeCode gates registration and password reset. A code is consumed
// exactly once; multiple outstanding codes per email are allowed (a new
// request does not invalidate earlier ones).
type OneTimeCode struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"not null;size:255;index:idx_otp_lookup"`
	Code      string     `json:"-" gorm:"not null;size:10;index:idx_otp_lookup"`
	Purpose   OtpPurpose `json:"purpose" gorm:"not null;size:20;index:idx_otp_lookup"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	Used      bool       `json:"used" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OneTimeCode) TableName() string {
	return "one_time_codes"
}

// IsExpired reports whether the code's validity window has passed.
func (c *OneTimeCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
