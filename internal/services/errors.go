package services

import (
	"errors"
	"fmt"
)

// Sentinel errors translated by handlers into HTTP statuses. Not-found
// errors deliberately do not distinguish "absent" from "not yours".
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrSubmissionNotFound = errors.New("submission not found")

	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOtp         = errors.New("invalid OTP")
	ErrOtpExpired         = errors.New("OTP expired")
)

// PermissionError is returned when an authenticated caller attempts an
// action their role or ownership does not allow.
type PermissionError struct {
	UserID     uint
	ResourceID uint
	Resource   string
	Action     string
	Reason     string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %d cannot %s %s %d: %s",
		e.UserID, e.Action, e.Resource, e.ResourceID, e.Reason)
}

func NewPermissionError(userID, resourceID uint, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:     userID,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
		Reason:     reason,
	}
}

// IsNotFound reports whether err is any of the service not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrSuggestionNotFound) ||
		errors.Is(err, ErrSubmissionNotFound)
}
