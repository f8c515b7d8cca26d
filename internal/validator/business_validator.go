package validator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

// BusinessValidator handles rule validation beyond struct tags.
type BusinessValidator struct {
	validate *validator.Validate
}

func NewBusinessValidator(validate *validator.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

// ValidateStatus checks a status string against the closed enum and returns
// the typed value.
func (bv *BusinessValidator) ValidateStatus(status string) (models.SuggestionStatus, ValidationErrors) {
	s := models.SuggestionStatus(status)
	if !s.IsValid() {
		return "", ValidationErrors{{
			Field:   "status",
			Message: "must be one of: generated, in-progress, completed",
			Value:   status,
			Rule:    "business_logic",
		}}
	}
	return s, nil
}

// ValidateRole rejects role strings outside the closed enumeration instead
// of silently defaulting.
func (bv *BusinessValidator) ValidateRole(role string) (models.UserRole, ValidationErrors) {
	r := models.UserRole(role)
	if !r.IsValid() {
		return "", ValidationErrors{{
			Field:   "role",
			Message: "must be one of: user, admin",
			Value:   role,
			Rule:    "business_logic",
		}}
	}
	return r, nil
}

// ReviewValues is the coerced outcome of review form validation.
type ReviewValues struct {
	Rating            int
	Badge             string
	Comments          string
	CompletionPercent *int
}

// ValidateReview coerces the raw review form fields. An unparseable rating
// coerces to 0 rather than failing, and a completion percent outside
// [0,100] is dropped rather than stored.
func (bv *BusinessValidator) ValidateReview(req *ReviewSubmissionRequest) (ReviewValues, ValidationErrors) {
	var errs ValidationErrors
	errs = append(errs, bv.structErrors(req)...)

	values := ReviewValues{
		Badge:    strings.TrimSpace(req.Badge),
		Comments: strings.TrimSpace(req.Comments),
	}

	if rating, err := strconv.Atoi(strings.TrimSpace(req.Rating)); err == nil {
		values.Rating = rating
	}

	if raw := strings.TrimSpace(req.CompletionPercent); raw != "" {
		if pct, err := strconv.Atoi(raw); err == nil && pct >= 0 && pct <= 100 {
			values.CompletionPercent = &pct
		}
	}

	return values, errs
}

// ValidateOtpCode checks the shape of a one-time code (digits only).
func (bv *BusinessValidator) ValidateOtpCode(code string) ValidationErrors {
	if len(code) < 4 || len(code) > 10 {
		return ValidationErrors{{
			Field:   "otp",
			Message: "must be between 4 and 10 digits",
			Rule:    "business_logic",
		}}
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return ValidationErrors{{
				Field:   "otp",
				Message: "must contain only digits",
				Rule:    "business_logic",
			}}
		}
	}
	return nil
}

func (bv *BusinessValidator) structErrors(s interface{}) ValidationErrors {
	if err := bv.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for the one-account-per-
// normalized-email invariant.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
