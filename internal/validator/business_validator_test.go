package validator

import (
	"testing"

	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

func TestValidateStatus(t *testing.T) {
	bv := New().GetBusinessValidator()

	valid := map[string]models.SuggestionStatus{
		"generated":   models.StatusGenerated,
		"in-progress": models.StatusInProgress,
		"completed":   models.StatusCompleted,
	}
	for raw, want := range valid {
		got, errs := bv.ValidateStatus(raw)
		if len(errs) > 0 {
			t.Errorf("ValidateStatus(%q) errors = %v", raw, errs)
		}
		if got != want {
			t.Errorf("ValidateStatus(%q) = %q, want %q", raw, got, want)
		}
	}

	for _, raw := range []string{"", "done", "GENERATED", "in progress"} {
		if _, errs := bv.ValidateStatus(raw); len(errs) == 0 {
			t.Errorf("ValidateStatus(%q) should fail", raw)
		}
	}
}

func TestValidateRole(t *testing.T) {
	bv := New().GetBusinessValidator()

	for _, raw := range []string{"user", "admin"} {
		if _, errs := bv.ValidateRole(raw); len(errs) > 0 {
			t.Errorf("ValidateRole(%q) errors = %v", raw, errs)
		}
	}
	for _, raw := range []string{"", "superadmin", "Admin"} {
		if _, errs := bv.ValidateRole(raw); len(errs) == 0 {
			t.Errorf("ValidateRole(%q) should fail", raw)
		}
	}
}

func TestValidateReview_Coercion(t *testing.T) {
	bv := New().GetBusinessValidator()

	values, errs := bv.ValidateReview(&ReviewSubmissionRequest{
		Rating:            "4",
		Badge:             "  Gold  ",
		Comments:          " nice ",
		CompletionPercent: "85",
	})
	if len(errs) > 0 {
		t.Fatalf("ValidateReview() errors = %v", errs)
	}
	if values.Rating != 4 {
		t.Errorf("Rating = %d, want 4", values.Rating)
	}
	if values.Badge != "Gold" {
		t.Errorf("Badge = %q, want trimmed %q", values.Badge, "Gold")
	}
	if values.Comments != "nice" {
		t.Errorf("Comments = %q, want trimmed %q", values.Comments, "nice")
	}
	if values.CompletionPercent == nil || *values.CompletionPercent != 85 {
		t.Errorf("CompletionPercent = %v, want 85", values.CompletionPercent)
	}
}

func TestValidateReview_UnparseableRatingCoercesToZero(t *testing.T) {
	bv := New().GetBusinessValidator()

	values, errs := bv.ValidateReview(&ReviewSubmissionRequest{Rating: "five"})
	if len(errs) > 0 {
		t.Fatalf("ValidateReview() errors = %v", errs)
	}
	if values.Rating != 0 {
		t.Errorf("Rating = %d, want 0 for unparseable input", values.Rating)
	}
}

func TestValidateReview_OutOfRangePercentDropped(t *testing.T) {
	bv := New().GetBusinessValidator()

	for _, raw := range []string{"-1", "101", "abc"} {
		values, errs := bv.ValidateReview(&ReviewSubmissionRequest{CompletionPercent: raw})
		if len(errs) > 0 {
			t.Fatalf("ValidateReview() errors = %v", errs)
		}
		if values.CompletionPercent != nil {
			t.Errorf("CompletionPercent(%q) = %d, want dropped", raw, *values.CompletionPercent)
		}
	}
}

func TestValidateOtpCode(t *testing.T) {
	bv := New().GetBusinessValidator()

	for _, code := range []string{"1234", "123456", "1234567890"} {
		if errs := bv.ValidateOtpCode(code); len(errs) > 0 {
			t.Errorf("ValidateOtpCode(%q) errors = %v", code, errs)
		}
	}
	for _, code := range []string{"", "123", "12345678901", "12a456"} {
		if errs := bv.ValidateOtpCode(code); len(errs) == 0 {
			t.Errorf("ValidateOtpCode(%q) should fail", code)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Ada@Example.COM":    "ada@example.com",
		"  ada@example.com ": "ada@example.com",
		"ada@example.com":    "ada@example.com",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate_StructTags(t *testing.T) {
	v := New()

	errs := v.Validate(&LoginRequest{Email: "not-an-email", Password: ""})
	if len(errs) != 2 {
		t.Fatalf("Validate() returned %d errors, want 2: %v", len(errs), errs)
	}

	if errs := v.Validate(&LoginRequest{Email: "a@b.co", Password: "x"}); len(errs) != 0 {
		t.Errorf("Validate() on valid request = %v", errs)
	}
}
