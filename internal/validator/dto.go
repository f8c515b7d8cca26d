package validator

// Request DTOs shared by handlers and services. Field validation happens
// here at the boundary; business rules live in BusinessValidator.

// ===== AUTH =====

type RegisterRequestOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RegisterVerifyRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Otp      string `json:"otp" validate:"required,min=4,max=10"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required,min=4,max=10"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

// GoogleLoginRequest accepts the token under either key; some Google
// sign-in clients post "credential" instead of "idToken".
type GoogleLoginRequest struct {
	IDToken    string `json:"idToken"`
	Credential string `json:"credential"`
}

func (r *GoogleLoginRequest) Token() string {
	if r.IDToken != "" {
		return r.IDToken
	}
	return r.Credential
}

// ===== SUGGESTIONS =====

type GenerateSuggestionsRequest struct {
	Skills    []string `json:"skills"`
	Level     string   `json:"level" validate:"omitempty,max=50"`
	Interests []string `json:"interests"`
	TechStack []string `json:"techStack"`
	Duration  string   `json:"duration" validate:"omitempty,max=50"`
	Goal      string   `json:"goal" validate:"omitempty,max=500"`
}

type CreateSuggestionRequest struct {
	Title             string   `json:"title" validate:"required,max=200"`
	Description       string   `json:"description" validate:"required,max=5000"`
	TechStack         []string `json:"techStack"`
	Features          []string `json:"features"`
	LearningOutcomes  []string `json:"learningOutcomes"`
	SetupInstructions string   `json:"setupInstructions" validate:"omitempty,max=5000"`
	Duration          string   `json:"duration" validate:"omitempty,max=50"`
	Level             string   `json:"level" validate:"omitempty,max=50"`
	Status            string   `json:"status" validate:"omitempty,oneof=generated in-progress completed"`
}

type UpdateSuggestionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=generated in-progress completed"`
}

// ===== SUBMISSIONS =====

type CreateSubmissionRequest struct {
	SuggestionID uint   `json:"suggestionId" validate:"required"`
	GithubLink   string `json:"githubLink" validate:"required,url,max=500"`
	FrontendURL  string `json:"frontendUrl" validate:"omitempty,url,max=500"`
	BackendURL   string `json:"backendUrl" validate:"omitempty,url,max=500"`
	VideoURL     string `json:"videoUrl" validate:"omitempty,url,max=500"`
}

// ReviewSubmissionRequest carries the multipart form fields of the admin
// review. Rating and completion percent arrive as strings; coercion rules
// live in the business validator.
type ReviewSubmissionRequest struct {
	Rating            string `form:"rating"`
	Badge             string `form:"badge" validate:"omitempty,max=100"`
	Comments          string `form:"comments" validate:"omitempty,max=5000"`
	CompletionPercent string `form:"completionPercent"`
}
