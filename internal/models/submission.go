package models

import (
	"time"
)

// AdminReview is the single overwritable judgment attached to a submission.
// Re-reviewing replaces every field except BadgeFileURL, which survives when
// no new badge file is uploaded. There is no review history.
type AdminReview struct {
	Rating            int        `json:"rating,omitempty" gorm:"column:review_rating"`
	Badge             string     `json:"badge,omitempty" gorm:"column:review_badge;size:100"`
	CompletionPercent *int       `json:"completion_percent,omitempty" gorm:"column:review_completion_percent"`
	Comments          string     `json:"comments,omitempty" gorm:"column:review_comments;type:text"`
	BadgeFileURL      string     `json:"badge_file_url,omitempty" gorm:"column:review_badge_file_url;size:500"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty" gorm:"column:review_reviewed_at"`
	ReviewedBy        *uint      `json:"reviewed_by,omitempty" gorm:"column:review_reviewed_by"`
}

// IsEmpty reports whether no admin has reviewed the submission yet.
func (r AdminReview) IsEmpty() bool {
	return r.ReviewedAt == nil
}

// Submission is a user's claim of having completed a suggestion, carrying
// external links as evidence. Creating one forces the source suggestion to
// the completed status.
type Submission struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	UserID       uint `json:"user_id" gorm:"not null;index"`
	SuggestionID uint `json:"suggestion_id" gorm:"not null;index"`

	GithubLink  string `json:"github_link" gorm:"not null;size:500"`
	FrontendURL string `json:"frontend_url,omitempty" gorm:"size:500"`
	BackendURL  string `json:"backend_url,omitempty" gorm:"size:500"`
	VideoURL    string `json:"video_url,omitempty" gorm:"size:500"`

	AdminReview AdminReview `json:"admin_review" gorm:"embedded"`

	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Suggestion *Suggestion `json:"suggestion,omitempty" gorm:"foreignKey:SuggestionID"`
	User       *User       `json:"-" gorm:"foreignKey:UserID"`

	// Reduced owner shape exposed in admin listings
	Owner *PublicUser `json:"user,omitempty" gorm:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}
