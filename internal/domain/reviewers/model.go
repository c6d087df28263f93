package reviewers

import "time"

// Reviewer profiles are created lazily on the first successful shared-secret
// login; there is no reviewer self-registration.
type Reviewer struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;uniqueIndex:idx_reviewers_email" json:"email"`

	Department     string `json:"department,omitempty"`
	Specialization string `json:"specialization,omitempty"`

	TotalReviewsCompleted int `gorm:"not null;default:0" json:"total_reviews_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
