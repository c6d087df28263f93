package abstracts

import (
	"time"

	"abstract-portal/internal/domain/reviewers"
)

const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

const (
	CategoryClinical  = "clinical"
	CategoryEducation = "education"
	CategoryBasic     = "basic"
	CategoryPublic    = "public"
)

// DepartmentOtherKey marks a submission from outside the fixed department
// list; the free-text override lives in Abstract.DepartmentOther.
const DepartmentOtherKey = "other"

var Departments = []string{
	"cardiology",
	"neurology",
	"oncology",
	"pediatrics",
	"internal",
	"surgery",
	"psychiatry",
	"radiology",
	"pathology",
	"emergency",
	"anesthesiology",
	"dermatology",
	DepartmentOtherKey,
}

var Categories = []string{
	CategoryClinical,
	CategoryEducation,
	CategoryBasic,
	CategoryPublic,
}

type Abstract struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title           string `gorm:"not null" json:"title"`
	Department      string `gorm:"type:varchar(32);not null;index" json:"department"`
	DepartmentOther string `json:"department_other,omitempty"`
	Category        string `gorm:"type:varchar(16);not null" json:"category"`
	Keywords        string `gorm:"not null" json:"keywords"`

	// Primary author; co-authors live in AdditionalAuthors, ordered by
	// sort_index.
	AuthorFirstName string `gorm:"not null" json:"author_first_name"`
	AuthorLastName  string `gorm:"not null" json:"author_last_name"`
	AuthorDegree    string `json:"author_degree,omitempty"`
	AuthorEmail     string `gorm:"not null" json:"author_email"`

	AdditionalAuthors []Author `gorm:"foreignKey:AbstractID;constraint:OnDelete:CASCADE;" json:"additional_authors,omitempty"`

	Background string `json:"background"`
	Methods    string `json:"methods"`
	Results    string `json:"results"`
	Conclusion string `json:"conclusion"`

	PDFFilename   string     `json:"-"`
	PDFPath       string     `json:"-"`
	PDFUploadedAt *time.Time `json:"-"`

	// Bearer secret for the self-service view. Set once at creation, never
	// rotated, never serialized into any listing response.
	AccessToken string `gorm:"not null;uniqueIndex:idx_abstracts_access_token" json:"-"`

	Status       string  `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AverageScore float64 `gorm:"not null;default:0" json:"average_score"`
	Published    bool    `gorm:"not null;default:false;index" json:"published"`

	Reviews []Review `gorm:"foreignKey:AbstractID;constraint:OnDelete:CASCADE;" json:"reviews,omitempty"`

	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Author struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	AbstractID string `gorm:"type:uuid;not null;index:idx_authors_abstract_sort,priority:1" json:"-"`
	SortIndex  int    `gorm:"not null;default:0;index:idx_authors_abstract_sort,priority:2" json:"-"`
	FirstName  string `gorm:"not null" json:"first_name"`
	LastName   string `gorm:"not null" json:"last_name"`
	Degree     string `json:"degree,omitempty"`
	Email      string `json:"email,omitempty"`
}

type Review struct {
	ID          uint               `gorm:"primaryKey" json:"-"`
	AbstractID  string             `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_abstract_reviewer,priority:1" json:"-"`
	ReviewerID  uint               `gorm:"not null;uniqueIndex:idx_reviews_abstract_reviewer,priority:2" json:"-"`
	Reviewer    reviewers.Reviewer `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Score       int                `gorm:"not null" json:"score"`
	Comments    string             `json:"comments"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// MessageFor derives the submitter-facing status line. The message is never
// stored; every projection recomputes it from the current status.
func MessageFor(status string) string {
	switch status {
	case StatusPending:
		return "Your abstract has been received and is awaiting review."
	case StatusUnderReview:
		return "Your abstract is currently being reviewed by the committee."
	case StatusAccepted:
		return "Congratulations! Your abstract has been accepted."
	case StatusRejected:
		return "We regret to inform you that your abstract was not accepted."
	default:
		return ""
	}
}

func IsValidDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func IsValidScore(score int) bool {
	return score >= 1 && score <= 10
}

func (a *Abstract) HasPDF() bool {
	return a.PDFPath != ""
}

// RecalculateAverage recomputes the mean over the loaded reviews. Handlers
// against the database recompute server-side instead; this covers the loaded
// aggregate and tests.
func (a *Abstract) RecalculateAverage() float64 {
	if len(a.Reviews) == 0 {
		a.AverageScore = 0
		return 0
	}
	sum := 0
	for _, r := range a.Reviews {
		sum += r.Score
	}
	a.AverageScore = float64(sum) / float64(len(a.Reviews))
	return a.AverageScore
}

// DepartmentLabel resolves the "other" escape to its free-text override.
func (a *Abstract) DepartmentLabel() string {
	if a.Department == DepartmentOtherKey && a.DepartmentOther != "" {
		return a.DepartmentOther
	}
	return a.Department
}
