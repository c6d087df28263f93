package abstracts

import (
	"time"

	"abstract-portal/internal/domain/abstracts"
)

// Projections over the Abstract aggregate. The access token appears in
// exactly one response in the whole API: the creation reply. None of these
// views carry it.

type PublicAbstractView struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Authors           string             `json:"authors"`
	AdditionalAuthors []abstracts.Author `json:"additional_authors,omitempty"`
	Department        string             `json:"department"`
	Category          string             `json:"category"`
	Keywords          string             `json:"keywords"`
	Background        string             `json:"background,omitempty"`
	Methods           string             `json:"methods,omitempty"`
	Results           string             `json:"results,omitempty"`
	Conclusion        string             `json:"conclusion,omitempty"`
	Abstract          string             `json:"abstract"`
	HasPDF            bool               `json:"hasPDF"`
	Status            string             `json:"status"`
	StatusMessage     string             `json:"statusMessage"`
	SubmittedAt       time.Time          `json:"submittedAt"`
	AcceptedAt        *time.Time         `json:"acceptedAt,omitempty"`
	RejectedAt        *time.Time         `json:"rejectedAt,omitempty"`
	PublishedAt       *time.Time         `json:"publishedAt,omitempty"`
}

type ReviewView struct {
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
	Score         int       `json:"score"`
	Comments      string    `json:"comments"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

type AdminAbstractView struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Authors       string       `json:"authors"`
	Email         string       `json:"email"`
	Department    string       `json:"department"`
	Category      string       `json:"category"`
	Keywords      string       `json:"keywords"`
	Abstract      string       `json:"abstract"`
	HasPDF        bool         `json:"hasPDF"`
	PDFURL        *string      `json:"pdfUrl"`
	Status        string       `json:"status"`
	StatusMessage string       `json:"statusMessage"`
	ReviewCount   int          `json:"reviewCount"`
	AverageScore  float64      `json:"averageScore"`
	Reviews       []ReviewView `json:"reviews"`
	Published     bool         `json:"published"`
	SubmittedAt   time.Time    `json:"submittedAt"`
	AcceptedAt    *time.Time   `json:"acceptedAt,omitempty"`
	RejectedAt    *time.Time   `json:"rejectedAt,omitempty"`
	PublishedAt   *time.Time   `json:"publishedAt,omitempty"`
}

type AdminListItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Authors      string    `json:"authors"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	Category     string    `json:"category"`
	Keywords     string    `json:"keywords"`
	HasPDF       bool      `json:"hasPDF"`
	Status       string    `json:"status"`
	AverageScore float64   `json:"averageScore"`
	Published    bool      `json:"published"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type ShowcaseItem struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Authors      string     `json:"authors"`
	Department   string     `json:"department"`
	Category     string     `json:"category"`
	Keywords     string     `json:"keywords"`
	Abstract     string     `json:"abstract"`
	AverageScore float64    `json:"averageScore"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

func BuildPublicView(a *abstracts.Abstract) PublicAbstractView {
	return PublicAbstractView{
		ID:                a.ID,
		Title:             a.Title,
		Authors:           a.FormatAuthors(),
		AdditionalAuthors: a.AdditionalAuthors,
		Department:        a.DepartmentLabel(),
		Category:          a.Category,
		Keywords:          a.Keywords,
		Background:        a.Background,
		Methods:           a.Methods,
		Results:           a.Results,
		Conclusion:        a.Conclusion,
		Abstract:          a.FullText(),
		HasPDF:            a.HasPDF(),
		Status:            a.Status,
		StatusMessage:     abstracts.MessageFor(a.Status),
		SubmittedAt:       a.CreatedAt,
		AcceptedAt:        a.AcceptedAt,
		RejectedAt:        a.RejectedAt,
		PublishedAt:       a.PublishedAt,
	}
}

// BuildAdminView expects Reviews.Reviewer and AdditionalAuthors preloaded.
func BuildAdminView(a *abstracts.Abstract) AdminAbstractView {
	reviews := make([]ReviewView, 0, len(a.Reviews))
	for _, r := range a.Reviews {
		reviews = append(reviews, ReviewView{
			ReviewerName:  r.Reviewer.Name,
			ReviewerEmail: r.Reviewer.Email,
			Score:         r.Score,
			Comments:      r.Comments,
			SubmittedAt:   r.SubmittedAt,
		})
	}

	var pdfURL *string
	if a.HasPDF() {
		u := "/" + a.PDFPath
		pdfURL = &u
	}

	return AdminAbstractView{
		ID:            a.ID,
		Title:         a.Title,
		Authors:       a.FormatAuthors(),
		Email:         a.AuthorEmail,
		Department:    a.DepartmentLabel(),
		Category:      a.Category,
		Keywords:      a.Keywords,
		Abstract:      a.FullText(),
		HasPDF:        a.HasPDF(),
		PDFURL:        pdfURL,
		Status:        a.Status,
		StatusMessage: abstracts.MessageFor(a.Status),
		ReviewCount:   len(a.Reviews),
		AverageScore:  a.AverageScore,
		Reviews:       reviews,
		Published:     a.Published,
		SubmittedAt:   a.CreatedAt,
		AcceptedAt:    a.AcceptedAt,
		RejectedAt:    a.RejectedAt,
		PublishedAt:   a.PublishedAt,
	}
}

func BuildAdminListItem(a *abstracts.Abstract) AdminListItem {
	return AdminListItem{
		ID:           a.ID,
		Title:        a.Title,
		Authors:      a.FormatAuthors(),
		Email:        a.AuthorEmail,
		Department:   a.DepartmentLabel(),
		Category:     a.Category,
		Keywords:     a.Keywords,
		HasPDF:       a.HasPDF(),
		Status:       a.Status,
		AverageScore: a.AverageScore,
		Published:    a.Published,
		SubmittedAt:  a.CreatedAt,
	}
}

func BuildShowcaseItem(a *abstracts.Abstract) ShowcaseItem {
	return ShowcaseItem{
		ID:           a.ID,
		Title:        a.Title,
		Authors:      a.FormatAuthors(),
		Department:   a.DepartmentLabel(),
		Category:     a.Category,
		Keywords:     a.Keywords,
		Abstract:     a.FullText(),
		AverageScore: a.AverageScore,
		PublishedAt:  a.PublishedAt,
	}
}
