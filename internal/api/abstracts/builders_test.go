package abstracts

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"abstract-portal/internal/domain/abstracts"
	"abstract-portal/internal/domain/reviewers"
)

func sampleAbstract() *abstracts.Abstract {
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	return &abstracts.Abstract{
		ID:              "7b0d7a9e-1a68-4a8e-9a51-3a1f9a2b4c5d",
		Title:           "MRI outcomes after early intervention",
		Department:      "neurology",
		Category:        abstracts.CategoryClinical,
		Keywords:        "stroke, MRI",
		AuthorFirstName: "Maria",
		AuthorLastName:  "Santos",
		AuthorDegree:    "MD",
		AuthorEmail:     "maria@example.org",
		Background:      "Context.",
		Methods:         "Cohort.",
		Results:         "Improved.",
		Conclusion:      "Works.",
		AccessToken:     "f00dfeedf00dfeedf00dfeedf00dfeedf00dfeedf00dfeedf00dfeedf00dfeed",
		Status:          abstracts.StatusUnderReview,
		AverageScore:    7,
		Reviews: []abstracts.Review{
			{
				ReviewerID:  1,
				Reviewer:    reviewers.Reviewer{Name: "Wei Chen", Email: "wei@example.org"},
				Score:       6,
				SubmittedAt: now,
			},
			{
				ReviewerID:  2,
				Reviewer:    reviewers.Reviewer{Name: "James Okafor", Email: "james@example.org"},
				Score:       8,
				SubmittedAt: now,
			},
		},
		CreatedAt: now,
	}
}

func TestPublicViewHidesReviewsAndToken(t *testing.T) {
	a := sampleAbstract()
	view := BuildPublicView(a)

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)

	if strings.Contains(body, a.AccessToken) {
		t.Error("public view leaks the access token")
	}
	if strings.Contains(body, "averageScore") || strings.Contains(body, "average_score") {
		t.Error("public view exposes the average score")
	}
	if strings.Contains(body, "wei@example.org") {
		t.Error("public view exposes reviewer identity")
	}
	if view.StatusMessage != abstracts.MessageFor(a.Status) {
		t.Errorf("statusMessage = %q, inconsistent with status %q", view.StatusMessage, a.Status)
	}
}

func TestAdminViewResolvesReviewersWithoutToken(t *testing.T) {
	a := sampleAbstract()
	view := BuildAdminView(a)

	if view.ReviewCount != 2 {
		t.Errorf("reviewCount = %d, want 2", view.ReviewCount)
	}
	if view.AverageScore != 7 {
		t.Errorf("averageScore = %v, want 7", view.AverageScore)
	}
	if len(view.Reviews) != 2 || view.Reviews[0].ReviewerName != "Wei Chen" {
		t.Errorf("reviews not resolved: %+v", view.Reviews)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), a.AccessToken) {
		t.Error("admin view leaks the access token")
	}
}

func TestAdminListItemExcludesToken(t *testing.T) {
	a := sampleAbstract()
	raw, err := json.Marshal(BuildAdminListItem(a))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), a.AccessToken) {
		t.Error("list item leaks the access token")
	}
}

func TestShowcaseItemRendersFlatAuthorsAndBody(t *testing.T) {
	a := sampleAbstract()
	item := BuildShowcaseItem(a)

	if item.Authors != "Maria Santos, MD" {
		t.Errorf("authors = %q", item.Authors)
	}
	if !strings.Contains(item.Abstract, "Methods: Cohort.") {
		t.Errorf("abstract body = %q", item.Abstract)
	}
	raw, _ := json.Marshal(item)
	if strings.Contains(string(raw), a.AccessToken) {
		t.Error("showcase item leaks the access token")
	}
}
