package abstracts

import (
	"encoding/json"
	"testing"
)

func validRequest() SubmitAbstractRequest {
	return SubmitAbstractRequest{
		Title:           "MRI outcomes after early intervention",
		Department:      "neurology",
		Category:        "clinical",
		Keywords:        KeywordList{"stroke", "MRI"},
		AuthorFirstName: "Maria",
		AuthorLastName:  "Santos",
		AuthorEmail:     "Maria@Example.org",
		Background:      "Context.",
		Methods:         "Cohort.",
		Results:         "Improved.",
		Conclusion:      "Works.",
	}
}

func TestNormalizeValidRequest(t *testing.T) {
	req := validRequest()
	if msg := req.Normalize(); msg != "" {
		t.Fatalf("valid request rejected: %q", msg)
	}
	if req.AuthorEmail != "maria@example.org" {
		t.Errorf("email not lowercased: %q", req.AuthorEmail)
	}
}

func TestNormalizeRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitAbstractRequest)
	}{
		{"missing title", func(r *SubmitAbstractRequest) { r.Title = "" }},
		{"missing authors", func(r *SubmitAbstractRequest) {
			r.AuthorFirstName, r.AuthorLastName = "", ""
		}},
		{"missing email", func(r *SubmitAbstractRequest) { r.AuthorEmail = "" }},
		{"bad department", func(r *SubmitAbstractRequest) { r.Department = "astrology" }},
		{"other department without override", func(r *SubmitAbstractRequest) {
			r.Department, r.DepartmentOther = "other", ""
		}},
		{"bad category", func(r *SubmitAbstractRequest) { r.Category = "misc" }},
		{"empty keywords", func(r *SubmitAbstractRequest) { r.Keywords = KeywordList{" ", ""} }},
		{"no content", func(r *SubmitAbstractRequest) {
			r.Background, r.Methods, r.Results, r.Conclusion = "", "", "", ""
		}},
		{"partial sections", func(r *SubmitAbstractRequest) { r.Conclusion = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			if msg := req.Normalize(); msg == "" {
				t.Error("invalid request accepted")
			}
		})
	}
}

func TestNormalizeLegacyFields(t *testing.T) {
	req := SubmitAbstractRequest{
		Title:        "Legacy submission",
		Department:   "surgery",
		Category:     "education",
		Keywords:     KeywordList{"training"},
		Authors:      "Maria Santos, MD; Wei Chen",
		Email:        "maria@example.org",
		AbstractBody: "One single body of text.",
	}

	if msg := req.Normalize(); msg != "" {
		t.Fatalf("legacy request rejected: %q", msg)
	}
	if req.AuthorLastName != "Santos" || req.AuthorDegree != "MD" {
		t.Errorf("primary author not parsed: %+v", req)
	}
	if len(req.AdditionalAuthors) != 1 || req.AdditionalAuthors[0].LastName != "Chen" {
		t.Errorf("additional authors not parsed: %+v", req.AdditionalAuthors)
	}
	if req.Background != "One single body of text." {
		t.Errorf("legacy body not folded into background: %q", req.Background)
	}

	model := req.ToModel()
	if model.AuthorEmail != "maria@example.org" {
		t.Errorf("contact email = %q", model.AuthorEmail)
	}
	if model.Keywords != "training" {
		t.Errorf("keywords = %q", model.Keywords)
	}
}

func TestKeywordListUnmarshal(t *testing.T) {
	var fromArray struct {
		Keywords KeywordList `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(`{"keywords":["stroke","MRI"]}`), &fromArray); err != nil {
		t.Fatal(err)
	}
	if len(fromArray.Keywords) != 2 || fromArray.Keywords[1] != "MRI" {
		t.Errorf("array form = %v", fromArray.Keywords)
	}

	var fromString struct {
		Keywords KeywordList `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(`{"keywords":"stroke, MRI"}`), &fromString); err != nil {
		t.Fatal(err)
	}
	if len(fromString.Keywords) != 2 {
		t.Errorf("string form = %v", fromString.Keywords)
	}

	var bad struct {
		Keywords KeywordList `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(`{"keywords":42}`), &bad); err == nil {
		t.Error("numeric keywords accepted")
	}
}
