package abstracts

import (
	"encoding/json"
	"strings"

	"abstract-portal/internal/domain/abstracts"
)

type AuthorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Degree    string `json:"degree"`
	Email     string `json:"email"`
}

// KeywordList accepts both wire shapes: a JSON array of terms or a single
// comma-separated string (the legacy format).
type KeywordList []string

func (k *KeywordList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*k = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*k = abstracts.SplitKeywords(raw)
	return nil
}

// SubmitAbstractRequest unifies the two submission schemas: structured
// authorship/sections, or the legacy flat `authors` + `abstract` fields,
// normalized in Normalize.
type SubmitAbstractRequest struct {
	Title           string `json:"title" form:"title"`
	Department      string `json:"department" form:"department"`
	DepartmentOther string `json:"department_other" form:"department_other"`
	Category        string `json:"category" form:"category"`

	Keywords KeywordList `json:"keywords"`

	AuthorFirstName   string        `json:"author_first_name" form:"author_first_name"`
	AuthorLastName    string        `json:"author_last_name" form:"author_last_name"`
	AuthorDegree      string        `json:"author_degree" form:"author_degree"`
	AuthorEmail       string        `json:"author_email" form:"author_email"`
	AdditionalAuthors []AuthorInput `json:"additional_authors"`

	Background string `json:"background" form:"background"`
	Methods    string `json:"methods" form:"methods"`
	Results    string `json:"results" form:"results"`
	Conclusion string `json:"conclusion" form:"conclusion"`

	// Legacy schema
	Authors      string `json:"authors" form:"authors"`
	Email        string `json:"email" form:"email"`
	AbstractBody string `json:"abstract" form:"abstract"`
}

// Normalize folds the legacy fields into the structured representation and
// returns the invalid-field message, empty when the request is valid.
func (r *SubmitAbstractRequest) Normalize() string {
	r.Title = strings.TrimSpace(r.Title)
	r.Department = strings.ToLower(strings.TrimSpace(r.Department))
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.AuthorEmail = strings.ToLower(strings.TrimSpace(r.AuthorEmail))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	// Legacy flat author string
	if r.AuthorFirstName == "" && r.AuthorLastName == "" && r.Authors != "" {
		primary, additional := abstracts.ParseFlatAuthors(r.Authors)
		r.AuthorFirstName = primary.FirstName
		r.AuthorLastName = primary.LastName
		r.AuthorDegree = primary.Degree
		for _, a := range additional {
			r.AdditionalAuthors = append(r.AdditionalAuthors, AuthorInput{
				FirstName: a.FirstName,
				LastName:  a.LastName,
				Degree:    a.Degree,
			})
		}
	}
	if r.AuthorEmail == "" {
		r.AuthorEmail = r.Email
	}

	// Legacy single-body content
	hasSections := r.Background != "" && r.Methods != "" && r.Results != "" && r.Conclusion != ""
	if r.Background == "" && strings.TrimSpace(r.AbstractBody) != "" &&
		r.Methods == "" && r.Results == "" && r.Conclusion == "" {
		r.Background = strings.TrimSpace(r.AbstractBody)
	}

	switch {
	case r.Title == "":
		return "Please provide a title"
	case r.AuthorLastName == "" && r.AuthorFirstName == "":
		return "Please provide at least one author"
	case r.AuthorEmail == "":
		return "Please provide a contact email"
	case !abstracts.IsValidDepartment(r.Department):
		return "Invalid department"
	case r.Department == abstracts.DepartmentOtherKey && strings.TrimSpace(r.DepartmentOther) == "":
		return "Please describe your department"
	case !abstracts.IsValidCategory(r.Category):
		return "Invalid category"
	}

	if abstracts.NormalizeKeywords(r.Keywords) == "" {
		return "Please provide at least one keyword"
	}

	if r.Background == "" && !hasSections {
		return "Please provide the abstract text"
	}
	if (r.Methods != "" || r.Results != "" || r.Conclusion != "") && !hasSections {
		return "Structured abstracts require background, methods, results and conclusion"
	}

	return ""
}

// ToModel builds the aggregate; status, token and timestamps are assigned by
// the handler at creation time.
func (r *SubmitAbstractRequest) ToModel() abstracts.Abstract {
	additional := make([]abstracts.Author, 0, len(r.AdditionalAuthors))
	for i, a := range r.AdditionalAuthors {
		additional = append(additional, abstracts.Author{
			SortIndex: i,
			FirstName: strings.TrimSpace(a.FirstName),
			LastName:  strings.TrimSpace(a.LastName),
			Degree:    strings.TrimSpace(a.Degree),
			Email:     strings.ToLower(strings.TrimSpace(a.Email)),
		})
	}

	return abstracts.Abstract{
		Title:             r.Title,
		Department:        r.Department,
		DepartmentOther:   strings.TrimSpace(r.DepartmentOther),
		Category:          r.Category,
		Keywords:          abstracts.NormalizeKeywords(r.Keywords),
		AuthorFirstName:   strings.TrimSpace(r.AuthorFirstName),
		AuthorLastName:    strings.TrimSpace(r.AuthorLastName),
		AuthorDegree:      strings.TrimSpace(r.AuthorDegree),
		AuthorEmail:       r.AuthorEmail,
		AdditionalAuthors: additional,
		Background:        strings.TrimSpace(r.Background),
		Methods:           strings.TrimSpace(r.Methods),
		Results:           strings.TrimSpace(r.Results),
		Conclusion:        strings.TrimSpace(r.Conclusion),
	}
}
