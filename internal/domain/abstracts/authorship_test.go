package abstracts

import (
	"strings"
	"testing"
)

func TestFormatAuthors(t *testing.T) {
	a := &Abstract{
		AuthorFirstName: "Maria",
		AuthorLastName:  "Santos",
		AuthorDegree:    "MD",
		AdditionalAuthors: []Author{
			{SortIndex: 1, FirstName: "Wei", LastName: "Chen"},
			{SortIndex: 0, FirstName: "James", LastName: "Okafor", Degree: "PhD"},
		},
	}

	got := a.FormatAuthors()
	want := "Maria Santos, MD; James Okafor, PhD; Wei Chen"
	if got != want {
		t.Errorf("FormatAuthors() = %q, want %q", got, want)
	}
}

func TestFormatAuthorsPrimaryOnly(t *testing.T) {
	a := &Abstract{AuthorFirstName: "Ana", AuthorLastName: "Lima"}
	if got := a.FormatAuthors(); got != "Ana Lima" {
		t.Errorf("FormatAuthors() = %q", got)
	}
}

func TestParseFlatAuthors(t *testing.T) {
	primary, additional := ParseFlatAuthors("Maria Santos, MD; James Okafor, PhD; Wei Chen")

	if primary.FirstName != "Maria" || primary.LastName != "Santos" || primary.Degree != "MD" {
		t.Errorf("primary = %+v", primary)
	}
	if len(additional) != 2 {
		t.Fatalf("len(additional) = %d, want 2", len(additional))
	}
	if additional[0].LastName != "Okafor" || additional[0].Degree != "PhD" {
		t.Errorf("additional[0] = %+v", additional[0])
	}
	if additional[1].FirstName != "Wei" || additional[1].LastName != "Chen" {
		t.Errorf("additional[1] = %+v", additional[1])
	}
	if additional[0].SortIndex != 0 || additional[1].SortIndex != 1 {
		t.Errorf("ordering lost: %+v", additional)
	}
}

func TestParseFlatAuthorsRoundTrip(t *testing.T) {
	flat := "Maria Santos, MD; James Okafor, PhD"
	primary, additional := ParseFlatAuthors(flat)

	a := &Abstract{
		AuthorFirstName:   primary.FirstName,
		AuthorLastName:    primary.LastName,
		AuthorDegree:      primary.Degree,
		AdditionalAuthors: additional,
	}
	if got := a.FormatAuthors(); got != flat {
		t.Errorf("round trip = %q, want %q", got, flat)
	}
}

func TestFullTextStructured(t *testing.T) {
	a := &Abstract{
		Background: "B",
		Methods:    "M",
		Results:    "R",
		Conclusion: "C",
	}
	got := a.FullText()
	for _, heading := range []string{"Background: B", "Methods: M", "Results: R", "Conclusion: C"} {
		if !strings.Contains(got, heading) {
			t.Errorf("FullText() missing %q: %q", heading, got)
		}
	}
}

func TestFullTextLegacyBody(t *testing.T) {
	a := &Abstract{Background: "Just one free-text body."}
	if got := a.FullText(); got != "Just one free-text body." {
		t.Errorf("FullText() = %q, want raw body without headings", got)
	}
}

func TestNormalizeKeywords(t *testing.T) {
	got := NormalizeKeywords([]string{" stroke ", "MRI", "stroke", "", "mri"})
	if got != "stroke, MRI" {
		t.Errorf("NormalizeKeywords = %q", got)
	}
	if NormalizeKeywords(nil) != "" {
		t.Error("empty input should normalize to empty string")
	}
	if NormalizeKeywords([]string{"  ", ""}) != "" {
		t.Error("whitespace-only input should normalize to empty string")
	}
}
