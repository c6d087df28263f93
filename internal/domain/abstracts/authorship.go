package abstracts

import (
	"sort"
	"strings"
)

// FormatAuthors renders the structured author list flat, the way it appears
// in emails and exports: "First Last, Degree; First Last; ...". The primary
// author always comes first.
func (a *Abstract) FormatAuthors() string {
	parts := make([]string, 0, 1+len(a.AdditionalAuthors))
	parts = append(parts, formatAuthor(a.AuthorFirstName, a.AuthorLastName, a.AuthorDegree))

	ordered := make([]Author, len(a.AdditionalAuthors))
	copy(ordered, a.AdditionalAuthors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortIndex < ordered[j].SortIndex
	})
	for _, au := range ordered {
		parts = append(parts, formatAuthor(au.FirstName, au.LastName, au.Degree))
	}
	return strings.Join(parts, "; ")
}

func formatAuthor(first, last, degree string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if degree = strings.TrimSpace(degree); degree != "" {
		return name + ", " + degree
	}
	return name
}

// ParseFlatAuthors normalizes the legacy flat author string
// ("First Last, Degree; First Last; ...") into structured authors. The first
// segment becomes the primary author; the rest keep their listed order.
func ParseFlatAuthors(flat string) (primary Author, additional []Author) {
	segments := strings.Split(flat, ";")
	authors := make([]Author, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		name, degree := seg, ""
		if i := strings.Index(seg, ","); i >= 0 {
			name = strings.TrimSpace(seg[:i])
			degree = strings.TrimSpace(seg[i+1:])
		}
		first, last := splitName(name)
		authors = append(authors, Author{FirstName: first, LastName: last, Degree: degree})
	}
	if len(authors) == 0 {
		return Author{}, nil
	}
	for i := range authors[1:] {
		authors[i+1].SortIndex = i
	}
	return authors[0], authors[1:]
}

func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return "", fields[0]
	default:
		return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
	}
}

// FullText concatenates the structured sections into the single-body
// rendering used by the showcase and exports. A legacy submission that only
// carried a free-text body has it stored as Background, so the output is
// just that body.
func (a *Abstract) FullText() string {
	sections := []struct {
		heading string
		body    string
	}{
		{"Background", a.Background},
		{"Methods", a.Methods},
		{"Results", a.Results},
		{"Conclusion", a.Conclusion},
	}

	filled := 0
	for _, s := range sections {
		if strings.TrimSpace(s.body) != "" {
			filled++
		}
	}
	if filled <= 1 {
		return strings.TrimSpace(a.Background)
	}

	var b strings.Builder
	for _, s := range sections {
		body := strings.TrimSpace(s.body)
		if body == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.heading)
		b.WriteString(": ")
		b.WriteString(body)
	}
	return b.String()
}

// NormalizeKeywords trims, de-duplicates (case-insensitive) and re-joins a
// keyword list. Empty result means the submission is invalid.
func NormalizeKeywords(terms []string) string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return strings.Join(out, ", ")
}

// SplitKeywords is the inverse boundary helper for comma-separated input.
func SplitKeywords(raw string) []string {
	return strings.Split(raw, ",")
}
