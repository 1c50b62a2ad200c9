// Package resolve reconciles projects and publications that describe the
// same underlying work. Associations are computed on demand and never
// stored on the document, so resolution is idempotent by construction.
package resolve

import (
	"strings"

	"resume-composer/internal/model"
)

// Result exposes three views over the document's sequences: a publication
// index per project (-1 when unmatched), and the publications no project
// claimed, all in original order.
type Result struct {
	// ProjectPublication is aligned with doc.Projects.
	ProjectPublication []int
	// Standalone holds indexes into doc.Publications.
	Standalone []int
}

// PublicationFor returns the matched publication index for a project.
func (r Result) PublicationFor(project int) (int, bool) {
	if project < 0 || project >= len(r.ProjectPublication) {
		return 0, false
	}
	j := r.ProjectPublication[project]
	if j < 0 {
		return 0, false
	}
	return j, true
}

// Resolve scans publications for each project and records the first title
// match in publication order. Titles compare case-insensitively with
// whitespace normalized; full-string equality, not substring. The document
// is not mutated.
func Resolve(doc *model.ResumeDocument) Result {
	res := Result{
		ProjectPublication: make([]int, len(doc.Projects)),
		Standalone:         []int{},
	}
	claimed := make([]bool, len(doc.Publications))

	for i := range doc.Projects {
		res.ProjectPublication[i] = -1
		key := canonicalTitle(doc.Projects[i].Name)
		if key == "" {
			continue
		}
		for j := range doc.Publications {
			if canonicalTitle(doc.Publications[j].Title) == key {
				res.ProjectPublication[i] = j
				claimed[j] = true
				break
			}
		}
	}

	for j := range doc.Publications {
		if !claimed[j] {
			res.Standalone = append(res.Standalone, j)
		}
	}
	return res
}

// canonicalTitle lowercases and collapses interior whitespace so titles
// compare by content alone.
func canonicalTitle(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
