package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/model"
)

func TestResolveMatchesTitlesCaseAndSpaceInsensitively(t *testing.T) {
	doc := &model.ResumeDocument{
		Projects: []model.Project{
			{Name: "Deep  Learning Tracker"},
			{Name: "Unmatched Project"},
		},
		Publications: []model.Publication{
			{Title: "Something Else"},
			{Title: "deep learning tracker", Journal: "IEEE"},
		},
	}

	res := Resolve(doc)

	require.Len(t, res.ProjectPublication, 2)
	assert.Equal(t, 1, res.ProjectPublication[0])
	assert.Equal(t, -1, res.ProjectPublication[1])
	assert.Equal(t, []int{0}, res.Standalone)
}

func TestResolveRequiresFullTitleEquality(t *testing.T) {
	doc := &model.ResumeDocument{
		Projects: []model.Project{
			{Name: "Acme Portal"},
			{Name: "Acme Portal v2"},
		},
		Publications: []model.Publication{
			{Title: "  acme portal "},
		},
	}

	res := Resolve(doc)

	assert.Equal(t, 0, res.ProjectPublication[0])
	assert.Equal(t, -1, res.ProjectPublication[1], "substring similarity must not match")
	assert.Empty(t, res.Standalone)
}

func TestResolveFirstMatchWins(t *testing.T) {
	doc := &model.ResumeDocument{
		Projects: []model.Project{{Name: "Tracker"}},
		Publications: []model.Publication{
			{Title: "Tracker", Journal: "First"},
			{Title: "TRACKER", Journal: "Second"},
		},
	}

	res := Resolve(doc)

	assert.Equal(t, 0, res.ProjectPublication[0])
	assert.Equal(t, []int{1}, res.Standalone)
}

func TestResolveEmptyTitlesNeverMatch(t *testing.T) {
	doc := &model.ResumeDocument{
		Projects:     []model.Project{{Name: ""}, {Name: "   "}},
		Publications: []model.Publication{{Title: ""}, {Title: "  "}},
	}

	res := Resolve(doc)

	assert.Equal(t, []int{-1, -1}, res.ProjectPublication)
	assert.Equal(t, []int{0, 1}, res.Standalone)
}

func TestResolveDoesNotMutateAndIsIdempotent(t *testing.T) {
	doc := &model.ResumeDocument{
		Projects:     []model.Project{{Name: "A"}},
		Publications: []model.Publication{{Title: "a"}, {Title: "b"}},
	}

	first := Resolve(doc)
	second := Resolve(doc)

	assert.Equal(t, first, second)
	assert.Equal(t, "A", doc.Projects[0].Name)
	assert.Equal(t, "a", doc.Publications[0].Title)
}

func TestResolveNoPublications(t *testing.T) {
	doc := &model.ResumeDocument{
		Projects: []model.Project{{Name: "Solo"}},
	}

	res := Resolve(doc)

	assert.Equal(t, []int{-1}, res.ProjectPublication)
	assert.Empty(t, res.Standalone)
}

func TestPublicationForBounds(t *testing.T) {
	res := Result{ProjectPublication: []int{2, -1}}

	j, ok := res.PublicationFor(0)
	require.True(t, ok)
	assert.Equal(t, 2, j)

	_, ok = res.PublicationFor(1)
	assert.False(t, ok)

	_, ok = res.PublicationFor(5)
	assert.False(t, ok)
}
