package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/model"
)

func TestRenderPDFProducesInspectableDocument(t *testing.T) {
	out, err := NewEngine(DefaultStyle()).Render(sampleDoc(), FormatPDF)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	body := string(out)
	assert.True(t, len(body) > 4 && body[:5] == "%PDF-", "missing PDF header")

	// Compression is off, so page text is visible in the content stream.
	assert.Contains(t, body, "JANE DOE")
	assert.Contains(t, body, "PROFESSIONAL SUMMARY")
	assert.Contains(t, body, "PROFESSIONAL EXPERIENCE")
	assert.Contains(t, body, "Awards: 3.9")

	assert.NotContains(t, body, "CERTIFICATIONS")
	assert.NotContains(t, body, "AWARDS & HONORS")
	assert.NotContains(t, body, "REFERENCES")
}

func TestRenderPDFEmptyDocument(t *testing.T) {
	doc := &model.ResumeDocument{}
	doc.ApplyDefaults()

	out, err := NewEngine(DefaultStyle()).Render(doc, FormatPDF)
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "PROFESSIONAL SUMMARY")
	assert.Contains(t, body, "SKILLS & OTHER")
	assert.NotContains(t, body, "EDUCATION")
}
