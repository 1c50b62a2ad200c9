package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docxDocumentXML(t *testing.T, pkg []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(raw)
	}
	t.Fatal("word/document.xml not found in package")
	return ""
}

func TestRenderDOCXPackageParts(t *testing.T) {
	out, err := NewEngine(DefaultStyle()).Render(sampleDoc(), FormatDOCX)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"}, names)
}

func TestRenderDOCXSectionOrdering(t *testing.T) {
	out, err := NewEngine(DefaultStyle()).Render(sampleDoc(), FormatDOCX)
	require.NoError(t, err)

	doc := docxDocumentXML(t, out)

	wantOrder := []string{
		"JANE DOE",
		"PROFESSIONAL SUMMARY",
		"SKILLS &amp; OTHER",
		"PROFESSIONAL EXPERIENCE",
		"Acme Corp, Boston (2020 - 2023)",
		"EDUCATION",
		"Awards: 3.9",
		"PROJECTS &amp; PUBLICATIONS",
		"Published in: IEEE Micro (2022)",
		"LANGUAGES",
	}
	last := -1
	for _, want := range wantOrder {
		idx := strings.Index(doc, want)
		require.NotEqual(t, -1, idx, "missing %q", want)
		assert.Greater(t, idx, last, "%q out of order", want)
		last = idx
	}

	assert.NotContains(t, doc, "CERTIFICATIONS")
	assert.NotContains(t, doc, "AWARDS &amp; HONORS")
}

func TestRenderDOCXGeometryAndEscaping(t *testing.T) {
	doc := sampleDoc()
	doc.Name = "Dee & Jay <Ops>"

	out, err := NewEngine(DefaultStyle()).Render(doc, FormatDOCX)
	require.NoError(t, err)

	body := docxDocumentXML(t, out)
	assert.Contains(t, body, "DEE &amp; JAY &lt;OPS&gt;")
	assert.Contains(t, body, `<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"`)
	assert.Contains(t, body, `<w:color w:val="2C3E50"/>`)
	assert.Contains(t, body, `<w:sz w:val="36"/>`)
}

func TestRenderBothFormatsShareComposition(t *testing.T) {
	engine := NewEngine(DefaultStyle())
	doc := sampleDoc()

	pdfOut, err := engine.Render(doc, FormatPDF)
	require.NoError(t, err)
	docxOut, err := engine.Render(doc, FormatDOCX)
	require.NoError(t, err)

	// Same document renders the same section set in both formats.
	for _, heading := range []string{"PROFESSIONAL SUMMARY", "PROFESSIONAL EXPERIENCE", "EDUCATION", "LANGUAGES"} {
		assert.Contains(t, string(pdfOut), heading)
		assert.Contains(t, docxDocumentXML(t, docxOut), heading)
	}
}
