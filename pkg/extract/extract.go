// Package extract turns uploaded resume files into plain text suitable
// for prompting. Dispatch is by file extension; PDF and DOCX inputs are
// additionally sniffed so a mislabeled upload fails with a clear error
// instead of a parser panic.
package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupported marks extensions no extractor handles.
var ErrUnsupported = errors.New("unsupported file type")

// Extract returns the plain text content of data. The extension of
// filename selects the extractor: .pdf, .docx, .html/.htm, .txt/.md.
func Extract(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file %q", filename)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		if !isPDF(data) {
			return "", fmt.Errorf("file %q claims pdf but lacks a %%PDF header", filename)
		}
		return extractPDF(data)
	case ".docx":
		if !isZip(data) {
			return "", fmt.Errorf("file %q claims docx but is not a zip container", filename)
		}
		return extractDOCX(data)
	case ".html", ".htm":
		return extractHTML(string(data)), nil
	case ".txt", ".md":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupported, ext)
	}
}

func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func isZip(b []byte) bool {
	return len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	text := normalizeWhitespace(string(raw))
	if text == "" {
		return "", errors.New("no text extracted from pdf")
	}
	return text, nil
}

var (
	docxParaEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>`)
	xmlTags     = regexp.MustCompile(`(?s)<[^>]*>`)
)

// extractDOCX reads word/document.xml and strips the markup, keeping
// paragraph boundaries as newlines.
func extractDOCX(data []byte) (string, error) {
	zr, err := newZipReader(data)
	if err != nil {
		return "", fmt.Errorf("docx container: %w", err)
	}
	raw, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return "", err
	}

	body := docxParaEnd.ReplaceAllString(string(raw), "\n")
	body = xmlTags.ReplaceAllString(body, "")
	text := normalizeWhitespace(unescapeEntities(body))
	if text == "" {
		return "", errors.New("no text extracted from docx")
	}
	return text, nil
}

// extractHTML prefers a markdown rendering, which keeps headings and list
// structure the completion model can use. Tag stripping is the fallback
// for markup the converter rejects.
func extractHTML(s string) string {
	if md, err := htmltomarkdown.ConvertString(s); err == nil {
		if text := normalizeWhitespace(md); text != "" {
			return text
		}
	}
	stripped := xmlTags.ReplaceAllString(s, " ")
	return normalizeWhitespace(unescapeEntities(stripped))
}

func newZipReader(data []byte) (*zip.Reader, error) {
	return zip.NewReader(bytes.NewReader(data), int64(len(data)))
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s missing from docx package", name)
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescapeEntities(s string) string { return entityReplacer.Replace(s) }

var blankRuns = regexp.MustCompile(`\n{3,}`)

// normalizeWhitespace collapses space runs within lines and caps blank
// runs at one empty line, preserving paragraph structure for the prompt.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	out := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(out)
}
