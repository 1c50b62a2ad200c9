package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// docxWriter builds the WordprocessingML parts directly and zips them up.
// The package needs only three entries to open in Word, LibreOffice and
// Google Docs. Sizes are half-points, indents and margins are twips.
type docxWriter struct {
	style Style
	body  strings.Builder
}

const (
	docxTitleHalfPt   = 36
	docxHeadingHalfPt = 28
	docxContactHalfPt = 24
	docxBodyHalfPt    = 22
	docxIndentTwips   = 360
	docxMarginTwips   = 1440
)

func newDOCXWriter(style Style) *docxWriter {
	return &docxWriter{style: style}
}

type docxPara struct {
	bold         bool
	size         int
	color        string
	center       bool
	indent       int
	spaceBefore  int
	spaceAfter   int
	bottomBorder bool
}

func (w *docxWriter) Title(s string) {
	w.para(docxPara{bold: true, size: docxTitleHalfPt, center: true, spaceAfter: 240}, s)
}

func (w *docxWriter) ContactLine(s string) {
	w.para(docxPara{size: docxContactHalfPt, center: true, spaceAfter: 60}, s)
}

func (w *docxWriter) SectionHeading(s string) {
	w.para(docxPara{
		bold:        true,
		size:        docxHeadingHalfPt,
		color:       w.style.HeadingColor.Hex(),
		spaceBefore: 240,
		spaceAfter:  40,
	}, s)
}

func (w *docxWriter) Rule() {
	w.para(docxPara{bottomBorder: true, spaceAfter: 120}, "")
}

func (w *docxWriter) EntryHeading(s string) {
	w.para(docxPara{bold: true, size: docxBodyHalfPt, spaceBefore: 80}, s)
}

func (w *docxWriter) Indented(s string) {
	w.para(docxPara{size: docxBodyHalfPt, indent: docxIndentTwips}, s)
}

func (w *docxWriter) Bullet(s string) {
	w.para(docxPara{size: docxBodyHalfPt, indent: docxIndentTwips, spaceAfter: 20}, "• "+s)
}

func (w *docxWriter) Line(s string) {
	w.para(docxPara{size: docxBodyHalfPt, spaceAfter: 60}, s)
}

// para appends one paragraph. Child order inside pPr and rPr follows the
// WordprocessingML schema sequence.
func (w *docxWriter) para(p docxPara, text string) {
	b := &w.body
	b.WriteString("<w:p><w:pPr>")
	if p.bottomBorder {
		fmt.Fprintf(b, `<w:pBdr><w:bottom w:val="single" w:sz="8" w:space="1" w:color="%s"/></w:pBdr>`,
			w.style.HeadingColor.Hex())
	}
	if p.spaceBefore > 0 || p.spaceAfter > 0 {
		fmt.Fprintf(b, `<w:spacing w:before="%d" w:after="%d"/>`, p.spaceBefore, p.spaceAfter)
	}
	if p.indent > 0 {
		fmt.Fprintf(b, `<w:ind w:left="%d"/>`, p.indent)
	}
	if p.center {
		b.WriteString(`<w:jc w:val="center"/>`)
	}
	b.WriteString("</w:pPr>")
	if text != "" {
		b.WriteString("<w:r><w:rPr>")
		if p.bold {
			b.WriteString("<w:b/>")
		}
		if p.color != "" {
			fmt.Fprintf(b, `<w:color w:val="%s"/>`, p.color)
		}
		if p.size > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, p.size, p.size)
		}
		b.WriteString("</w:rPr>")
		fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, xmlEscape(text))
		b.WriteString("</w:r>")
	}
	b.WriteString("</w:p>")
}

func (w *docxWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", w.documentXML()},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := f.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *docxWriter) documentXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	b.WriteString(w.body.String())
	fmt.Fprintf(&b,
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`,
		docxMarginTwips, docxMarginTwips, docxMarginTwips, docxMarginTwips)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return xmlEscaper.Replace(s) }
