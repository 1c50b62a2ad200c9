package render

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// pdfWriter emits onto a Letter page using the core fonts, so output is
// deterministic and needs no font files at runtime. Text passes through a
// cp1252 translator; the bullet glyph survives the trip.
type pdfWriter struct {
	doc   *fpdf.Fpdf
	style Style
	tr    func(string) string
}

const pdfIndent = 12.0

func newPDFWriter(style Style) *pdfWriter {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(style.MarginLeft, style.MarginTop, style.MarginRight)
	doc.SetAutoPageBreak(true, style.MarginBottom)
	// Uncompressed streams keep the content inspectable in tests.
	doc.SetCompression(false)
	doc.AddPage()
	return &pdfWriter{
		doc:   doc,
		style: style,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (w *pdfWriter) lead() float64 { return w.style.BodySize + 3 }

func (w *pdfWriter) Title(s string) {
	w.doc.SetFont(w.style.FontFamily, "B", w.style.TitleSize)
	w.doc.SetTextColor(0, 0, 0)
	w.doc.CellFormat(0, w.style.TitleSize+6, w.tr(s), "", 1, "C", false, 0, "")
	w.doc.Ln(4)
}

func (w *pdfWriter) ContactLine(s string) {
	w.doc.SetFont(w.style.FontFamily, "", w.style.BodySize)
	w.doc.SetTextColor(0, 0, 0)
	w.doc.CellFormat(0, w.lead(), w.tr(s), "", 1, "C", false, 0, "")
}

func (w *pdfWriter) SectionHeading(s string) {
	c := w.style.HeadingColor
	w.doc.Ln(12)
	w.doc.SetFont(w.style.FontFamily, "B", w.style.HeadingSize)
	w.doc.SetTextColor(c.R, c.G, c.B)
	w.doc.CellFormat(0, w.style.HeadingSize+4, w.tr(s), "", 1, "L", false, 0, "")
}

func (w *pdfWriter) Rule() {
	c := w.style.HeadingColor
	w.doc.SetDrawColor(c.R, c.G, c.B)
	w.doc.SetLineWidth(0.8)
	pageW, _ := w.doc.GetPageSize()
	y := w.doc.GetY()
	w.doc.Line(w.style.MarginLeft, y, pageW-w.style.MarginRight, y)
	w.doc.Ln(8)
}

func (w *pdfWriter) EntryHeading(s string) {
	w.doc.SetFont(w.style.FontFamily, "B", w.style.BodySize)
	w.doc.SetTextColor(0, 0, 0)
	w.doc.MultiCell(0, w.lead(), w.tr(s), "", "L", false)
}

func (w *pdfWriter) Indented(s string) {
	w.doc.SetFont(w.style.FontFamily, "", w.style.BodySize)
	w.doc.SetTextColor(0, 0, 0)
	w.doc.SetX(w.style.MarginLeft + pdfIndent)
	w.doc.MultiCell(0, w.lead(), w.tr(s), "", "L", false)
}

func (w *pdfWriter) Bullet(s string) {
	w.doc.SetFont(w.style.FontFamily, "", w.style.BodySize)
	w.doc.SetTextColor(0, 0, 0)
	w.doc.SetX(w.style.MarginLeft + pdfIndent)
	w.doc.MultiCell(0, w.lead(), w.tr("• "+s), "", "L", false)
}

func (w *pdfWriter) Line(s string) {
	w.doc.SetFont(w.style.FontFamily, "", w.style.BodySize)
	w.doc.SetTextColor(0, 0, 0)
	w.doc.MultiCell(0, w.lead(), w.tr(s), "", "L", false)
}

func (w *pdfWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
