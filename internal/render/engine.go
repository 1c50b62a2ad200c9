// Package render turns a resume document into downloadable bytes. One
// engine owns every content decision (section order, conditional
// inclusion, entry composition); the format writers only know how to put
// text on a page. That split keeps the PDF and DOCX outputs structurally
// identical by construction.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"resume-composer/internal/model"
)

// Format selects an output writer.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// RenderError reports an impossible render: nil document, unknown format,
// or a writer that failed to finalize. Structurally valid documents never
// produce one.
type RenderError struct {
	Format Format
	Reason string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render %s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("render %s: %s", e.Format, e.Reason)
}

func (e *RenderError) Unwrap() error { return e.Err }

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Hex returns the uppercase RRGGBB form used in WordprocessingML.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Style carries the page geometry and typography the PDF writer needs.
// Units are points. The DOCX writer derives its own fixed sizes from the
// wire format's half-point units and shares only the heading color.
type Style struct {
	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	FontFamily   string
	TitleSize    float64
	HeadingSize  float64
	BodySize     float64
	HeadingColor RGB
}

// DefaultStyle matches the layout the service shipped with.
func DefaultStyle() Style {
	return Style{
		MarginLeft:   72,
		MarginTop:    72,
		MarginRight:  72,
		MarginBottom: 18,
		FontFamily:   "Helvetica",
		TitleSize:    24,
		HeadingSize:  14,
		BodySize:     11,
		HeadingColor: RGB{R: 44, G: 62, B: 80},
	}
}

// Writer is the emit surface the engine drives. Writers append in call
// order and surface failures once, from Bytes.
type Writer interface {
	Title(s string)
	ContactLine(s string)
	SectionHeading(s string)
	Rule()
	EntryHeading(s string)
	Indented(s string)
	Bullet(s string)
	Line(s string)
	Bytes() ([]byte, error)
}

// Engine renders documents. It is stateless between calls and safe for
// concurrent use; each Render builds a fresh writer.
type Engine struct {
	style Style
}

func NewEngine(style Style) *Engine {
	return &Engine{style: style}
}

// Render composes doc into the requested format. The document is read
// but never mutated, so one document may feed several Render calls.
func (e *Engine) Render(doc *model.ResumeDocument, format Format) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Format: format, Reason: "nil document"}
	}

	var w Writer
	switch format {
	case FormatPDF:
		w = newPDFWriter(e.style)
	case FormatDOCX:
		w = newDOCXWriter(e.style)
	default:
		return nil, &RenderError{Format: format, Reason: fmt.Sprintf("unknown format %q", string(format))}
	}

	e.compose(doc, w)

	out, err := w.Bytes()
	if err != nil {
		return nil, &RenderError{Format: format, Reason: "finalize output", Err: err}
	}
	return out, nil
}

// OutputFilename derives the download name for a rendered document:
// whitespace in the candidate's name becomes underscores, then a
// "_resume.{ext}" suffix. An empty name still yields a usable filename.
func OutputFilename(name string, format Format) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	return mapped + "_resume." + string(format)
}
