// Package usecase orchestrates the resume pipeline: extract text from an
// upload, obtain a completion, sanitize it into the canonical document,
// and render downloadable output.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"resume-composer/internal/model"
	"resume-composer/internal/render"
	"resume-composer/internal/sanitize"
	"resume-composer/pkg/ai"
	"resume-composer/pkg/extract"
	"resume-composer/pkg/infrastructure"
)

// ErrCompletionUnavailable is returned by operations that need the
// completion service when no client was configured. The HTTP layer maps
// it to 503.
var ErrCompletionUnavailable = errors.New("completion service not configured")

// ErrUnknownSection rejects optimization requests naming a section the
// document model does not have.
var ErrUnknownSection = errors.New("unknown resume section")

// UploadError marks a failure caused by the uploaded file itself. The
// HTTP layer reports it as a client error rather than a server fault.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

var optimizableSections = map[string]struct{}{
	"summary":              {},
	"skills":               {},
	"experience":           {},
	"education":            {},
	"projects":             {},
	"publications":         {},
	"certifications":       {},
	"volunteer_experience": {},
	"awards":               {},
	"languages":            {},
	"references":           {},
}

// Processor wires the pipeline stages together. The ai client is a
// capability: nil means completion-backed operations fail with
// ErrCompletionUnavailable while extraction and rendering keep working.
type Processor struct {
	client *ai.Client
	engine *render.Engine
	log    *infrastructure.Logger
}

func NewProcessor(client *ai.Client, engine *render.Engine, log *infrastructure.Logger) *Processor {
	if log == nil {
		log = infrastructure.NewNopLogger()
	}
	return &Processor{client: client, engine: engine, log: log}
}

// CompletionAvailable reports whether parse/analyze/optimize can run.
func (p *Processor) CompletionAvailable() bool { return p.client != nil }

// ExtractText pulls plain text out of an uploaded file.
func (p *Processor) ExtractText(filename string, data []byte) (string, error) {
	return extract.Extract(filename, data)
}

// ParseResume runs the full ingest pipeline on an uploaded file and
// returns the sanitized document with defaults applied.
func (p *Processor) ParseResume(ctx context.Context, filename string, data []byte) (*model.ResumeDocument, error) {
	if p.client == nil {
		return nil, ErrCompletionUnavailable
	}
	text, err := extract.Extract(filename, data)
	if err != nil {
		return nil, &UploadError{Err: fmt.Errorf("extract %s: %w", filename, err)}
	}

	raw, err := p.client.ParseResume(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}

	doc, err := sanitize.Resume(raw)
	if err != nil {
		return nil, err
	}
	p.log.Infow("parsed resume",
		"filename", filename,
		"experience_entries", len(doc.Experience),
		"project_entries", len(doc.Projects),
	)
	return doc, nil
}

// Render turns a document into bytes plus the download filename.
func (p *Processor) Render(doc *model.ResumeDocument, format render.Format) ([]byte, string, error) {
	out, err := p.engine.Render(doc, format)
	if err != nil {
		return nil, "", err
	}
	name := ""
	if doc != nil {
		name = doc.Name
	}
	return out, render.OutputFilename(name, format), nil
}

// AnalyzeATS scores a document against a job description.
func (p *Processor) AnalyzeATS(ctx context.Context, doc *model.ResumeDocument, jobDescription string) (*model.ATSReport, error) {
	if p.client == nil {
		return nil, ErrCompletionUnavailable
	}
	raw, err := p.client.AnalyzeResume(ctx, doc, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("analysis completion: %w", err)
	}
	report, err := sanitize.Analysis(raw)
	if err != nil {
		return nil, err
	}
	p.log.Infow("ats analysis complete",
		"overall_score", report.Score.OverallScore,
		"matched_keywords", len(report.MatchedKeywords),
	)
	return report, nil
}

// OptimizeSection rewrites one named section of the document.
func (p *Processor) OptimizeSection(ctx context.Context, in ai.OptimizeInput) (*model.SectionOptimization, error) {
	if p.client == nil {
		return nil, ErrCompletionUnavailable
	}
	if _, ok := optimizableSections[in.Section]; !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSection, in.Section)
	}
	raw, err := p.client.OptimizeSection(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("optimize completion: %w", err)
	}
	opt, err := sanitize.Optimization(raw)
	if err != nil {
		return nil, err
	}
	p.log.Infow("section optimized", "section", in.Section, "changes", len(opt.ChangesMade))
	return opt, nil
}
