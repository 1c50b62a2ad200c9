// Package sanitize converts raw completion-service output into validated,
// fully-defaulted model values. Missing optional fields never error; they
// degrade to empty values. Undecodable payloads fail with
// MalformedPayloadError and are never retried here.
package sanitize

import (
	"encoding/json"
	"strings"

	"resume-composer/internal/model"
)

// StripFences removes a leading ```json or ``` marker and a trailing ```
// marker, the exact wrapping emitted by the upstream generator.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Resume turns a raw completion payload into a ResumeDocument. Both record
// revisions are accepted: free-text descriptions become one-element bullet
// sequences, bullet arrays pass through unchanged.
func Resume(raw string) (*model.ResumeDocument, error) {
	clean := StripFences(raw)
	if err := model.ValidateBytes([]byte(clean)); err != nil {
		return nil, &MalformedPayloadError{Excerpt: truncateRunes(clean, excerptLimit), Err: err}
	}
	var doc model.ResumeDocument
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, &MalformedPayloadError{Excerpt: truncateRunes(clean, excerptLimit), Err: err}
	}
	doc.ApplyDefaults()
	return &doc, nil
}

// Analysis decodes an ATS analysis payload using the same fence-stripping
// convention as Resume.
func Analysis(raw string) (*model.ATSReport, error) {
	clean := StripFences(raw)
	var report model.ATSReport
	if err := json.Unmarshal([]byte(clean), &report); err != nil {
		return nil, &MalformedPayloadError{Excerpt: truncateRunes(clean, excerptLimit), Err: err}
	}
	report.ApplyDefaults()
	return &report, nil
}

// Optimization decodes a section-optimization payload.
func Optimization(raw string) (*model.SectionOptimization, error) {
	clean := StripFences(raw)
	var opt model.SectionOptimization
	if err := json.Unmarshal([]byte(clean), &opt); err != nil {
		return nil, &MalformedPayloadError{Excerpt: truncateRunes(clean, excerptLimit), Err: err}
	}
	opt.ApplyDefaults()
	return &opt, nil
}
