package sanitize

import "fmt"

// excerptLimit caps how much of the offending payload travels with the
// error. Completion outputs can run to many kilobytes.
const excerptLimit = 200

// MalformedPayloadError reports that a completion payload was not decodable
// structured data after fence stripping. It carries the decode error and an
// excerpt of the raw text for diagnostics.
type MalformedPayloadError struct {
	Excerpt string
	Err     error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed completion payload: %v (raw: %s)", e.Err, e.Excerpt)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
