package model

import (
	"bytes"
	"encoding/json"
)

// BulletList is an ordered sequence of bullet strings. Older completion
// payloads carry description fields as a single free-text string; newer
// ones carry an array of bullets. Decoding accepts both and always yields
// a sequence, so renderers never see a bare string.
type BulletList []string

func (b *BulletList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BulletList{s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*b = BulletList(items)
	return nil
}
