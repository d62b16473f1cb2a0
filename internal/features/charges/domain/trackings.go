package domain

import (
	"encoding/json"
	"strings"
)

// Trackings is an ordered list of carrier tracking codes.
// It decodes from either a JSON array or a single string.
type Trackings []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Trackings) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Trackings{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

// Clean trims every code and drops blanks, keeping order.
func (t Trackings) Clean() Trackings {
	out := make(Trackings, 0, len(t))
	for _, code := range t {
		if code = strings.TrimSpace(code); code != "" {
			out = append(out, code)
		}
	}
	return out
}
