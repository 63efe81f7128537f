package models

import (
	"encoding/json"
	"strconv"
)

// Ordinal is a 1-based part or page number that may be absent from a hit.
// It marshals as the integer when known and as the localized placeholder
// string otherwise, so API consumers never handle null.
type Ordinal struct {
	N     int
	Known bool
}

// KnownOrdinal wraps an integer that is present in the index
func KnownOrdinal(n int) Ordinal {
	return Ordinal{N: n, Known: true}
}

// MarshalJSON renders the number, or the placeholder when unknown
func (o Ordinal) MarshalJSON() ([]byte, error) {
	if !o.Known {
		return json.Marshal(PlaceholderUnavailable)
	}
	return json.Marshal(o.N)
}

// UnmarshalJSON accepts an integer, a numeric string, or anything else
// (including null), the latter normalizing to an unknown ordinal.
func (o *Ordinal) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*o = Ordinal{N: n, Known: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			*o = Ordinal{N: n, Known: true}
			return nil
		}
	}
	*o = Ordinal{}
	return nil
}

// String renders the number or the placeholder, for labels in formatted text
func (o Ordinal) String() string {
	if !o.Known {
		return PlaceholderUnavailable
	}
	return strconv.Itoa(o.N)
}
