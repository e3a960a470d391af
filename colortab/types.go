// Package colortab defines the color-table types and sentinel errors.
package colortab

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrUnknownTable indicates the catalog has no table with that name.
	ErrUnknownTable = errors.New("colortab: color table not in catalog")
	// ErrDuplicateTable indicates two catalog tables share a name.
	ErrDuplicateTable = errors.New("colortab: duplicate color table name")
)

// Discrete is a bool that additionally accepts the string spellings
// "true"/"false" found in the historical JSON assets.
type Discrete bool

// UnmarshalJSON accepts true, false, "true" and "false".
func (d *Discrete) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*d = Discrete(b)

		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("colortab: discrete flag: %w", err)
	}
	switch s {
	case "true":
		*d = true
	case "false":
		*d = false
	default:
		return fmt.Errorf("colortab: discrete flag: unrecognized value %q", s)
	}

	return nil
}

// MarshalJSON renders the canonical bool spelling.
func (d Discrete) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(d))
}

// ColorTable is one named color ramp or discrete lookup. Colors rows
// are [stop_or_code, R, G, B]: a fractional stop for continuous ramps,
// an integer code for discrete tables.
type ColorTable struct {
	Name        string       `json:"name"`
	Discrete    Discrete     `json:"discrete"`
	Description string       `json:"description,omitempty"`
	Colors      [][4]float64 `json:"colors"`
	ColorNaN    []float64    `json:"colorNaN,omitempty"`
	ColorBelow  []float64    `json:"colorBelow,omitempty"`
	ColorAbove  []float64    `json:"colorAbove,omitempty"`
}
