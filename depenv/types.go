// Package depenv defines the reference-table types, match strategies,
// and sentinel errors for depositional-environment code resolution.
package depenv

import "errors"

// Sentinel errors for standard lookups.
var (
	// ErrEmptyStandard indicates the reference table has no entries.
	ErrEmptyStandard = errors.New("depenv: reference table must have at least one entry")
	// ErrUnknownEnvironment indicates no reference entry matched the label.
	ErrUnknownEnvironment = errors.New("depenv: depositional environment not in standard")
	// ErrUnknownCode indicates no reference entry carries the code.
	ErrUnknownCode = errors.New("depenv: code not in standard")
)

// Color is an RGBA quadruple as carried by the reference table.
// It marshals to JSON as the array [R, G, B, A].
type Color [4]int

// ReferenceEntry is one row of the canonical depositional-environment
// standard. Codes and colors are externally authored; the library never
// invents or rewrites them.
type ReferenceEntry struct {
	Label string
	Code  int
	Color Color
}

// MatchMode selects how ResolveCode compares a query label against the
// reference entries' label field.
//
//   - MatchSubstringFold — case-insensitive substring containment.
//     This is the historical behavior: the query "marine deposits"
//     matches the entry "Marine". Ambiguity is possible; the first
//     entry in table order wins.
//   - MatchExactFold    — case-insensitive whole-label equality.
//   - MatchExact        — byte-exact whole-label equality.
type MatchMode int

const (
	// MatchSubstringFold matches case-insensitively on substring containment.
	MatchSubstringFold MatchMode = iota
	// MatchExactFold matches case-insensitively on the whole label.
	MatchExactFold
	// MatchExact matches the whole label byte for byte.
	MatchExact
)

// Options configures a Standard.
//
// Fields:
//   - Match — label matching strategy for ResolveCode.
//     Defaults to MatchSubstringFold (the historical substring policy).
type Options struct {
	Match MatchMode
}

// DefaultOptions returns Options with the historical matching policy:
// case-insensitive substring containment.
func DefaultOptions() Options {
	return Options{Match: MatchSubstringFold}
}
