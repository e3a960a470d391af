package depenv

import (
	"fmt"
	"strings"
)

// Standard is an immutable view over the depositional-environment
// reference table.
//
// Description:
//
//	The standard is loaded once per session and treated as read-only:
//	NewStandard copies the entry slice and nothing mutates it afterwards.
//	All lookups run over the entries in table order, so the ambiguous
//	substring tie-break ("first match wins") is stable across calls.
//
// Errors:
//   - ErrEmptyStandard       — NewStandard with zero entries.
//   - ErrUnknownEnvironment  — ResolveCode with no matching entry.
//   - ErrUnknownCode         — ResolveLabel with an unlisted code.
type Standard struct {
	entries []ReferenceEntry
	match   MatchMode
}

// NewStandard builds a Standard from the reference entries.
// The slice is copied; later mutation of entries does not affect the
// Standard. A nil opts selects DefaultOptions.
func NewStandard(entries []ReferenceEntry, opts *Options) (*Standard, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyStandard
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	cp := make([]ReferenceEntry, len(entries))
	copy(cp, entries)

	return &Standard{entries: cp, match: o.Match}, nil
}

// ResolveCode resolves a depositional-environment label to its standard
// code using the configured MatchMode.
//
// Under MatchSubstringFold the comparison is case-insensitive and
// containment counts in either direction: the query "marine deposits"
// resolves against the entry "Marine", and the query "marine" resolves
// against the entry "Shallow marine". When several entries match, the
// first one in table order is returned.
func (s *Standard) ResolveCode(label string) (int, error) {
	for i := range s.entries {
		if matchLabel(label, s.entries[i].Label, s.match) {
			return s.entries[i].Code, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEnvironment, label)
}

// ResolveLabel resolves a standard code back to its environment label.
// The match is exact; codes are not fuzzy.
func (s *Standard) ResolveLabel(code int) (string, error) {
	for i := range s.entries {
		if s.entries[i].Code == code {
			return s.entries[i].Label, nil
		}
	}

	return "", fmt.Errorf("%w: %d", ErrUnknownCode, code)
}

// Entries returns a copy of the reference entries in table order.
func (s *Standard) Entries() []ReferenceEntry {
	cp := make([]ReferenceEntry, len(s.entries))
	copy(cp, s.entries)

	return cp
}

// Len reports the number of reference entries.
func (s *Standard) Len() int { return len(s.entries) }

// matchLabel applies one MatchMode to a (query, entry) label pair.
func matchLabel(query, entry string, mode MatchMode) bool {
	switch mode {
	case MatchExact:
		return query == entry
	case MatchExactFold:
		return strings.EqualFold(query, entry)
	default: // MatchSubstringFold
		q, e := strings.ToLower(query), strings.ToLower(entry)

		return strings.Contains(q, e) || strings.Contains(e, q)
	}
}
