// Package syncview defines templates, options, results, and sentinel
// errors for multi-well synchronization.
package syncview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/strataviz/wellog/logdoc"
)

// Sentinel errors for synchronization.
var (
	// ErrNilTable indicates Sync was called without a source table.
	ErrNilTable = errors.New("syncview: source table must not be nil")
	// ErrNilStandard indicates Sync was called without a reference standard.
	ErrNilStandard = errors.New("syncview: environment standard must not be nil")
	// ErrSuperseded indicates a newer selection event started before
	// this one finished; the stale result is withheld.
	ErrSuperseded = errors.New("syncview: selection superseded by a newer event")
)

// DefaultSpacerWidth is the historical fixed inter-track gap. It is a
// placeholder, not derived from data.
const DefaultSpacerWidth = 200

// PlotTypeStacked renders a discrete-coded curve as stacked intervals.
const PlotTypeStacked = "stacked"

// Scale selects the primary index curve of a template.
type Scale struct {
	Primary string `json:"primary"`
}

// Plot is one curve rendered inside a track. ColorTable names a table
// from the catalog; empty means the viewer's default.
type Plot struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	ColorTable string `json:"colorTable,omitempty"`
}

// Track is one vertical lane of plots.
type Track struct {
	Plots []Plot `json:"plots"`
}

// Template is the visual track configuration applied to one document.
type Template struct {
	Name   string  `json:"name"`
	Scale  Scale   `json:"scale"`
	Tracks []Track `json:"tracks"`
}

// DefaultTemplate returns the standard two-track configuration:
// depositional environment stacked, stratigraphic units stacked and
// painted by the "Stratigraphy" color table.
func DefaultTemplate() *Template {
	return &Template{
		Name:  "Template",
		Scale: Scale{Primary: logdoc.CurveMD},
		Tracks: []Track{
			{Plots: []Plot{{Name: logdoc.CurveEnvironment, Type: PlotTypeStacked}}},
			{Plots: []Plot{{Name: logdoc.CurveUnit, Type: PlotTypeStacked, ColorTable: "Stratigraphy"}}},
		},
	}
}

// Clone deep-copies the template so per-well instances never share
// track slices.
func (t *Template) Clone() *Template {
	cp := &Template{Name: t.Name, Scale: t.Scale, Tracks: make([]Track, len(t.Tracks))}
	for i := range t.Tracks {
		plots := make([]Plot, len(t.Tracks[i].Plots))
		copy(plots, t.Tracks[i].Plots)
		cp.Tracks[i] = Track{Plots: plots}
	}

	return cp
}

// Options configures a synchronization run.
//
// Fields:
//   - SpacerWidth  — inter-track visual gap per well. 0 selects
//     DefaultSpacerWidth.
//   - WellDistance — relative well distance per well. 0 mirrors
//     SpacerWidth (the historical behavior emitted identical values
//     for both; callers that need a real geometric distance set this
//     independently).
//   - Template     — display template cloned per well. nil selects
//     DefaultTemplate.
//   - FailFast     — abort the whole batch on the first failing well
//     instead of isolating it.
type Options struct {
	SpacerWidth  int
	WellDistance int
	Template     *Template
	FailFast     bool
}

// DefaultOptions returns the historical policy: 200/200 layout values,
// default template, per-well failure isolation.
func DefaultOptions() Options {
	return Options{
		SpacerWidth:  DefaultSpacerWidth,
		WellDistance: DefaultSpacerWidth,
		Template:     DefaultTemplate(),
	}
}

// Result is the four-sequence payload of one selection event. All four
// sequences are index-aligned and ordered by the input selection; a
// well that failed to build appears in none of them.
type Result struct {
	Documents     []*logdoc.LogDocument `json:"welllogs"`
	Templates     []*Template           `json:"templates"`
	Spacers       []int                 `json:"spacers"`
	WellDistances []int                 `json:"wellDistances"`
}

// WellFailure records one well that could not be built.
type WellFailure struct {
	Well string
	Err  error
}

// BatchError aggregates per-well failures of one synchronization run.
// It is returned alongside the partial Result under the default
// isolation policy.
type BatchError struct {
	Failures []WellFailure
}

// Error lists the failing wells.
func (e *BatchError) Error() string {
	wells := make([]string, len(e.Failures))
	for i := range e.Failures {
		wells[i] = e.Failures[i].Well
	}

	return fmt.Sprintf("syncview: %d well(s) failed to build: %s",
		len(e.Failures), strings.Join(wells, ", "))
}

// Unwrap exposes the underlying per-well errors to errors.Is/As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i := range e.Failures {
		errs[i] = e.Failures[i].Err
	}

	return errs
}
