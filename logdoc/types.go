// Package logdoc defines the well-log document types and their exact
// JSON wire shape.
package logdoc

import (
	"encoding/json"
	"errors"

	"github.com/strataviz/wellog/depenv"
)

// Sentinel errors for document construction.
var (
	// ErrNoIntervals indicates the requested well has no interval rows.
	ErrNoIntervals = errors.New("logdoc: no intervals for well")
	// ErrUnknownUnit indicates a row's unit label is absent from the
	// supplied code table (the table was derived from different rows).
	ErrUnknownUnit = errors.New("logdoc: stratigraphic unit not in code table")
)

// Curve names of the log and pick documents. Wire contract.
const (
	CurveMD          = "MD"
	CurveEnvironment = "DepositionalEnvironment"
	CurveUnit        = "Lithostrat_unit"
	CurveHorizon     = "HORIZON"
)

// HeaderName is the fixed log name of blocked stratigraphy documents.
const HeaderName = "BLOCKING"

// ValueType tags a curve's element type on the wire.
type ValueType string

const (
	// Float marks continuous numeric curves (depth).
	Float ValueType = "float"
	// Integer marks discrete-coded curves.
	Integer ValueType = "integer"
	// String marks raw-label curves (well-pick horizons).
	String ValueType = "string"
)

// CurveDescriptor describes one named, typed channel of per-depth data.
type CurveDescriptor struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    string    `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	ValueType   ValueType `json:"valueType"`
	Dimensions  int       `json:"dimensions"`
}

// Header carries the per-well framing of a LogDocument. StartIndex and
// EndIndex are the min top depth and max base depth of the well's rows;
// Step is nil because blocked intervals sample irregularly.
type Header struct {
	Name       string   `json:"name"`
	Well       string   `json:"well"`
	StartIndex float64  `json:"startIndex"`
	EndIndex   float64  `json:"endIndex"`
	Step       *float64 `json:"step"`
}

// DiscreteEntry is the (color, code) pair attached to one discrete
// label. It marshals as the two-element array [[R,G,B,A], code].
type DiscreteEntry struct {
	Color depenv.Color
	Code  int
}

// MarshalJSON renders the wire pair [[R,G,B,A], code].
func (e DiscreteEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Color, e.Code})
}

// UnmarshalJSON accepts the wire pair [[R,G,B,A], code].
func (e *DiscreteEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &e.Color); err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &e.Code)
}

// DiscreteBlock is the discrete metadata of one curve: the attribute
// vocabulary plus one entry per categorical label.
type DiscreteBlock struct {
	Attributes []string                 `json:"attributes"`
	Objects    map[string]DiscreteEntry `json:"objects"`
}

// DiscreteMetadata maps curve names to their discrete blocks.
type DiscreteMetadata map[string]DiscreteBlock

// LogDocument is the complete well-log document for one well. Data
// rows are [top depth, environment code or nil, unit code] in source
// (depth-ascending) order; nil is the null sentinel for an absent
// environment.
type LogDocument struct {
	Header           Header            `json:"header"`
	Curves           []CurveDescriptor `json:"curves"`
	Data             [][]any           `json:"data"`
	MetadataDiscrete DiscreteMetadata  `json:"metadata_discrete"`
}

// PickHeader frames a WellPickDocument; picks carry no depth range.
type PickHeader struct {
	Name string `json:"name"`
	Well string `json:"well"`
}

// WellPickDocument is the sparse marker document for one well: rows of
// [top depth, horizon label] with raw string labels, independent of any
// numeric coding.
type WellPickDocument struct {
	Header PickHeader        `json:"header"`
	Curves []CurveDescriptor `json:"curves"`
	Data   [][]any           `json:"data"`
}
