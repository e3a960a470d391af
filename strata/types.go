// Package strata defines the interval row type and sentinel errors for
// the source-table model.
package strata

import "errors"

// Sentinel errors for source-table operations.
var (
	// ErrTableHeader indicates the interval CSV is missing a required column.
	ErrTableHeader = errors.New("strata: interval CSV missing required column")
)

// Interval is one depth interval of one wellbore: the stratigraphic
// unit between TopDepth and BaseDepth, with an optional
// depositional-environment label.
//
// Environment == "" models the absent / non-string source field; the
// log-document builder encodes it as the null sentinel rather than
// resolving it.
type Interval struct {
	Wellbore    string
	TopDepth    float64
	BaseDepth   float64
	Unit        string
	Environment string
}
