package logdoc

import (
	"fmt"

	"github.com/strataviz/wellog/strata"
)

// BuildWellPicks derives the well-pick document of one well: one
// marker per interval row, [top depth, unit label], with the label
// carried raw. Picks are rendered as named horizon markers, so no code
// resolution happens here and unknown labels cannot fail the build.
//
// Errors:
//   - ErrNoIntervals — no rows for well.
func BuildWellPicks(rows []strata.Interval, well string) (*WellPickDocument, error) {
	sub := filterWell(rows, well)
	if len(sub) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoIntervals, well)
	}

	data := make([][]any, 0, len(sub))
	for i := range sub {
		data = append(data, []any{sub[i].TopDepth, sub[i].Unit})
	}

	return &WellPickDocument{
		Header: PickHeader{Name: well, Well: well},
		Curves: PickCurves(),
		Data:   data,
	}, nil
}

// PickCurves returns the fixed curve vocabulary of a pick document:
// measured depth plus the raw horizon label.
func PickCurves() []CurveDescriptor {
	return []CurveDescriptor{
		{Name: CurveMD, Quantity: "m", Unit: "m", ValueType: Float, Dimensions: 1},
		{Name: CurveHorizon, ValueType: String, Dimensions: 1},
	}
}
