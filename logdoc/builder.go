package logdoc

import (
	"fmt"

	"github.com/strataviz/wellog/depenv"
	"github.com/strataviz/wellog/strata"
)

// Build constructs the LogDocument of one well.
//
// Description:
//
//	Build is a pure function of (rows, std, codes, well):
//	 1. Filter rows to the requested well (source order preserved).
//	 2. Header: startIndex = min top depth, endIndex = max base depth,
//	    step = nil (irregular sampling).
//	 3. Per row emit [top depth, env code | nil, unit code]. An empty
//	    environment field is the null sentinel, not an error; a
//	    non-empty field that the standard cannot resolve fails the
//	    whole document.
//	 4. Discrete metadata: the unit code table and the environment
//	    standard, rendered as one block per curve. The curve names are
//	    distinct so the union has no collisions.
//
// The unit code table is supplied by the caller (derived once per
// selection, shared across synced wells) so that codes agree between
// side-by-side documents.
//
// Errors:
//   - ErrNoIntervals              — no rows for well.
//   - depenv.ErrUnknownEnvironment — unresolvable environment label,
//     wrapped with well and depth context.
//   - ErrUnknownUnit              — codes was derived from rows that do
//     not cover this well.
func Build(rows []strata.Interval, std *depenv.Standard, codes strata.UnitCodes, well string) (*LogDocument, error) {
	sub := filterWell(rows, well)
	if len(sub) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoIntervals, well)
	}

	start, end := depthBounds(sub)
	data := make([][]any, 0, len(sub))
	for i := range sub {
		row := &sub[i]

		var env any // null sentinel unless the source field is present
		if row.Environment != "" {
			code, err := std.ResolveCode(row.Environment)
			if err != nil {
				return nil, fmt.Errorf("logdoc: well %q interval at %v: %w", well, row.TopDepth, err)
			}
			env = code
		}

		unit, ok := codes.Code(row.Unit)
		if !ok {
			return nil, fmt.Errorf("%w: %q (well %q)", ErrUnknownUnit, row.Unit, well)
		}

		data = append(data, []any{row.TopDepth, env, unit})
	}

	return &LogDocument{
		Header: Header{
			Name:       HeaderName,
			Well:       well,
			StartIndex: start,
			EndIndex:   end,
			Step:       nil,
		},
		Curves:           LogCurves(),
		Data:             data,
		MetadataDiscrete: mergeMetadata(UnitMetadata(codes), EnvironmentMetadata(std)),
	}, nil
}

// LogCurves returns the fixed curve vocabulary of a blocked
// stratigraphy log: depth plus the two discrete-coded channels.
func LogCurves() []CurveDescriptor {
	return []CurveDescriptor{
		{Name: CurveMD, Description: "continuous", Quantity: "m", Unit: "m", ValueType: Float, Dimensions: 1},
		{Name: CurveEnvironment, Description: "discrete", Quantity: "DISC", Unit: "DISC", ValueType: Integer, Dimensions: 1},
		{Name: CurveUnit, Description: "discrete", Quantity: "DISC", Unit: "DISC", ValueType: Integer, Dimensions: 1},
	}
}

// discreteAttributes is the attribute vocabulary of every discrete
// block: a color and a stable integer code per label.
func discreteAttributes() []string { return []string{"color", "code"} }

// unitColor is the display color of stratigraphic units in the log
// metadata. Units are painted by the template's color table at render
// time; the metadata color is a flat placeholder.
var unitColor = depenv.Color{0, 0, 0, 255}

// UnitMetadata renders the unit code table as the Lithostrat_unit
// discrete block.
func UnitMetadata(codes strata.UnitCodes) DiscreteBlock {
	objects := make(map[string]DiscreteEntry, codes.Len())
	for i, label := range codes.Labels() {
		objects[label] = DiscreteEntry{Color: unitColor, Code: i}
	}

	return DiscreteBlock{Attributes: discreteAttributes(), Objects: objects}
}

// EnvironmentMetadata renders the whole reference standard as the
// DepositionalEnvironment discrete block, colors and codes verbatim.
func EnvironmentMetadata(std *depenv.Standard) DiscreteBlock {
	entries := std.Entries()
	objects := make(map[string]DiscreteEntry, len(entries))
	for i := range entries {
		objects[entries[i].Label] = DiscreteEntry{Color: entries[i].Color, Code: entries[i].Code}
	}

	return DiscreteBlock{Attributes: discreteAttributes(), Objects: objects}
}

// mergeMetadata unions the per-curve blocks. Curve names are distinct
// by construction, so later blocks never overwrite earlier ones.
func mergeMetadata(unit, env DiscreteBlock) DiscreteMetadata {
	return DiscreteMetadata{
		CurveUnit:        unit,
		CurveEnvironment: env,
	}
}

// filterWell selects the rows of one wellbore, preserving source order.
func filterWell(rows []strata.Interval, well string) []strata.Interval {
	var sub []strata.Interval
	for i := range rows {
		if rows[i].Wellbore == well {
			sub = append(sub, rows[i])
		}
	}

	return sub
}

// depthBounds scans for the minimum top depth and maximum base depth.
// Rows are normally pre-sorted, but the header bounds do not rely on it.
func depthBounds(rows []strata.Interval) (start, end float64) {
	start, end = rows[0].TopDepth, rows[0].BaseDepth
	for i := 1; i < len(rows); i++ {
		if rows[i].TopDepth < start {
			start = rows[i].TopDepth
		}
		if rows[i].BaseDepth > end {
			end = rows[i].BaseDepth
		}
	}

	return start, end
}
