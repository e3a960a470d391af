package strata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Column names of the interval CSV asset, matched verbatim.
const (
	colWellbore    = "unique_wellbore_identifier"
	colTopDepth    = "Depth_top"
	colBaseDepth   = "Depth_base"
	colUnit        = "Lithostrat_unit"
	colEnvironment = "Depositional Environment"
)

// ReadTableCSV parses the per-well depth-interval table from its CSV
// form. Rows come back in file order; the file is expected to be
// pre-sorted by depth within each wellbore.
//
// The Depositional Environment column may be absent entirely, or empty
// per row; both map to Interval.Environment == "".
func ReadTableCSV(r io.Reader) ([]Interval, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("strata: read interval header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range []string{colWellbore, colTopDepth, colBaseDepth, colUnit} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrTableHeader, name)
		}
	}
	envIdx, hasEnv := idx[colEnvironment]

	var rows []Interval
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("strata: interval line %d: %w", line, err)
		}

		top, err := strconv.ParseFloat(rec[idx[colTopDepth]], 64)
		if err != nil {
			return nil, fmt.Errorf("strata: interval line %d: bad top depth: %w", line, err)
		}
		base, err := strconv.ParseFloat(rec[idx[colBaseDepth]], 64)
		if err != nil {
			return nil, fmt.Errorf("strata: interval line %d: bad base depth: %w", line, err)
		}

		row := Interval{
			Wellbore:  rec[idx[colWellbore]],
			TopDepth:  top,
			BaseDepth: base,
			Unit:      rec[idx[colUnit]],
		}
		if hasEnv {
			row.Environment = rec[envIdx]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
