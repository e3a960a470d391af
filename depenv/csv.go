package depenv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Column names of the reference-table CSV asset. The asset is
// externally curated; the loader matches headers verbatim.
const (
	colCode  = "SMDA code"
	colLabel = "DEPOSITIONAL ENVIRONMENT"
	colR     = "R"
	colG     = "G"
	colB     = "B"
)

// ErrStandardHeader indicates the CSV header is missing a required column.
var ErrStandardHeader = errors.New("depenv: standard CSV missing required column")

// alpha used for every standard color; the source table carries RGB only.
const opaqueAlpha = 255

// ReadStandardCSV parses the depositional-environment color standard
// from its CSV form (columns: SMDA code, DEPOSITIONAL ENVIRONMENT,
// R, G, B) and returns the entries in file order.
func ReadStandardCSV(r io.Reader) ([]ReferenceEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("depenv: read standard header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range []string{colCode, colLabel, colR, colG, colB} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrStandardHeader, name)
		}
	}

	var entries []ReferenceEntry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("depenv: standard line %d: %w", line, err)
		}

		code, err := strconv.Atoi(rec[idx[colCode]])
		if err != nil {
			return nil, fmt.Errorf("depenv: standard line %d: bad code: %w", line, err)
		}
		var rgb [3]int
		for i, col := range []string{colR, colG, colB} {
			v, err := strconv.Atoi(rec[idx[col]])
			if err != nil {
				return nil, fmt.Errorf("depenv: standard line %d: bad %s channel: %w", line, col, err)
			}
			rgb[i] = v
		}

		entries = append(entries, ReferenceEntry{
			Label: rec[idx[colLabel]],
			Code:  code,
			Color: Color{rgb[0], rgb[1], rgb[2], opaqueAlpha},
		})
	}

	return entries, nil
}
