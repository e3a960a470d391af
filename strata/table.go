package strata

// Table is an immutable, read-only view over the interval rows loaded
// for the session. Rows are assumed pre-sorted by depth within each
// wellbore; Table never sorts and filtering preserves source order.
type Table struct {
	rows []Interval
}

// NewTable builds a Table from rows. The slice is copied; later
// mutation of rows does not affect the Table.
func NewTable(rows []Interval) *Table {
	cp := make([]Interval, len(rows))
	copy(cp, rows)

	return &Table{rows: cp}
}

// Len reports the number of interval rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of all interval rows in source order.
func (t *Table) Rows() []Interval {
	cp := make([]Interval, len(t.rows))
	copy(cp, t.rows)

	return cp
}

// Wells lists the distinct wellbore identifiers in first-encountered
// order. The order is part of the contract: it drives default
// selections in the viewer.
func (t *Table) Wells() []string {
	seen := make(map[string]struct{}, 16)
	wells := make([]string, 0, 16)
	for i := range t.rows {
		id := t.rows[i].Wellbore
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		wells = append(wells, id)
	}

	return wells
}

// ForWell returns the rows of one wellbore, in source order.
// A well with no rows yields an empty (nil) slice, not an error;
// emptiness is classified by the document builders.
func (t *Table) ForWell(well string) []Interval {
	var rows []Interval
	for i := range t.rows {
		if t.rows[i].Wellbore == well {
			rows = append(rows, t.rows[i])
		}
	}

	return rows
}

// ForWells returns the union of rows for the selected wells, grouped in
// selection order (all rows of wells[0], then wells[1], ...). Rows of a
// well keep their source order. Unknown wells contribute nothing.
func (t *Table) ForWells(wells []string) []Interval {
	var rows []Interval
	for _, w := range wells {
		rows = append(rows, t.ForWell(w)...)
	}

	return rows
}

// UnitCodes maps distinct stratigraphic-unit labels to small integer
// codes assigned in first-encountered order, starting at 0.
//
// The mapping is a pure function of the set AND order of distinct
// labels in the rows it was derived from: deterministic across
// re-derivations from identical input, unstable under any change to
// row order or content. Session-scoped, not durable.
type UnitCodes struct {
	labels []string
	codes  map[string]int
}

// DeriveUnitCodes enumerates the distinct Unit labels of rows in
// first-encountered order. Derive from selection-filtered rows, not
// the whole table, so cost scales with the active selection.
func DeriveUnitCodes(rows []Interval) UnitCodes {
	uc := UnitCodes{codes: make(map[string]int, 16)}
	for i := range rows {
		label := rows[i].Unit
		if _, ok := uc.codes[label]; ok {
			continue
		}
		uc.codes[label] = len(uc.labels)
		uc.labels = append(uc.labels, label)
	}

	return uc
}

// Code returns the code assigned to label, and whether label is known.
func (u UnitCodes) Code(label string) (int, bool) {
	c, ok := u.codes[label]

	return c, ok
}

// Labels returns the distinct labels in code order (code i at index i).
func (u UnitCodes) Labels() []string {
	cp := make([]string, len(u.labels))
	copy(cp, u.labels)

	return cp
}

// Len reports the number of distinct labels.
func (u UnitCodes) Len() int { return len(u.labels) }
