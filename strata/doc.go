// Package strata models the per-well, per-depth-interval source table
// (stratigraphy + depositional environment) and derives the
// session-scoped stratigraphic-unit code table from it.
//
// 🚀 What is strata?
//
//	The relational side of the well-log pipeline:
//	  • Interval — one depth interval of one wellbore
//	  • Table    — the immutable, pre-sorted interval set with
//	    well-oriented filtering
//	  • UnitCodes — distinct stratigraphic-unit labels enumerated in
//	    first-encountered order, 0..n-1
//
// ✨ Guarantees and caveats:
//   - Table never reorders rows: depth ordering is the loader's
//     responsibility and filtering preserves source order
//   - UnitCodes is deterministic for a fixed row set in a fixed order —
//     re-deriving from the same rows always yields the same mapping
//   - UnitCodes is session-scoped, NOT durable: if the underlying rows
//     change or reorder, the codes change with them. Callers that need
//     cross-session stability must persist the mapping themselves.
//
// ⚙️ Usage:
//
//	import "github.com/strataviz/wellog/strata"
//
//	table := strata.NewTable(rows)
//	subset := table.ForWells([]string{"A-1", "B-2"})
//	codes := strata.DeriveUnitCodes(subset) // filter first: cost scales
//	                                        // with the active selection
package strata
