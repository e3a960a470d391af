// Package logdoc builds self-describing well-log documents from
// interval rows: a curve-indexed, depth-ordered data matrix plus the
// discrete metadata (label → color, code) the rendering surface needs
// to draw stacked categorical tracks.
//
// 🚀 What is logdoc?
//
//	The join point of the pipeline. For one well it combines:
//	  • the interval rows of that well (strata)
//	  • the depositional-environment standard (depenv)
//	  • the session's stratigraphic-unit code table (strata.UnitCodes)
//	into one LogDocument:
//	  • header   — name, well, depth range, step
//	  • curves   — MD, DepositionalEnvironment, Lithostrat_unit
//	  • data     — rows [top depth, env code | null, unit code]
//	  • metadata_discrete — per-curve {label: [[R,G,B,A], code]}
//	plus a sparser WellPickDocument of (depth, horizon label) markers
//	derived from the same rows.
//
// ✨ Invariants:
//   - data rows keep source order; rows are assumed pre-sorted by depth
//     and Build never sorts
//   - header startIndex/endIndex are the min top depth / max base depth
//   - every discrete value in data has a metadata entry for its curve;
//     the only exception is the null sentinel
//   - Build is a pure function of its inputs: no caching, no shared
//     state, nothing retained between calls
//
// Errors: an unresolvable environment label fails the whole document
// (no partial output); an empty row set for the requested well is
// ErrNoIntervals, a distinct condition from a lookup failure.
//
// The JSON field names of every type here are a wire contract consumed
// by the viewer; they must not drift.
package logdoc
