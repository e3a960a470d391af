// Package syncview synchronizes several wells into the parallel
// payloads a side-by-side log viewer consumes.
//
// 🚀 What is syncview?
//
//	The selection-driven top of the pipeline. Given an ordered well
//	selection it produces four sequences, index-aligned with the
//	selection:
//	  • documents     — one LogDocument per well
//	  • templates     — one display template per well (a fixed track
//	    configuration cloned per document)
//	  • spacers       — inter-track visual gap widths
//	  • wellDistances — relative well distances
//
// ✨ Policies made explicit (and testable):
//   - the stratigraphic code table is derived once per selection from
//     the selection-filtered rows, so codes agree across the synced
//     documents and cost scales with the selection, not the dataset
//   - batch failure: per-well isolation by default — a failing well is
//     omitted from all four sequences and reported in a BatchError
//     next to the surviving documents; Options.FailFast aborts instead
//   - spacers and wellDistances are independently configurable
//     quantities whose defaults coincide, preserving the historical
//     duplication without hard-wiring it
//   - empty selection yields four empty sequences, not an error
//
// Sync is pure and synchronous: no cache, no shared mutable state,
// every call recomputes from its immutable inputs. For hosts that
// dispatch selection events concurrently, Viewer adds per-event
// isolation with a last-event-wins guarantee — a superseded event's
// result is withheld (ErrSuperseded) so callers can never interleave
// outputs of different events.
package syncview
