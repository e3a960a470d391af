// Package wellog turns relational subsurface tables into
// self-describing well-log documents — the curve-indexed, depth-ordered
// payloads a log viewer renders side by side.
//
// 🚀 What is wellog?
//
//	A pure, deterministic construction pipeline from two curated
//	sources — a per-depth-interval stratigraphy table and the
//	depositional-environment color standard — to viewer-ready JSON:
//	  • depenv   — label ↔ code resolution against the color standard
//	  • strata   — the interval table and the session-scoped
//	    stratigraphic-unit code table
//	  • logdoc   — per-well log documents and well-pick markers
//	  • syncview — multi-well synchronization, templates, layout
//	  • colortab — the named color-table catalog, passed through by name
//	  • dataset  — one-shot loading (CSV, JSON, Postgres) and config
//
// ✨ Why wellog?
//
//   - Deterministic by contract — code assignment, ordering, and merge
//     policies are explicit and tested, not incidental
//   - Pure core — every document is a stateless derivation from
//     immutable inputs; nothing is cached or shared between events
//   - Exact wire shape — field names match the viewer contract down to
//     metadata_discrete and the [[R,G,B,A], code] pairs
//
// Quick sketch of one selection event:
//
//	selection ──▶ syncview.Sync ──▶ logdoc.Build (per well)
//	                                   │
//	                                   ├─ depenv.ResolveCode (per row)
//	                                   └─ strata.UnitCodes   (per selection)
//
// Dive into each package's doc.go for contracts, edge cases, and
// examples.
package wellog
