// Package colortab holds the named color-table catalog consumed by the
// rendering surface.
//
// 🚀 What is colortab?
//
//	Color tables are externally authored JSON assets: a name, a
//	discrete flag, and an ordered list of [stop_or_code, R, G, B]
//	rows, optionally with colorNaN / colorBelow / colorAbove.
//	The core never interprets or mutates them — documents and
//	templates reference a table by name only ("Stratigraphy") and the
//	viewer applies it at render time.
//
// ✨ Guarantees:
//   - Catalog is a read-only lookup; ParseCatalog copies nothing back
//     to the caller's buffer and Get hands out the stored value as-is
//   - the discrete flag tolerates both JSON bool and the string
//     "true"/"false" — the historical assets mix the two spellings
//
// DefaultCatalog ships the original inline tables so pick and template
// defaults resolve without an asset file on disk.
package colortab
