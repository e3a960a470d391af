// Package depenv resolves depositional-environment labels against a
// canonical color standard (the SMDA coding table).
//
// 🚀 What is depenv?
//
//	A read-only view over the externally authored reference table that
//	maps every depositional environment to a stable integer code and an
//	RGBA display color:
//	  • label → code lookup with a pluggable match strategy
//	  • code → label reverse lookup (exact)
//	  • the whole table rendered as discrete well-log metadata
//
// ✨ Key guarantees:
//   - the Standard is an explicit immutable value — no package-level
//     singleton, no ambient mutable state
//   - ambiguous matches resolve to the first entry in table order;
//     the tie-break is a documented, testable policy, not an accident
//   - codes and colors are never invented here: they come verbatim
//     from the loaded reference table
//
// ⚙️ Usage:
//
//	import "github.com/strataviz/wellog/depenv"
//
//	std, err := depenv.NewStandard(entries, nil) // default: substring, case-insensitive
//	code, err := std.ResolveCode("marine deposits")
//	label, err := std.ResolveLabel(7)
//
// Loading from the standard CSV asset (SMDA code, DEPOSITIONAL
// ENVIRONMENT, R, G, B) is covered by ReadStandardCSV.
package depenv
