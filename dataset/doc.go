// Package dataset loads the immutable session inputs — the
// depositional-environment standard, the interval table, and the color
// table catalog — and wires them into a ready-to-select viewer.
//
// 🚀 What is dataset?
//
//	The boundary layer of the library. Everything below it is pure
//	computation over immutable values; dataset is where files, env
//	vars, and databases are touched, exactly once per session:
//	  • Config      — YAML file + .env + WELLOG_* env overrides
//	  • Load        — the two CSV assets plus the optional
//	    color-tables JSON
//	  • LoadPostgres — the same two tables out of a Postgres schema
//
// ✨ Lifecycle contract:
//   - inputs are loaded once and never reloaded; the resulting
//     Dataset is immutable for the process lifetime
//   - loading is observable: row counts and durations go to the
//     provided zerolog logger
//   - the pure packages (depenv, strata, logdoc, syncview) stay free
//     of I/O and logging
//
// ⚙️ Usage:
//
//	cfg, err := dataset.LoadConfig("")        // defaults + env
//	log := cfg.Logger(os.Stderr)
//	ds, err := dataset.Load(cfg, log)
//	viewer, err := ds.Viewer(nil, log)
//	res, err := viewer.Select([]string{"A-1", "B-2"})
package dataset
