package dataset

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/strataviz/wellog/colortab"
	"github.com/strataviz/wellog/depenv"
	"github.com/strataviz/wellog/strata"
	"github.com/strataviz/wellog/syncview"
)

// Dataset is the immutable input bundle of one session: loaded once,
// never reloaded, shared by every selection event.
type Dataset struct {
	Standard *depenv.Standard
	Table    *strata.Table
	Colors   *colortab.Catalog
}

// Load reads the session inputs from the configured file assets.
func Load(cfg Config, log zerolog.Logger) (*Dataset, error) {
	start := time.Now()

	std, err := loadStandard(cfg.StandardPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cfg.IntervalsPath)
	if err != nil {
		return nil, fmt.Errorf("dataset: open intervals: %w", err)
	}
	defer f.Close()
	rows, err := strata.ReadTableCSV(f)
	if err != nil {
		return nil, err
	}
	table := strata.NewTable(rows)

	colors, err := loadCatalog(cfg.ColorTablesPath)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("standard", cfg.StandardPath).
		Str("intervals", cfg.IntervalsPath).
		Int("entries", std.Len()).
		Int("rows", table.Len()).
		Int("wells", len(table.Wells())).
		Int("color_tables", colors.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded")

	return &Dataset{Standard: std, Table: table, Colors: colors}, nil
}

// Viewer wires the dataset into a selection session. A nil opts keeps
// the synchronizer defaults, with the configured spacer width applied.
func (d *Dataset) Viewer(opts *syncview.Options, log zerolog.Logger) (*syncview.Viewer, error) {
	return syncview.NewViewer(d.Table, d.Standard, d.Colors, opts, log)
}

// ViewerWithConfig builds a Viewer whose layout defaults come from cfg.
func (d *Dataset) ViewerWithConfig(cfg Config, log zerolog.Logger) (*syncview.Viewer, error) {
	opts := syncview.DefaultOptions()
	if cfg.SpacerWidth > 0 {
		opts.SpacerWidth = cfg.SpacerWidth
		opts.WellDistance = cfg.SpacerWidth
	}

	return d.Viewer(&opts, log)
}

// loadStandard reads and constructs the environment standard.
func loadStandard(path string) (*depenv.Standard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open standard: %w", err)
	}
	defer f.Close()

	entries, err := depenv.ReadStandardCSV(f)
	if err != nil {
		return nil, err
	}

	return depenv.NewStandard(entries, nil)
}

// loadCatalog reads the JSON asset, or hands out the built-in catalog
// when no path is configured.
func loadCatalog(path string) (*colortab.Catalog, error) {
	if path == "" {
		return colortab.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read color tables: %w", err)
	}

	return colortab.ParseCatalog(data)
}
