package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/rs/zerolog"

	"github.com/strataviz/wellog/colortab"
	"github.com/strataviz/wellog/depenv"
	"github.com/strataviz/wellog/strata"
)

// Queries against the curated source schema. Both tables are
// pre-sorted by their curators; ORDER BY pins that order so code
// assignment stays deterministic across loads.
const (
	standardQuery = `SELECT code, label, r, g, b
		FROM depenv_standard ORDER BY ord`
	intervalsQuery = `SELECT wellbore, top_depth, base_depth, unit, environment
		FROM lithostrat_intervals ORDER BY wellbore, top_depth`
)

// standardRow mirrors one depenv_standard record.
type standardRow struct {
	Code  int    `db:"code"`
	Label string `db:"label"`
	R     int    `db:"r"`
	G     int    `db:"g"`
	B     int    `db:"b"`
}

// intervalRow mirrors one lithostrat_intervals record. Environment is
// nullable in the schema and maps to the absent sentinel.
type intervalRow struct {
	Wellbore    string         `db:"wellbore"`
	TopDepth    float64        `db:"top_depth"`
	BaseDepth   float64        `db:"base_depth"`
	Unit        string         `db:"unit"`
	Environment sql.NullString `db:"environment"`
}

// LoadPostgres reads the two source tables from the configured
// Postgres DSN. Color tables stay file/built-in; the database carries
// only the relational sources.
func LoadPostgres(ctx context.Context, cfg Config, log zerolog.Logger) (*Dataset, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("dataset: connect postgres: %w", err)
	}
	defer db.Close()

	colors, err := loadCatalog(cfg.ColorTablesPath)
	if err != nil {
		return nil, err
	}

	return loadFromDB(ctx, db, colors, log)
}

// loadFromDB runs the two queries over any sqlx handle; split out so
// tests can substitute a mock connection.
func loadFromDB(ctx context.Context, db *sqlx.DB, colors *colortab.Catalog, log zerolog.Logger) (*Dataset, error) {
	start := time.Now()

	var stdRows []standardRow
	if err := db.SelectContext(ctx, &stdRows, standardQuery); err != nil {
		return nil, fmt.Errorf("dataset: query standard: %w", err)
	}
	entries := make([]depenv.ReferenceEntry, len(stdRows))
	for i, r := range stdRows {
		entries[i] = depenv.ReferenceEntry{
			Label: r.Label,
			Code:  r.Code,
			Color: depenv.Color{r.R, r.G, r.B, 255},
		}
	}
	std, err := depenv.NewStandard(entries, nil)
	if err != nil {
		return nil, err
	}

	var ivRows []intervalRow
	if err := db.SelectContext(ctx, &ivRows, intervalsQuery); err != nil {
		return nil, fmt.Errorf("dataset: query intervals: %w", err)
	}
	rows := make([]strata.Interval, len(ivRows))
	for i, r := range ivRows {
		rows[i] = strata.Interval{
			Wellbore:    r.Wellbore,
			TopDepth:    r.TopDepth,
			BaseDepth:   r.BaseDepth,
			Unit:        r.Unit,
			Environment: r.Environment.String, // empty when NULL
		}
	}
	table := strata.NewTable(rows)

	log.Info().
		Int("entries", std.Len()).
		Int("rows", table.Len()).
		Int("wells", len(table.Wells())).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded from postgres")

	return &Dataset{Standard: std, Table: table, Colors: colors}, nil
}
