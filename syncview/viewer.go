package syncview

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/strataviz/wellog/colortab"
	"github.com/strataviz/wellog/depenv"
	"github.com/strataviz/wellog/strata"
)

// Viewer is a selection-event session over immutable inputs.
//
// Description:
//
//	Viewer owns nothing mutable except a generation counter. Every
//	Select call runs the pure Sync and is tagged with the generation
//	it started at; if a newer Select started meanwhile, the stale
//	result is withheld and ErrSuperseded returned instead. The caller
//	therefore observes last-event-wins: published results always come
//	from a single consistent run, never a mix of events.
//
//	Selection events are logged with a per-event UUID so rapid
//	re-selection is traceable in the host's structured logs.
type Viewer struct {
	table   *strata.Table
	std     *depenv.Standard
	catalog *colortab.Catalog
	opts    Options
	log     zerolog.Logger
	gen     atomic.Uint64
}

// NewViewer builds a session over the loaded inputs. A nil opts
// selects DefaultOptions; a nil catalog selects the built-in one.
// Pass zerolog.Nop() to silence event logging.
func NewViewer(table *strata.Table, std *depenv.Standard, catalog *colortab.Catalog, opts *Options, log zerolog.Logger) (*Viewer, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if std == nil {
		return nil, ErrNilStandard
	}
	if catalog == nil {
		catalog = colortab.DefaultCatalog()
	}

	return &Viewer{
		table:   table,
		std:     std,
		catalog: catalog,
		opts:    normalize(opts),
		log:     log,
	}, nil
}

// Wells lists the selectable wells in dataset order.
func (v *Viewer) Wells() []string { return v.table.Wells() }

// Select handles one selection event: it synchronizes the selected
// wells and returns the four-sequence payload.
//
// Errors:
//   - ErrSuperseded — a newer Select started before this one finished;
//     the stale result is withheld.
//   - *BatchError   — per-well failures under the isolation policy,
//     returned next to the partial Result.
func (v *Viewer) Select(wells []string) (Result, error) {
	event := uuid.New()
	gen := v.gen.Add(1)
	start := time.Now()

	res, err := Sync(v.table, v.std, wells, &v.opts)

	if v.gen.Load() != gen {
		v.log.Debug().
			Stringer("event", event).
			Int("selected", len(wells)).
			Dur("elapsed", time.Since(start)).
			Msg("selection superseded, result discarded")

		return Result{}, ErrSuperseded
	}

	var evt *zerolog.Event
	var batch *BatchError
	if errors.As(err, &batch) {
		evt = v.log.Warn().Int("failed", len(batch.Failures))
	} else {
		evt = v.log.Debug()
	}
	evt.Stringer("event", event).
		Int("selected", len(wells)).
		Int("built", len(res.Documents)).
		Dur("elapsed", time.Since(start)).
		Msg("selection synchronized")

	return res, err
}

// PickView derives the well-pick payload of one well against the
// session's catalog.
func (v *Viewer) PickView(well string) (*PickView, error) {
	return BuildPickView(v.table, well, v.catalog)
}
