package syncview

import (
	"fmt"

	"github.com/strataviz/wellog/colortab"
	"github.com/strataviz/wellog/depenv"
	"github.com/strataviz/wellog/logdoc"
	"github.com/strataviz/wellog/strata"
)

// Sync builds the synchronized multi-well payload for one selection.
//
// Description:
//
//	Sync is a pure function of (table, std, wells, opts):
//	 1. Empty selection returns four empty sequences immediately.
//	 2. Filter the table to the selection, then derive the unit code
//	    table from the filtered union — filtering first keeps the
//	    derivation cost proportional to the selection, and one shared
//	    table keeps codes consistent across the synced documents.
//	 3. Build one LogDocument per well, in selection order, cloning
//	    the template and emitting the layout values per well.
//
// Failure policy: with FailFast=false (default) a failing well is
// omitted from all four sequences and recorded in a *BatchError that
// is returned next to the partial Result; callers decide whether a
// partial view is acceptable. With FailFast=true the first failure
// aborts the run and nothing is returned.
func Sync(table *strata.Table, std *depenv.Standard, wells []string, opts *Options) (Result, error) {
	if table == nil {
		return Result{}, ErrNilTable
	}
	if std == nil {
		return Result{}, ErrNilStandard
	}
	o := normalize(opts)

	res := Result{
		Documents:     []*logdoc.LogDocument{},
		Templates:     []*Template{},
		Spacers:       []int{},
		WellDistances: []int{},
	}
	if len(wells) == 0 {
		return res, nil
	}

	// Filter precedes code-table derivation: cost scales with the
	// selection, and every synced document shares one code table.
	selected := table.ForWells(wells)
	codes := strata.DeriveUnitCodes(selected)

	var batch BatchError
	for _, well := range wells {
		doc, err := logdoc.Build(selected, std, codes, well)
		if err != nil {
			if o.FailFast {
				return Result{}, fmt.Errorf("syncview: well %q: %w", well, err)
			}
			batch.Failures = append(batch.Failures, WellFailure{Well: well, Err: err})

			continue
		}
		res.Documents = append(res.Documents, doc)
		res.Templates = append(res.Templates, o.Template.Clone())
		res.Spacers = append(res.Spacers, o.SpacerWidth)
		res.WellDistances = append(res.WellDistances, o.WellDistance)
	}

	if len(batch.Failures) > 0 {
		return res, &batch
	}

	return res, nil
}

// normalize fills zero-valued options with the defaults. A zero
// WellDistance mirrors SpacerWidth, preserving the historical pairing.
func normalize(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	if o.SpacerWidth == 0 {
		o.SpacerWidth = DefaultSpacerWidth
	}
	if o.WellDistance == 0 {
		o.WellDistance = o.SpacerWidth
	}
	if o.Template == nil {
		o.Template = DefaultTemplate()
	}

	return o
}

// PickView is the well-pick payload of one well as the viewer consumes
// it: the pick document plus the horizon curve name, the color table
// to paint markers with, and the catalog those names resolve against.
type PickView struct {
	Pick        *logdoc.WellPickDocument `json:"wellpick"`
	Name        string                   `json:"name"`
	Color       string                   `json:"color"`
	ColorTables []colortab.ColorTable    `json:"colorTables"`
}

// pickColorTable names the catalog table painting horizon markers.
const pickColorTable = "Stratigraphy"

// BuildPickView derives the pick payload of one well. The catalog is
// passed through by value reference only; nothing here reads a color.
func BuildPickView(table *strata.Table, well string, catalog *colortab.Catalog) (*PickView, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if catalog == nil {
		catalog = colortab.DefaultCatalog()
	}

	pick, err := logdoc.BuildWellPicks(table.Rows(), well)
	if err != nil {
		return nil, err
	}

	return &PickView{
		Pick:        pick,
		Name:        logdoc.CurveHorizon,
		Color:       pickColorTable,
		ColorTables: catalog.Tables(),
	}, nil
}
