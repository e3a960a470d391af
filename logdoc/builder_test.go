package logdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataviz/wellog/depenv"
	"github.com/strataviz/wellog/logdoc"
	"github.com/strataviz/wellog/strata"
)

// testStandard is a three-entry reference table in table order.
func testStandard(t *testing.T) *depenv.Standard {
	t.Helper()
	std, err := depenv.NewStandard([]depenv.ReferenceEntry{
		{Label: "Fluvial", Code: 3, Color: depenv.Color{255, 193, 0, 255}},
		{Label: "Marine", Code: 7, Color: depenv.Color{0, 0, 255, 255}},
		{Label: "Lacustrine", Code: 12, Color: depenv.Color{82, 161, 40, 255}},
	}, nil)
	require.NoError(t, err)

	return std
}

// testRows is one well of pre-sorted intervals plus a second well to
// prove filtering.
func testRows() []strata.Interval {
	return []strata.Interval{
		{Wellbore: "A-1", TopDepth: 3069, BaseDepth: 3100, Unit: "Sand", Environment: "marine deposits"},
		{Wellbore: "A-1", TopDepth: 3100, BaseDepth: 3200, Unit: "Shale"},
		{Wellbore: "A-1", TopDepth: 3200, BaseDepth: 3250, Unit: "Sand", Environment: "Fluvial"},
		{Wellbore: "B-2", TopDepth: 2800, BaseDepth: 2900, Unit: "Chalk", Environment: "Marine"},
	}
}

// TestBuild_HeaderBounds verifies startIndex/endIndex are the min top
// depth and max base depth of the well, step stays nil, and the name
// is the fixed BLOCKING log name.
func TestBuild_HeaderBounds(t *testing.T) {
	rows := testRows()
	codes := strata.DeriveUnitCodes(rows)

	doc, err := logdoc.Build(rows, testStandard(t), codes, "A-1")
	require.NoError(t, err)

	assert.Equal(t, logdoc.HeaderName, doc.Header.Name)
	assert.Equal(t, "A-1", doc.Header.Well)
	assert.Equal(t, 3069.0, doc.Header.StartIndex)
	assert.Equal(t, 3250.0, doc.Header.EndIndex)
	assert.Nil(t, doc.Header.Step, "blocked intervals sample irregularly")
}

// TestBuild_DataRows verifies per-row encoding: depth, resolved or
// null environment code, first-encounter unit code, in source order.
func TestBuild_DataRows(t *testing.T) {
	rows := testRows()
	codes := strata.DeriveUnitCodes(rows)

	doc, err := logdoc.Build(rows, testStandard(t), codes, "A-1")
	require.NoError(t, err)

	require.Len(t, doc.Data, 3, "one data row per interval of the well")
	assert.Equal(t, []any{3069.0, 7, 0}, doc.Data[0], "substring-resolved environment, unit Sand=0")
	assert.Equal(t, []any{3100.0, nil, 1}, doc.Data[1], "absent environment is the null sentinel")
	assert.Equal(t, []any{3200.0, 3, 0}, doc.Data[2], "repeated unit reuses its code")
}

// TestBuild_Curves verifies the fixed curve vocabulary.
func TestBuild_Curves(t *testing.T) {
	rows := testRows()
	doc, err := logdoc.Build(rows, testStandard(t), strata.DeriveUnitCodes(rows), "A-1")
	require.NoError(t, err)

	require.Len(t, doc.Curves, 3)
	assert.Equal(t, logdoc.CurveMD, doc.Curves[0].Name)
	assert.Equal(t, logdoc.Float, doc.Curves[0].ValueType)
	assert.Equal(t, logdoc.CurveEnvironment, doc.Curves[1].Name)
	assert.Equal(t, logdoc.Integer, doc.Curves[1].ValueType)
	assert.Equal(t, logdoc.CurveUnit, doc.Curves[2].Name)
	assert.Equal(t, 1, doc.Curves[2].Dimensions)
}

// TestBuild_MetadataCoversData verifies the core invariant: every
// discrete value in data has a metadata entry for its curve (null
// sentinel excepted).
func TestBuild_MetadataCoversData(t *testing.T) {
	rows := testRows()
	std := testStandard(t)
	codes := strata.DeriveUnitCodes(rows)

	doc, err := logdoc.Build(rows, std, codes, "A-1")
	require.NoError(t, err)

	envBlock, ok := doc.MetadataDiscrete[logdoc.CurveEnvironment]
	require.True(t, ok)
	unitBlock, ok := doc.MetadataDiscrete[logdoc.CurveUnit]
	require.True(t, ok)
	assert.Equal(t, []string{"color", "code"}, envBlock.Attributes)
	assert.Equal(t, []string{"color", "code"}, unitBlock.Attributes)

	envCodes := make(map[int]bool)
	for _, e := range envBlock.Objects {
		envCodes[e.Code] = true
	}
	unitCodes := make(map[int]bool)
	for _, e := range unitBlock.Objects {
		unitCodes[e.Code] = true
	}
	for _, row := range doc.Data {
		if row[1] != nil {
			assert.True(t, envCodes[row[1].(int)], "environment code %v must be in metadata", row[1])
		}
		assert.True(t, unitCodes[row[2].(int)], "unit code %v must be in metadata", row[2])
	}
}

// TestBuild_MetadataBlocks verifies block contents: the standard comes
// through verbatim, units get the flat placeholder color.
func TestBuild_MetadataBlocks(t *testing.T) {
	rows := testRows()
	doc, err := logdoc.Build(rows, testStandard(t), strata.DeriveUnitCodes(rows), "A-1")
	require.NoError(t, err)

	env := doc.MetadataDiscrete[logdoc.CurveEnvironment].Objects
	require.Len(t, env, 3, "whole standard, not just values present in data")
	assert.Equal(t, logdoc.DiscreteEntry{Color: depenv.Color{0, 0, 255, 255}, Code: 7}, env["Marine"])

	unit := doc.MetadataDiscrete[logdoc.CurveUnit].Objects
	assert.Equal(t, logdoc.DiscreteEntry{Color: depenv.Color{0, 0, 0, 255}, Code: 0}, unit["Sand"])
	assert.Equal(t, 1, unit["Shale"].Code)
}

// TestBuild_UnknownWell verifies the empty-filter condition is
// ErrNoIntervals, distinct from a lookup failure.
func TestBuild_UnknownWell(t *testing.T) {
	rows := testRows()
	_, err := logdoc.Build(rows, testStandard(t), strata.DeriveUnitCodes(rows), "Z-9")
	assert.ErrorIs(t, err, logdoc.ErrNoIntervals)
	assert.NotErrorIs(t, err, depenv.ErrUnknownEnvironment)
}

// TestBuild_LookupFailureAbortsDocument verifies an unresolvable
// environment fails the whole document with well and depth context.
func TestBuild_LookupFailureAbortsDocument(t *testing.T) {
	rows := []strata.Interval{
		{Wellbore: "A-1", TopDepth: 3069, BaseDepth: 3100, Unit: "Sand", Environment: "Marine"},
		{Wellbore: "A-1", TopDepth: 3100, BaseDepth: 3200, Unit: "Shale", Environment: "volcanic"},
	}
	doc, err := logdoc.Build(rows, testStandard(t), strata.DeriveUnitCodes(rows), "A-1")
	assert.Nil(t, doc, "no partial document on lookup failure")
	require.ErrorIs(t, err, depenv.ErrUnknownEnvironment)
	assert.Contains(t, err.Error(), "A-1")
	assert.Contains(t, err.Error(), "3100")
}

// TestBuild_UnknownUnit verifies a code table derived from foreign rows
// is rejected rather than silently miscoded.
func TestBuild_UnknownUnit(t *testing.T) {
	rows := testRows()
	foreign := strata.DeriveUnitCodes(rows[3:]) // Chalk only

	_, err := logdoc.Build(rows, testStandard(t), foreign, "A-1")
	assert.ErrorIs(t, err, logdoc.ErrUnknownUnit)
}

// TestLogDocument_WireShape pins the JSON contract the viewer consumes:
// exact key names, null step, null sentinel, and the [[R,G,B,A], code]
// pair encoding.
func TestLogDocument_WireShape(t *testing.T) {
	rows := testRows()
	doc, err := logdoc.Build(rows, testStandard(t), strata.DeriveUnitCodes(rows), "A-1")
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &wire))
	for _, key := range []string{"header", "curves", "data", "metadata_discrete"} {
		assert.Contains(t, wire, key)
	}

	var header map[string]any
	require.NoError(t, json.Unmarshal(wire["header"], &header))
	assert.Equal(t, "BLOCKING", header["name"])
	assert.Contains(t, header, "startIndex")
	assert.Contains(t, header, "endIndex")
	assert.Nil(t, header["step"], "step must serialize as null")

	var data [][]any
	require.NoError(t, json.Unmarshal(wire["data"], &data))
	assert.Nil(t, data[1][1], "absent environment must serialize as null")

	var meta map[string]struct {
		Attributes []string         `json:"attributes"`
		Objects    map[string][]any `json:"objects"`
	}
	require.NoError(t, json.Unmarshal(wire["metadata_discrete"], &meta))
	marine := meta["DepositionalEnvironment"].Objects["Marine"]
	require.Len(t, marine, 2, "objects entries are [color, code] pairs")
	assert.Equal(t, []any{0.0, 0.0, 255.0, 255.0}, marine[0])
	assert.Equal(t, 7.0, marine[1])
}

// TestDiscreteEntry_JSONRoundTrip verifies the pair codec both ways.
func TestDiscreteEntry_JSONRoundTrip(t *testing.T) {
	in := logdoc.DiscreteEntry{Color: depenv.Color{1, 2, 3, 255}, Code: 9}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2,3,255],9]`, string(raw))

	var out logdoc.DiscreteEntry
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
