package logdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataviz/wellog/logdoc"
	"github.com/strataviz/wellog/strata"
)

// TestBuildWellPicks verifies one raw-label marker per interval row,
// in source order, with the pick header naming the well.
func TestBuildWellPicks(t *testing.T) {
	rows := testRows()

	picks, err := logdoc.BuildWellPicks(rows, "A-1")
	require.NoError(t, err)

	assert.Equal(t, logdoc.PickHeader{Name: "A-1", Well: "A-1"}, picks.Header)
	require.Len(t, picks.Data, 3)
	assert.Equal(t, []any{3069.0, "Sand"}, picks.Data[0])
	assert.Equal(t, []any{3100.0, "Shale"}, picks.Data[1])
	assert.Equal(t, []any{3200.0, "Sand"}, picks.Data[2], "labels stay raw, never coded")
}

// TestBuildWellPicks_Curves verifies the MD + HORIZON vocabulary.
func TestBuildWellPicks_Curves(t *testing.T) {
	picks, err := logdoc.BuildWellPicks(testRows(), "B-2")
	require.NoError(t, err)

	require.Len(t, picks.Curves, 2)
	assert.Equal(t, logdoc.CurveMD, picks.Curves[0].Name)
	assert.Equal(t, logdoc.Float, picks.Curves[0].ValueType)
	assert.Equal(t, logdoc.CurveHorizon, picks.Curves[1].Name)
	assert.Equal(t, logdoc.String, picks.Curves[1].ValueType)
}

// TestBuildWellPicks_UnknownWell verifies the empty-filter sentinel.
func TestBuildWellPicks_UnknownWell(t *testing.T) {
	_, err := logdoc.BuildWellPicks(testRows(), "Z-9")
	assert.ErrorIs(t, err, logdoc.ErrNoIntervals)
}

// TestBuildWellPicks_NeverResolves verifies labels outside any standard
// still build fine: picks are independent of code resolution.
func TestBuildWellPicks_NeverResolves(t *testing.T) {
	rows := []strata.Interval{
		{Wellbore: "A-1", TopDepth: 100, BaseDepth: 200, Unit: "Totally Unknown Formation"},
	}
	picks, err := logdoc.BuildWellPicks(rows, "A-1")
	require.NoError(t, err)
	assert.Equal(t, []any{100.0, "Totally Unknown Formation"}, picks.Data[0])
}

// TestWellPickDocument_WireShape verifies the pick JSON: no quantity or
// unit on HORIZON, no description anywhere.
func TestWellPickDocument_WireShape(t *testing.T) {
	picks, err := logdoc.BuildWellPicks(testRows(), "A-1")
	require.NoError(t, err)

	raw, err := json.Marshal(picks)
	require.NoError(t, err)

	var wire struct {
		Curves []map[string]any `json:"curves"`
	}
	require.NoError(t, json.Unmarshal(raw, &wire))
	require.Len(t, wire.Curves, 2)
	assert.NotContains(t, wire.Curves[0], "description")
	assert.NotContains(t, wire.Curves[1], "quantity", "HORIZON carries no quantity")
	assert.Equal(t, "string", wire.Curves[1]["valueType"])
}
