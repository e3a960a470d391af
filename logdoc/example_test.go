package logdoc_test

import (
	"fmt"

	"github.com/strataviz/wellog/depenv"
	"github.com/strataviz/wellog/logdoc"
	"github.com/strataviz/wellog/strata"
)

// ExampleBuild builds the log document of one well from three interval
// rows and a two-entry standard, then prints the header range and the
// encoded data matrix.
func ExampleBuild() {
	std, _ := depenv.NewStandard([]depenv.ReferenceEntry{
		{Label: "Marine", Code: 7, Color: depenv.Color{0, 0, 255, 255}},
		{Label: "Fluvial", Code: 3, Color: depenv.Color{255, 193, 0, 255}},
	}, nil)

	rows := []strata.Interval{
		{Wellbore: "A-1", TopDepth: 3069, BaseDepth: 3100, Unit: "Sand", Environment: "marine deposits"},
		{Wellbore: "A-1", TopDepth: 3100, BaseDepth: 3200, Unit: "Shale"},
		{Wellbore: "A-1", TopDepth: 3200, BaseDepth: 3250, Unit: "Sand", Environment: "Fluvial"},
	}
	codes := strata.DeriveUnitCodes(rows)

	doc, err := logdoc.Build(rows, std, codes, "A-1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("range=[%v, %v]\n", doc.Header.StartIndex, doc.Header.EndIndex)
	for _, row := range doc.Data {
		fmt.Println(row)
	}
	// Output:
	// range=[3069, 3250]
	// [3069 7 0]
	// [3100 <nil> 1]
	// [3200 3 0]
}

// ExampleBuildWellPicks derives the sparse horizon markers of the same
// rows: raw labels, no codes involved.
func ExampleBuildWellPicks() {
	rows := []strata.Interval{
		{Wellbore: "A-1", TopDepth: 3069, BaseDepth: 3100, Unit: "Sand"},
		{Wellbore: "A-1", TopDepth: 3100, BaseDepth: 3200, Unit: "Shale"},
	}

	picks, err := logdoc.BuildWellPicks(rows, "A-1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range picks.Data {
		fmt.Println(row)
	}
	// Output:
	// [3069 Sand]
	// [3100 Shale]
}
