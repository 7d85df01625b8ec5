package export

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/l3aro/go-cflow/pkg/dfg"
)

// tableHeader is shared by the console and CSV renderings.
var tableHeader = []string{"Basic Block", "gen[B]", "kill[B]", "in[B]", "out[B]"}

// RenderIterations writes one table per solver sweep to w.
func RenderIterations(w io.Writer, iterations []dfg.Iteration) {
	for _, it := range iterations {
		fmt.Fprintf(w, "\n=== Iteration %d ===\n", it.Number)

		table := tablewriter.NewWriter(w)
		table.SetHeader(tableHeader)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)
		for _, row := range it.Rows {
			table.Append(rowCells(row))
		}
		table.Render()
	}
}

func rowCells(row dfg.Row) []string {
	return []string{
		row.Block,
		row.Gen.String(),
		row.Kill.String(),
		row.In.String(),
		row.Out.String(),
	}
}
