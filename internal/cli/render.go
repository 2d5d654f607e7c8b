package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/hillclimb/pathfinder"
)

func render(w io.Writer, answers []pathfinder.Answer, format string) error {
	switch format {
	case OutputTable:
		renderTable(w, answers)
		return nil
	default:
		return renderText(w, answers)
	}
}

// renderText prints one "Answer Part N = D" line per answer.
func renderText(w io.Writer, answers []pathfinder.Answer) error {
	for _, a := range answers {
		if _, err := fmt.Fprintf(w, "Answer Part %d = %d\n", a.Mode.Part(), a.Distance); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, answers []pathfinder.Answer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Part", "Mode", "Origins", "Steps"})
	for _, a := range answers {
		t.AppendRow(table.Row{a.Mode.Part(), a.Mode.String(), a.Origins, a.Distance})
	}
	t.Render()
}
