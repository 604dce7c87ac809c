package strkit

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const previewWidth = 40

func (v Verdict) Mark() string {
	if v.Valid {
		return text.Colors{text.FgBlack, text.BgHiGreen}.Sprint(" PASS ")
	}

	return text.Colors{text.FgBlack, text.BgHiRed}.Sprint(" FAIL ")
}

// RenderVerdicts prints the verdicts as a table with a pass count in the footer
func RenderVerdicts(w io.Writer, verdicts []Verdict) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Validator", "Input", "Result"})

	passed := 0
	for i, v := range verdicts {
		if v.Valid {
			passed++
		}

		t.AppendRow(table.Row{i + 1, v.Validator, preview(v.Input, previewWidth), v.Mark()})
	}

	t.AppendFooter(table.Row{"", "", "Passed", passed})
	t.Render()
}
