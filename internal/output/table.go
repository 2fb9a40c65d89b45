package output

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/clikit/internal/format"
)

// Table prints rows under headers on stdout. Column widths are measured on
// visible characters, so colored cells line up with plain ones.
func (r *Renderer) Table(headers []string, rows [][]string) {
	if r.state == MidLine {
		r.Newline(1)
	}

	cols := make([]interface{}, len(headers))
	for i, h := range headers {
		cols[i] = h
	}

	tbl := table.New(cols...).
		WithWriter(r.out).
		WithWidthFunc(format.VisibleLength)

	if r.palette.Enabled() {
		headerFmt := color.New(color.FgCyan, color.Underline)
		headerFmt.EnableColor()
		tbl.WithHeaderFormatter(headerFmt.SprintfFunc())
	} else {
		tbl.WithHeaderFormatter(fmt.Sprintf)
	}

	for _, row := range rows {
		vals := make([]interface{}, len(row))
		for i, v := range row {
			vals[i] = v
		}
		tbl.AddRow(vals...)
	}

	tbl.Print()
}
