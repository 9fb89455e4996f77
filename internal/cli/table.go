package cli

import (
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mydehq/subsort/internal/renamer"
)

// summaryTable renders the per-episode outcome of a run.
func summaryTable(outcomes []renamer.Outcome, skipped []renamer.Skip) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Episode", "Subtitle", "Shape", "Result"})

	for _, out := range outcomes {
		result := "placed"
		if out.Err != nil {
			result = "failed"
		}
		tw.AppendRow(table.Row{
			out.Op.Episode,
			filepath.Base(out.Op.SourcePath),
			out.Op.Shape,
			result,
		})
	}
	for _, s := range skipped {
		ep := s.Episode
		if ep == "" {
			ep = "--"
		}
		tw.AppendRow(table.Row{ep, s.Template, "", "skipped"})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
