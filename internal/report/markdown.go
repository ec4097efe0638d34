package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chriscorrea/textstat/internal/extract"
)

// writeMarkdown renders every block of the document as a markdown table
func writeMarkdown(w io.Writer, l *localizer, result extract.Result) error {
	doc := l.document(result)
	header := table.Row{l.p.Sprintf(keyStatistic), l.p.Sprintf(keyValue)}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", doc.title)

	for _, b := range doc.blocks {
		tbl := table.NewWriter()
		tbl.AppendHeader(header)
		for _, r := range b.rows {
			tbl.AppendRow(table.Row{r.label, r.value})
		}
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", b.title, tbl.RenderMarkdown())
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return nil
}
