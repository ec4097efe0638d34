package report

import (
	"fmt"
	"io"
	"strings"
)

// writeText lays a document out as indented "label: value." lines
func writeText(w io.Writer, doc document) error {
	var sb strings.Builder
	sb.WriteString(doc.title)
	sb.WriteByte('\n')

	for _, b := range doc.blocks {
		sb.WriteString(b.title)
		sb.WriteByte('\n')
		for _, r := range b.rows {
			fmt.Fprintf(&sb, "   %s: %s.\n", r.label, r.value)
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}
