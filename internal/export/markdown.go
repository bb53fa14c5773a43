package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/legislation-tracker/internal"
)

// MarkdownExporter exports records as a markdown table
type MarkdownExporter struct{}

// Export exports records to Markdown format
func (e *MarkdownExporter) Export(items []*internal.Item, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Query Results\n\n")
	_, _ = fmt.Fprintf(w, "**Matching Items:** %d\n\n", len(items))

	if len(items) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(w, "| Title | Jurisdiction | Status | Type | Source |")
	_, _ = fmt.Fprintln(w, "|-------|--------------|--------|------|--------|")

	for _, item := range items {
		status := item.Status
		if emoji := StatusEmoji(status); emoji != "" {
			status = emoji + " " + status
		}
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			escapeCell(item.DisplayTitle),
			escapeCell(item.Location),
			escapeCell(status),
			escapeCell(item.Type),
			escapeCell(item.Source),
		); err != nil {
			return err
		}
	}

	return nil
}

// escapeCell keeps cell content from breaking the table layout
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
