package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/iksnae/legislation-tracker/internal"
)

// JSONLExporter exports records in JSONL format (one record per line)
type JSONLExporter struct{}

// Export exports records to JSONL format
func (e *JSONLExporter) Export(items []*internal.Item, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("failed to encode record %q: %w", item.DisplayTitle, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
