package export

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/iksnae/legislation-tracker/internal"
)

// JSONExporter exports records as a pretty-printed JSON array
type JSONExporter struct{}

// Export exports records to JSON format
func (e *JSONExporter) Export(items []*internal.Item, w io.Writer) error {
	if items == nil {
		items = []*internal.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(items)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
