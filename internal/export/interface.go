package export

import (
	"fmt"
	"io"

	"github.com/iksnae/legislation-tracker/internal"
)

// Exporter defines the interface for all query output formats
type Exporter interface {
	Export(items []*internal.Item, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "text", "txt":
		return &TextExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, md, json, jsonl, yaml)", format)
	}
}
