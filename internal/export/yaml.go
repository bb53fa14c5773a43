package export

import (
	"io"

	"github.com/iksnae/legislation-tracker/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports records as a YAML sequence
type YAMLExporter struct{}

// Export exports records to YAML format
func (e *YAMLExporter) Export(items []*internal.Item, w io.Writer) error {
	if items == nil {
		items = []*internal.Item{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(items)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
