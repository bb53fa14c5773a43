package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/iksnae/legislation-tracker/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	tests := []struct {
		name  string
		items []*internal.Item
		want  int
	}{
		{
			name:  "mixed records",
			items: internal.CreateTestItems(),
			want:  5,
		},
		{
			name:  "nil slice",
			items: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &JSONExporter{}

			if err := exporter.Export(tt.items, &buf); err != nil {
				t.Fatalf("JSONExporter.Export() error = %v", err)
			}

			var decoded []map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
			}
			if len(decoded) != tt.want {
				t.Errorf("decoded %d records, want %d", len(decoded), tt.want)
			}
			if strings.HasPrefix(buf.String(), "null") {
				t.Error("empty result should encode as [], not null")
			}
		})
	}
}

func TestJSONExporter_KeepsFieldNames(t *testing.T) {
	item := internal.CreateTestItem("X Act", "Enacted", "privacy")
	item.Source = "a"
	item.SourceURL = "https://example.com/?a=1&b=2"

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export([]*internal.Item{item}, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{`"title": "X Act"`, `"_source": "a"`, `"tags": [`, `a=1&b=2`} {
		if !strings.Contains(output, want) {
			t.Errorf("JSON output missing %s:\n%s", want, output)
		}
	}
}

func TestJSONExporter_Extension(t *testing.T) {
	if got := (&JSONExporter{}).Extension(); got != "json" {
		t.Errorf("Extension() = %v, want json", got)
	}
}
