package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/legislation-tracker/internal"
)

const (
	// maxProvisions is how many key provisions a record block lists
	maxProvisions = 5
	ruleWidth     = 60
)

var statusEmoji = map[string]string{
	"enacted":   "✅",
	"active":    "✅",
	"vetoed":    "❌",
	"pending":   "⏳",
	"rescinded": "❌",
}

// Rule is the banner line framing record titles
var Rule = strings.Repeat("=", ruleWidth)

// TextExporter renders each record as a detailed text block
type TextExporter struct{}

// Export writes one block per record
func (e *TextExporter) Export(items []*internal.Item, w io.Writer) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, FormatItem(item)); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}

// StatusEmoji returns the emoji for a status, or "" for unknown ones
func StatusEmoji(status string) string {
	return statusEmoji[strings.ToLower(status)]
}

// FormatItem renders a single record. Lines for absent fields are left out.
func FormatItem(item *internal.Item) string {
	var lines []string

	lines = append(lines, "\n"+Rule)
	lines = append(lines, "📋 "+item.DisplayTitle)
	lines = append(lines, Rule)

	if item.Location != "" {
		lines = append(lines, "📍 Jurisdiction: "+item.Location)
	}

	status := item.Status
	if status == "" {
		status = "unknown"
	}
	lines = append(lines, fmt.Sprintf("📊 Status: %s %s", StatusEmoji(status), status))

	if item.Type != "" {
		lines = append(lines, "📁 Type: "+item.Type)
	}

	if item.DateEnacted != "" {
		lines = append(lines, "📅 Enacted: "+item.DateEnacted)
	}
	if item.DateAdopted != "" {
		lines = append(lines, "📅 Adopted: "+item.DateAdopted)
	}
	if item.EffectiveDate != "" {
		lines = append(lines, "📅 Effective: "+item.EffectiveDate)
	}

	if item.Summary != "" {
		lines = append(lines, "\n📝 Summary:\n   "+item.Summary)
	}

	if len(item.KeyProvisions) > 0 {
		lines = append(lines, "\n🔑 Key Provisions:")
		for i, provision := range item.KeyProvisions {
			if i == maxProvisions {
				break
			}
			lines = append(lines, "   • "+provision)
		}
		if extra := len(item.KeyProvisions) - maxProvisions; extra > 0 {
			lines = append(lines, fmt.Sprintf("   • ... and %d more", extra))
		}
	}

	if len(item.Tags) > 0 {
		lines = append(lines, "\n🏷️  Tags: "+strings.Join(item.Tags, ", "))
	}

	if item.SourceURL != "" {
		lines = append(lines, "\n🔗 "+item.SourceURL)
	}

	return strings.Join(lines, "\n")
}
