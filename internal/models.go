package internal

import (
	"strings"

	"github.com/goccy/go-json"
)

// Item represents one legislative record (bill, executive action or framework)
type Item struct {
	ID                  string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title               string   `json:"title,omitempty" yaml:"title,omitempty"`
	Name                string   `json:"name,omitempty" yaml:"name,omitempty"`
	Status              string   `json:"status,omitempty" yaml:"status,omitempty"`
	Jurisdiction        string   `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	State               string   `json:"state,omitempty" yaml:"state,omitempty"`
	IssuingBody         string   `json:"issuing_body,omitempty" yaml:"issuing_body,omitempty"`
	JurisdictionType    string   `json:"jurisdiction_type,omitempty" yaml:"jurisdiction_type,omitempty"`
	Type                string   `json:"type,omitempty" yaml:"type,omitempty"`
	BillNumber          string   `json:"bill_number,omitempty" yaml:"bill_number,omitempty"`
	Tags                []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary             string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	KeyProvisions       []string `json:"key_provisions,omitempty" yaml:"key_provisions,omitempty"`
	DateIntroduced      string   `json:"date_introduced,omitempty" yaml:"date_introduced,omitempty"`
	DateEnacted         string   `json:"date_enacted,omitempty" yaml:"date_enacted,omitempty"`
	DateAdopted         string   `json:"date_adopted,omitempty" yaml:"date_adopted,omitempty"`
	DateIssued          string   `json:"date_issued,omitempty" yaml:"date_issued,omitempty"`
	EffectiveDate       string   `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`
	FullApplicationDate string   `json:"full_application_date,omitempty" yaml:"full_application_date,omitempty"`
	SourceURL           string   `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	LastVerified        string   `json:"last_verified,omitempty" yaml:"last_verified,omitempty"`

	// Source is the stem of the file the item was loaded from. Only the
	// flat loader sets it.
	Source string `json:"_source,omitempty" yaml:"_source,omitempty"`

	// Resolved once by Resolve
	DisplayTitle string `json:"-" yaml:"-"`
	Location     string `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes an item and resolves its display fields
func (it *Item) UnmarshalJSON(data []byte) error {
	type rawItem Item
	var raw rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = Item(raw)
	it.Resolve()
	return nil
}

// Resolve fills DisplayTitle (title, then name) and Location
// (jurisdiction, then state, then issuing_body). Empty values count as absent.
func (it *Item) Resolve() {
	it.DisplayTitle = firstNonEmpty(it.Title, it.Name)
	it.Location = firstNonEmpty(it.Jurisdiction, it.State, it.IssuingBody)
}

// NormalizedStatus returns the lower-cased status used for comparisons
func (it *Item) NormalizedStatus() string {
	return strings.ToLower(it.Status)
}

// HasTag reports whether the item carries tag, ignoring case
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// SearchableText returns the lower-cased text matched by free-text search
func (it *Item) SearchableText() string {
	parts := []string{
		it.Title,
		it.Name,
		it.Summary,
		strings.Join(it.KeyProvisions, " "),
		strings.Join(it.Tags, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
