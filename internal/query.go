package internal

import (
	"sort"
	"strings"
)

// TagCount pairs a tag with the number of records carrying it
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// FilterByTag keeps items carrying tag, ignoring case
func FilterByTag(items []*Item, tag string) []*Item {
	results := make([]*Item, 0)
	for _, item := range items {
		if item.HasTag(tag) {
			results = append(results, item)
		}
	}
	return results
}

// FilterByStatus keeps items whose status equals status, ignoring case
func FilterByStatus(items []*Item, status string) []*Item {
	want := strings.ToLower(status)
	results := make([]*Item, 0)
	for _, item := range items {
		if item.NormalizedStatus() == want {
			results = append(results, item)
		}
	}
	return results
}

// FilterByJurisdiction keeps items whose resolved location contains
// jurisdiction, ignoring case
func FilterByJurisdiction(items []*Item, jurisdiction string) []*Item {
	want := strings.ToLower(jurisdiction)
	results := make([]*Item, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Location), want) {
			results = append(results, item)
		}
	}
	return results
}

// SearchText keeps items whose title, name, summary, key provisions or tags
// contain query, ignoring case
func SearchText(items []*Item, query string) []*Item {
	want := strings.ToLower(query)
	results := make([]*Item, 0)
	for _, item := range items {
		if strings.Contains(item.SearchableText(), want) {
			results = append(results, item)
		}
	}
	return results
}

// ListTags counts tag occurrences across items. The result is ordered by
// descending count; equal counts keep first-seen order.
func ListTags(items []*Item) []TagCount {
	index := make(map[string]int)
	counts := make([]TagCount, 0)
	for _, item := range items {
		for _, tag := range item.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, TagCount{Tag: tag, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Query is a set of filters applied in the fixed order
// tag, status, jurisdiction, search. Empty fields are skipped.
type Query struct {
	Tag          string
	Status       string
	Jurisdiction string
	Search       string
}

// StepFunc is called after each applied filter with its label, value and
// the number of remaining items
type StepFunc func(label, value string, count int)

// IsEmpty reports whether no filter is set
func (q Query) IsEmpty() bool {
	return q.Tag == "" && q.Status == "" && q.Jurisdiction == "" && q.Search == ""
}

// Apply narrows items through every non-empty filter. onStep may be nil.
func (q Query) Apply(items []*Item, onStep StepFunc) []*Item {
	steps := []struct {
		label  string
		value  string
		filter func([]*Item, string) []*Item
	}{
		{"Filtered by tag", q.Tag, FilterByTag},
		{"Filtered by status", q.Status, FilterByStatus},
		{"Filtered by jurisdiction", q.Jurisdiction, FilterByJurisdiction},
		{"Search for", q.Search, SearchText},
	}

	results := items
	for _, step := range steps {
		if step.value == "" {
			continue
		}
		results = step.filter(results, step.value)
		LogDebug("%s '%s': %d result(s)", step.label, step.value, len(results))
		if onStep != nil {
			onStep(step.label, step.value, len(results))
		}
	}
	return results
}
