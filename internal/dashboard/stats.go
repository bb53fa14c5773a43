package dashboard

import (
	"github.com/iksnae/legislation-tracker/internal"
)

// Dataset keys the dashboard reads from
const (
	FederalActions          = "us_federal_actions"
	StateBills              = "us_state_bills"
	InternationalFrameworks = "international_frameworks"
)

// topTagLimit is the number of tags shown in the key themes table
const topTagLimit = 10

// Stats summarizes a dataset
type Stats struct {
	FederalActions int `json:"federal_actions" yaml:"federal_actions"`
	StateBills     int `json:"state_bills" yaml:"state_bills"`
	International  int `json:"international" yaml:"international"`
	Total          int `json:"total" yaml:"total"`

	StateEnacted int `json:"state_enacted" yaml:"state_enacted"`
	StateVetoed  int `json:"state_vetoed" yaml:"state_vetoed"`
	StatePending int `json:"state_pending" yaml:"state_pending"`

	FederalActive    int `json:"federal_active" yaml:"federal_active"`
	FederalRescinded int `json:"federal_rescinded" yaml:"federal_rescinded"`

	TopTags []internal.TagCount `json:"top_tags" yaml:"top_tags"`
}

// ComputeStats counts records per category and status and ranks tags across
// every loaded file
func ComputeStats(ds *internal.Dataset) Stats {
	federal := ds.Get(FederalActions)
	states := ds.Get(StateBills)
	frameworks := ds.Get(InternationalFrameworks)

	stats := Stats{
		FederalActions: len(federal),
		StateBills:     len(states),
		International:  len(frameworks),
	}
	stats.Total = stats.FederalActions + stats.StateBills + stats.International

	stats.StateEnacted = countStatus(states, "enacted")
	stats.StateVetoed = countStatus(states, "vetoed")
	stats.StatePending = countStatus(states, "pending")

	stats.FederalActive = countStatus(federal, "active")
	stats.FederalRescinded = countStatus(federal, "rescinded")

	var all []*internal.Item
	if ds != nil {
		for _, name := range ds.Names {
			all = append(all, ds.Files[name]...)
		}
	}
	tags := internal.ListTags(all)
	if len(tags) > topTagLimit {
		tags = tags[:topTagLimit]
	}
	stats.TopTags = tags

	return stats
}

func countStatus(items []*internal.Item, status string) int {
	n := 0
	for _, item := range items {
		if item.NormalizedStatus() == status {
			n++
		}
	}
	return n
}
