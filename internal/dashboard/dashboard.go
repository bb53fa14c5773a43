package dashboard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iksnae/legislation-tracker/internal"
)

// DateLayout is the ISO date format used by the data files
const DateLayout = "2006-01-02"

const upcomingLimit = 10

var (
	stateEmoji = map[string]string{
		"enacted": "✅",
		"vetoed":  "❌",
		"pending": "⏳",
	}
	frameworkEmoji = map[string]string{
		"enacted": "✅",
		"active":  "✅",
		"pending": "⏳",
		"adopted": "✅",
	}
)

// Generator renders the markdown dashboard
type Generator struct {
	// Today is the ISO date used for the header and the upcoming-dates cutoff
	Today string
	// Footer is the closing attribution line
	Footer string
}

// NewGenerator returns a generator pinned to the given day
func NewGenerator(now time.Time) *Generator {
	return &Generator{
		Today:  now.Format(DateLayout),
		Footer: "*Generated by legislation-tracker dashboard*",
	}
}

// Upcoming is one future effective date shown in the timeline
type Upcoming struct {
	Date         string
	Jurisdiction string
	Title        string
}

// Generate renders the dashboard document for ds
func (g *Generator) Generate(ds *internal.Dataset, stats Stats) string {
	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("# AI Legislation Landscape Dashboard")
	add("\n**Last Updated:** %s", g.Today)
	add("\n**Total Items Tracked:** %d\n", stats.Total)

	add("## Overview\n")
	add("| Category | Count |")
	add("|----------|-------|")
	add("| US Federal Actions | %d |", stats.FederalActions)
	add("| US State Bills | %d |", stats.StateBills)
	add("| International Frameworks | %d |", stats.International)

	add("\n## US Federal Actions\n")
	add("**Active:** %d | **Rescinded:** %d\n", stats.FederalActive, stats.FederalRescinded)
	add("| Title | Type | Status | Issuing Body |")
	add("|-------|------|--------|--------------|")
	for _, item := range ds.Get(FederalActions) {
		emoji := "❌"
		if item.NormalizedStatus() == "active" {
			emoji = "✅"
		}
		add("| %s | %s | %s %s | %s |",
			Truncate(item.DisplayTitle, 50, true), item.Type, emoji, item.Status, item.IssuingBody)
	}

	add("\n## US State Legislation\n")
	add("**Enacted:** %d | **Vetoed:** %d | **Pending:** %d\n", stats.StateEnacted, stats.StateVetoed, stats.StatePending)
	add("| State | Bill | Title | Status | Effective |")
	add("|-------|------|-------|--------|-----------|")
	for _, item := range ds.Get(StateBills) {
		effective := item.EffectiveDate
		if effective == "" {
			effective = "—"
		}
		add("| %s | %s | %s | %s %s | %s |",
			stateOf(item), item.BillNumber, Truncate(item.DisplayTitle, 35, true),
			stateEmoji[item.NormalizedStatus()], item.Status, effective)
	}

	add("\n## International Frameworks\n")
	add("| Jurisdiction | Name | Type | Status |")
	add("|--------------|------|------|--------|")
	for _, item := range ds.Get(InternationalFrameworks) {
		add("| %s | %s | %s | %s %s |",
			jurisdictionOf(item), Truncate(frameworkName(item), 40, true), item.Type,
			frameworkEmoji[item.NormalizedStatus()], item.Status)
	}

	add("\n## Key Themes (by tag frequency)\n")
	add("| Tag | Occurrences |")
	add("|-----|-------------|")
	for _, tc := range stats.TopTags {
		add("| `%s` | %d |", tc.Tag, tc.Count)
	}

	add("\n## Upcoming Effective Dates\n")
	add("| Date | Jurisdiction | Item |")
	add("|------|--------------|------|")
	for _, u := range g.UpcomingDates(ds) {
		add("| %s | %s | %s |", u.Date, u.Jurisdiction, Truncate(u.Title, 50, false))
	}

	add("\n---")
	add("%s", g.Footer)

	return strings.Join(lines, "\n")
}

// UpcomingDates collects state effective dates and framework application
// dates after Today, sorted ascending and capped at ten. Dates compare as
// strings, which orders ISO dates correctly.
func (g *Generator) UpcomingDates(ds *internal.Dataset) []Upcoming {
	var upcoming []Upcoming
	for _, item := range ds.Get(StateBills) {
		if item.EffectiveDate != "" && item.EffectiveDate > g.Today {
			upcoming = append(upcoming, Upcoming{item.EffectiveDate, stateOf(item), item.DisplayTitle})
		}
	}
	for _, item := range ds.Get(InternationalFrameworks) {
		if item.FullApplicationDate != "" && item.FullApplicationDate > g.Today {
			upcoming = append(upcoming, Upcoming{item.FullApplicationDate, jurisdictionOf(item), frameworkName(item)})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i], upcoming[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Jurisdiction != b.Jurisdiction {
			return a.Jurisdiction < b.Jurisdiction
		}
		return a.Title < b.Title
	})

	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	return upcoming
}

// Truncate cuts s to max characters, appending "..." when ellipsis is set
// and something was cut
func Truncate(s string, max int, ellipsis bool) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if ellipsis {
		return string(runes[:max]) + "..."
	}
	return string(runes[:max])
}

func stateOf(item *internal.Item) string {
	if item.State != "" {
		return item.State
	}
	return item.Location
}

func jurisdictionOf(item *internal.Item) string {
	if item.Jurisdiction != "" {
		return item.Jurisdiction
	}
	return item.Location
}

func frameworkName(item *internal.Item) string {
	if item.Name != "" {
		return item.Name
	}
	return item.DisplayTitle
}
