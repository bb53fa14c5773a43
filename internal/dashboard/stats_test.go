package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iksnae/legislation-tracker/internal"
)

func TestComputeStats(t *testing.T) {
	ds := loadSample(t)

	got := ComputeStats(ds)
	want := Stats{
		FederalActions:   2,
		StateBills:       3,
		International:    2,
		Total:            7,
		StateEnacted:     1,
		StateVetoed:      1,
		StatePending:     1,
		FederalActive:    1,
		FederalRescinded: 1,
		TopTags: []internal.TagCount{
			{Tag: "comprehensive", Count: 2},
			{Tag: "voluntary", Count: 2},
			{Tag: "safety", Count: 2},
			{Tag: "frontier_ai", Count: 2},
			{Tag: "discrimination", Count: 2},
			{Tag: "risk_based", Count: 1},
			{Tag: "binding", Count: 1},
			{Tag: "principles", Count: 1},
			{Tag: "reporting", Count: 1},
			{Tag: "framework", Count: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeStats() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStats_MissingCategories(t *testing.T) {
	got := ComputeStats(&internal.Dataset{Files: map[string][]*internal.Item{}})
	if got.Total != 0 || got.FederalActions != 0 || got.StateBills != 0 || got.International != 0 {
		t.Errorf("ComputeStats() = %+v, want zero counts", got)
	}
	if len(got.TopTags) != 0 {
		t.Errorf("TopTags = %v, want empty", got.TopTags)
	}
}

func TestComputeStats_CountsTagsFromEveryFile(t *testing.T) {
	ds := &internal.Dataset{
		Names: []string{"extra", StateBills},
		Files: map[string][]*internal.Item{
			"extra":    {internal.CreateTestItem("A", "", "deepfakes")},
			StateBills: {internal.CreateTestItem("B", "enacted", "deepfakes")},
		},
	}

	got := ComputeStats(ds)
	if got.Total != 1 {
		t.Errorf("Total = %d, want 1 (unknown files are not counted)", got.Total)
	}
	want := []internal.TagCount{{Tag: "deepfakes", Count: 2}}
	if diff := cmp.Diff(want, got.TopTags); diff != "" {
		t.Errorf("TopTags mismatch (-want +got):\n%s", diff)
	}
}
