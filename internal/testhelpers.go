package internal

// CreateTestItem creates a resolved test record
func CreateTestItem(title, status string, tags ...string) *Item {
	item := &Item{
		Title:  title,
		Status: status,
		Tags:   tags,
	}
	item.Resolve()
	return item
}

// CreateTestItems creates a small mixed collection of records
func CreateTestItems() []*Item {
	items := []*Item{
		{
			Title:        "Consumer Protections for Artificial Intelligence",
			Status:       "enacted",
			State:        "Colorado",
			Jurisdiction: "Colorado",
			BillNumber:   "SB 24-205",
			Summary:      "First comprehensive state AI regulation in the US.",
			Tags:         []string{"comprehensive", "high_risk", "discrimination"},
		},
		{
			Title:   "Safe and Secure Innovation for Frontier AI Models Act",
			Status:  "Vetoed",
			State:   "California",
			Summary: "Safety testing duties for large model developers.",
			Tags:    []string{"Safety", "frontier_ai"},
		},
		{
			Name:          "EU AI Act",
			Status:        "enacted",
			Jurisdiction:  "European Union",
			KeyProvisions: []string{"Risk-based classification", "Prohibited AI practices"},
			Tags:          []string{"comprehensive", "risk_based"},
		},
		{
			Title:       "NIST AI Risk Management Framework 1.0",
			Status:      "active",
			IssuingBody: "NIST",
			Tags:        []string{"framework", "voluntary"},
		},
		{
			Title: "Untagged Guidance",
		},
	}
	for _, item := range items {
		item.Resolve()
	}
	return items
}
