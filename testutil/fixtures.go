package testutil

import (
	"testing"
)

// FederalActionsJSON is a small us_federal_actions.json fixture
const FederalActionsJSON = `[
  {
    "id": "fed-001",
    "title": "Executive Order 14110 on Safe, Secure, and Trustworthy AI",
    "type": "executive_order",
    "status": "rescinded",
    "date_issued": "2023-10-30",
    "issuing_body": "White House",
    "summary": "Comprehensive AI executive order establishing safety requirements and reporting thresholds.",
    "key_provisions": ["Dual-use foundation model reporting requirements", "Compute threshold triggers (10^26 FLOP)"],
    "tags": ["safety", "frontier_ai", "reporting"],
    "jurisdiction": "US Federal",
    "jurisdiction_type": "federal"
  },
  {
    "id": "fed-002",
    "title": "NIST AI Risk Management Framework 1.0",
    "type": "framework",
    "status": "active",
    "date_issued": "2023-01-26",
    "issuing_body": "NIST",
    "summary": "Voluntary framework for managing AI risks throughout the AI lifecycle.",
    "source_url": "https://www.nist.gov/itl/ai-risk-management-framework",
    "tags": ["framework", "risk_management", "voluntary"],
    "jurisdiction": "US Federal",
    "jurisdiction_type": "federal"
  }
]`

// StateBillsJSON is a small us_state_bills.json fixture
const StateBillsJSON = `[
  {
    "id": "state-001",
    "state": "Colorado",
    "bill_number": "SB 24-205",
    "title": "Consumer Protections for Artificial Intelligence",
    "status": "enacted",
    "date_enacted": "2024-05-17",
    "effective_date": "2026-02-01",
    "summary": "First comprehensive state AI regulation in the US.",
    "tags": ["comprehensive", "high_risk", "discrimination"],
    "jurisdiction": "Colorado",
    "jurisdiction_type": "state"
  },
  {
    "id": "state-002",
    "state": "California",
    "bill_number": "SB 1047",
    "title": "Safe and Secure Innovation for Frontier AI Models Act",
    "status": "vetoed",
    "summary": "Would have required safety testing under the Frontier Model Act regime.",
    "tags": ["safety", "frontier_ai"],
    "jurisdiction_type": "state"
  },
  {
    "id": "state-003",
    "state": "Illinois",
    "bill_number": "HB 3773",
    "title": "Limit Predictive Analytics Use",
    "status": "Pending",
    "effective_date": "2027-01-01",
    "tags": ["employment", "discrimination"],
    "jurisdiction_type": "state"
  }
]`

// InternationalFrameworksJSON is a small international_frameworks.json fixture
const InternationalFrameworksJSON = `[
  {
    "id": "intl-001",
    "jurisdiction": "European Union",
    "name": "EU AI Act",
    "title": "EU AI Act",
    "type": "regulation",
    "status": "enacted",
    "date_adopted": "2024-03-13",
    "effective_date": "2026-08-01",
    "full_application_date": "2026-08-01",
    "key_provisions": [
      "Risk-based classification",
      "Prohibited AI practices",
      "High-risk AI requirements",
      "General-purpose AI model obligations",
      "Transparency requirements",
      "AI Office establishment"
    ],
    "tags": ["comprehensive", "risk_based", "binding"],
    "jurisdiction_type": "international"
  },
  {
    "id": "intl-002",
    "jurisdiction": "OECD",
    "name": "OECD Recommendation of the Council on Artificial Intelligence",
    "type": "principles",
    "status": "adopted",
    "date_adopted": "2019-05-22",
    "tags": ["principles", "voluntary"],
    "jurisdiction_type": "international"
  }
]`

// SampleFiles maps data file names to the fixtures above
func SampleFiles() map[string]string {
	return map[string]string{
		"us_federal_actions.json":       FederalActionsJSON,
		"us_state_bills.json":           StateBillsJSON,
		"international_frameworks.json": InternationalFrameworksJSON,
	}
}

// CreateSampleDataDir writes the sample fixtures to a fresh data directory
func CreateSampleDataDir(t *testing.T) string {
	t.Helper()
	return CreateDataDir(t, SampleFiles())
}
