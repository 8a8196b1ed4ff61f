package constant

// Property table keys.
const (
	// PropertyIngestRejectRules holds a JSON array of named expr rules; a
	// row matching any active rule is rejected at ingest.
	PropertyIngestRejectRules = "ingest_reject_rules"
)
