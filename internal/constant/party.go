package constant

// Party names as they appear verbatim in CEC vote data.
const (
	PartyKMT = "中國國民黨"
	PartyDPP = "民主進步黨"
)

// Referendum side labels. Recall referendum rows carry the side in the
// party-name column.
const (
	SideAgree    = "同意"
	SideDisagree = "不同意"
)

// Aggregation buckets. Every candidate/option falls into exactly one.
const (
	BucketKMT   = "kmt"
	BucketDPP   = "dpp"
	BucketOther = "other"
)
