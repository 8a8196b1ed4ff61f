package constant

// Flip outcomes for a single village between a baseline election and a
// comparison election.
const (
	FlipKMTToDPP  = "kmt_to_dpp"
	FlipDPPToKMT  = "dpp_to_kmt"
	FlipUnchanged = "unchanged"
	FlipExcluded  = "excluded"
)
