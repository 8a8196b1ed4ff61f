package constant

// Election categories. The district identifier of a raw vote row depends on
// the category: legislator and referendum rows are grouped by electoral
// district, all county-wide races are grouped by county.
const (
	CategoryLegislator = "legislator"
	CategoryMayor      = "mayor"
	CategoryPresident  = "president"
	CategoryPartyList  = "party_list"
	CategoryReferendum = "referendum"
)

// ReferenceCategory is the category whose years are merged into another
// category's historical series for charting continuity. Mayor races happen
// in the even years between legislative elections, so they are the densest
// series available.
const ReferenceCategory = CategoryMayor

var Categories = []string{
	CategoryLegislator,
	CategoryMayor,
	CategoryPresident,
	CategoryPartyList,
	CategoryReferendum,
}

// CategoryDisplayNames are the zh-Hant labels used when composing dataset
// display names, e.g. "2024 立委選舉".
var CategoryDisplayNames = map[string]string{
	CategoryLegislator: "立委選舉",
	CategoryMayor:      "縣市長選舉",
	CategoryPresident:  "總統選舉",
	CategoryPartyList:  "政黨票",
	CategoryReferendum: "罷免投票",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
