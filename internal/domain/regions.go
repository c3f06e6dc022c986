package domain

// Regions is the fixed set of reporting regions, in dashboard display order.
var Regions = []string{
	"Northeast",
	"Southeast",
	"Midwest",
	"Southwest",
	"West Coast",
	"Pacific Northwest",
}

// KnownRegion reports whether name belongs to the fixed region set. The
// pipeline itself accepts any region string; only the HTTP layer rejects
// unknown ones.
func KnownRegion(name string) bool {
	for _, r := range Regions {
		if r == name {
			return true
		}
	}
	return false
}
