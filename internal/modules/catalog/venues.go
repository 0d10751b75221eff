package catalog

// Venues lists every discrete trading location, index-addressed everywhere in
// the engine.
var Venues = []string{
	"Deep Space Nine", "Trantor Prime", "Serenity Valley", "Corellia (Shipyards)",
	"High Charity", "Giedi Prime", "New Babylon", "Acheron LV-426", "Cantina Mos Eisley", "Centauri Prime",
}

// DistanceMatrix is symmetric; DistanceMatrix[a][b] is the abstract distance
// between venues a and b. Fuel cost for a jump is distance * 2.
var DistanceMatrix = [][]int{
	{0, 5, 12, 1, 8, 4, 10, 3, 7, 9},
	{5, 0, 6, 8, 3, 11, 2, 9, 1, 7},
	{12, 6, 0, 10, 7, 3, 9, 1, 5, 4},
	{1, 8, 10, 0, 9, 6, 1, 11, 4, 3},
	{8, 3, 7, 9, 0, 5, 4, 2, 12, 1},
	{4, 11, 3, 6, 5, 0, 8, 7, 2, 10},
	{10, 2, 9, 1, 4, 8, 0, 6, 3, 5},
	{3, 9, 1, 11, 2, 7, 6, 0, 10, 8},
	{7, 1, 5, 4, 12, 2, 3, 10, 0, 6},
	{9, 7, 4, 3, 1, 10, 5, 8, 6, 0},
}

// Distance returns the matrix distance between two venue indexes.
func Distance(from, to int) int {
	return DistanceMatrix[from][to]
}

// FuelCost returns the fuel units required to jump between two venues.
func FuelCost(from, to int) int {
	return Distance(from, to) * 2
}

// ValidVenue reports whether idx addresses a real venue.
func ValidVenue(idx int) bool {
	return idx >= 0 && idx < len(Venues)
}
