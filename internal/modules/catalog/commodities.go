// Package catalog holds the static configuration tables for the simulation:
// commodities, venues, distances, firms, shop equipment and tunable constants.
// Everything in this package is immutable reference data consumed by the
// engine modules; nothing here carries game state.
package catalog

// Well-known commodity names referenced by engine rules.
const (
	FuelName       = "Spice Fuel"
	NutriPasteName = "Nutri-Paste"
	H2OName        = "H2O"
	PowerCellName  = "Power Cell"
	MeshName       = "Z@onflex Weave Mesh"
	TeaName        = "Spacetime Tea"
	OreName        = "Titanium Ore"
	ClothName      = "Synthetic Cloth"
	AntimatterName = "Antimatter Rod"
	DarkMatterName = "Dark Matter"
	GirlMatterName = "G.I.R.L (Lite) Matter"
	StimPacksName  = "Stim-Packs"
)

// Commodity is an immutable catalog entry. Rarity is in [0,1]; rarer goods
// get a smaller baseline stock, which makes their price more sensitive to
// supply swings.
type Commodity struct {
	Name       string
	UnitWeight float64
	MinPrice   float64
	MaxPrice   float64
	Rarity     float64
}

// Commodities is the full tradable catalog, sorted alphabetically.
var Commodities = []Commodity{
	{Name: AntimatterName, UnitWeight: 0.5, MinPrice: 2500, MaxPrice: 15000, Rarity: 0.95},
	{Name: DarkMatterName, UnitWeight: 0.75, MinPrice: 5000, MaxPrice: 50000, Rarity: 0.98},
	{Name: GirlMatterName, UnitWeight: 0.5, MinPrice: 10000, MaxPrice: 100000, Rarity: 0.99},
	{Name: H2OName, UnitWeight: 1.0, MinPrice: 5, MaxPrice: 50, Rarity: 0.1},
	{Name: "Medical Kits", UnitWeight: 0.01, MinPrice: 400, MaxPrice: 4000, Rarity: 0.7},
	{Name: NutriPasteName, UnitWeight: 0.5, MinPrice: 10, MaxPrice: 100, Rarity: 0.1},
	{Name: "PC Chips", UnitWeight: 0.01, MinPrice: 20, MaxPrice: 2000, Rarity: 0.65},
	{Name: PowerCellName, UnitWeight: 0.1, MinPrice: 50, MaxPrice: 250, Rarity: 0.5},
	{Name: TeaName, UnitWeight: 0.1, MinPrice: 7, MaxPrice: 70000, Rarity: 0.5},
	{Name: FuelName, UnitWeight: 0.20, MinPrice: 10, MaxPrice: 150, Rarity: 0.2},
	{Name: StimPacksName, UnitWeight: 0.25, MinPrice: 500, MaxPrice: 5000, Rarity: 0.85},
	{Name: ClothName, UnitWeight: 0.25, MinPrice: 100, MaxPrice: 1000, Rarity: 0.6},
	{Name: OreName, UnitWeight: 5.0, MinPrice: 50, MaxPrice: 2500, Rarity: 0.8},
	{Name: MeshName, UnitWeight: 2.5, MinPrice: 5000, MaxPrice: 25000, Rarity: 0.9},
}

var commoditiesByName = func() map[string]Commodity {
	m := make(map[string]Commodity, len(Commodities))
	for _, c := range Commodities {
		m[c.Name] = c
	}
	return m
}()

// CommodityByName returns the catalog entry for name. The second return is
// false for unknown commodities.
func CommodityByName(name string) (Commodity, bool) {
	c, ok := commoditiesByName[name]
	return c, ok
}

// UnitWeight returns the per-unit weight for name, or 0 for unknown names.
func UnitWeight(name string) float64 {
	return commoditiesByName[name].UnitWeight
}
