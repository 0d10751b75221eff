package catalog

// EquipmentID is a fixed, enumerated upgrade identifier. The set is closed;
// the engine never accepts free-form equipment keys.
type EquipmentID string

const (
	LaserMk1     EquipmentID = "laser_mk1"
	LaserMk2     EquipmentID = "laser_mk2"
	LaserMk3     EquipmentID = "laser_mk3"
	Scanner      EquipmentID = "scanner"
	PlasmaCannon EquipmentID = "plasma_cannon"
	ShieldGen    EquipmentID = "shield_gen"
)

// EquipmentType partitions the shop by function.
type EquipmentType string

const (
	EquipmentLaser   EquipmentType = "laser"
	EquipmentDefense EquipmentType = "defense"
	EquipmentScanner EquipmentType = "scanner"
)

// EquipmentItem is a shop catalog entry. Consumable defense items can burn
// out during transit; lasers are tiered and each tier requires the previous.
type EquipmentItem struct {
	ID          EquipmentID
	Name        string
	Type        EquipmentType
	Level       int
	Cost        float64
	Description string
	Consumable  bool
	Requires    EquipmentID // zero value means no prerequisite
}

// ShopItems is the upgrade shop inventory.
var ShopItems = []EquipmentItem{
	{ID: LaserMk1, Name: "Mining Laser Mk I", Type: EquipmentLaser, Level: 1, Cost: 5000, Description: "Mines Titanium Ore."},
	{ID: LaserMk2, Name: "Mining Laser Mk II", Type: EquipmentLaser, Level: 2, Cost: 50000, Description: "Mines Ore + Antimatter. Req Mk I.", Requires: LaserMk1},
	{ID: LaserMk3, Name: "Mining Laser Mk III", Type: EquipmentLaser, Level: 3, Cost: 500000, Description: "Mines Ore, Anti, Dark Matter. Req Mk II.", Requires: LaserMk2},
	{ID: Scanner, Name: "Mineral Scanner", Type: EquipmentScanner, Level: 1, Cost: 10000, Description: "Analyze asteroid density and composition."},
	{ID: PlasmaCannon, Name: "Plasma Cannons", Type: EquipmentDefense, Level: 1, Cost: 15000, Description: "Deterrent against pirate raids. (Consumable)", Consumable: true},
	{ID: ShieldGen, Name: "Deflector Shields", Type: EquipmentDefense, Level: 1, Cost: 25000, Description: "Mitigates hull damage. (Consumable)", Consumable: true},
}

// ShopItemByID returns the shop entry for id.
func ShopItemByID(id EquipmentID) (EquipmentItem, bool) {
	for _, item := range ShopItems {
		if item.ID == id {
			return item, true
		}
	}
	return EquipmentItem{}, false
}
