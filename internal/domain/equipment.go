package domain

import "github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"

// EquipmentSet is the fixed capability set of owned ship upgrades. Lasers
// are tiered; consumable defense gear can burn out during transit.
type EquipmentSet struct {
	LaserTier       int  `json:"laser_tier"` // 0 = none, 1..3 = Mk I..III
	Scanner         bool `json:"scanner"`
	PlasmaCannons   bool `json:"plasma_cannons"`
	ShieldGenerator bool `json:"shield_generator"`
}

// Has reports whether the upgrade identified by id is owned.
func (e EquipmentSet) Has(id catalog.EquipmentID) bool {
	switch id {
	case catalog.LaserMk1:
		return e.LaserTier >= 1
	case catalog.LaserMk2:
		return e.LaserTier >= 2
	case catalog.LaserMk3:
		return e.LaserTier >= 3
	case catalog.Scanner:
		return e.Scanner
	case catalog.PlasmaCannon:
		return e.PlasmaCannons
	case catalog.ShieldGen:
		return e.ShieldGenerator
	}
	return false
}

// LaserYieldMultiplier returns the mining yield multiplier for the owned
// laser tier.
func (e EquipmentSet) LaserYieldMultiplier() int {
	switch e.LaserTier {
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return 5
	}
	return 0
}
