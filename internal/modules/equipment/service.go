// Package equipment implements the upgrade shop, hull and laser repairs,
// and cargo bay expansion.
package equipment

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

var (
	ErrUnknownItem         = errors.New("unknown shop item")
	ErrAlreadyOwned        = errors.New("equipment already owned")
	ErrMissingPrerequisite = errors.New("missing prerequisite equipment")
	ErrNoLaser             = errors.New("no mining laser installed")
	ErrAtMaximum           = errors.New("already at maximum")
)

// Service owns shop purchases, repairs and hold expansion.
type Service struct {
	log zerolog.Logger
}

// New creates an equipment service.
func New(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("component", "equipment").Logger()}
}

// Buy purchases a shop item. Laser tiers require the previous tier and
// reset laser health to full on install.
func (s *Service) Buy(state *domain.GameState, id catalog.EquipmentID) error {
	item, ok := catalog.ShopItemByID(id)
	if !ok {
		return ErrUnknownItem
	}
	if state.Equipment.Has(id) {
		return ErrAlreadyOwned
	}
	if item.Requires != "" && !state.Equipment.Has(item.Requires) {
		return ErrMissingPrerequisite
	}
	if state.Cash < item.Cost {
		return domain.ErrInsufficientFunds
	}

	state.Cash -= item.Cost
	switch id {
	case catalog.LaserMk1, catalog.LaserMk2, catalog.LaserMk3:
		state.Equipment.LaserTier = item.Level
		state.LaserHealth = catalog.MaxLaserHealth
	case catalog.Scanner:
		state.Equipment.Scanner = true
	case catalog.PlasmaCannon:
		state.Equipment.PlasmaCannons = true
	case catalog.ShieldGen:
		state.Equipment.ShieldGenerator = true
	}

	state.Log(domain.TagBuy, "SHOP: Installed %s.", item.Name)
	s.log.Info().Str("item", string(id)).Float64("cost", item.Cost).Msg("equipment purchased")
	return nil
}

// RepairHull restores the hull to its reinforced maximum, billed per 5%
// increment.
func (s *Service) RepairHull(state *domain.GameState) (float64, error) {
	if state.ShipHealth >= catalog.MaxRepairHealth {
		return 0, ErrAtMaximum
	}
	needed := math.Ceil(float64(catalog.MaxRepairHealth-state.ShipHealth) / catalog.RepairIncrement)
	cost := needed * catalog.RepairCost
	if state.Cash < cost {
		return 0, domain.ErrInsufficientFunds
	}
	state.Cash -= cost
	state.ShipHealth = catalog.MaxRepairHealth
	state.Log(domain.TagRepair, "REPAIR: Hull fully restored.")
	return cost, nil
}

// RepairLaser realigns an installed laser to full health, billed per 5%
// increment.
func (s *Service) RepairLaser(state *domain.GameState) (float64, error) {
	if state.Equipment.LaserTier == 0 {
		return 0, ErrNoLaser
	}
	if state.LaserHealth >= catalog.MaxLaserHealth {
		return 0, ErrAtMaximum
	}
	needed := math.Ceil(float64(catalog.MaxLaserHealth-state.LaserHealth) / catalog.RepairIncrement)
	cost := needed * catalog.LaserRepairCost
	if state.Cash < cost {
		return 0, domain.ErrInsufficientFunds
	}
	state.Cash -= cost
	state.LaserHealth = catalog.MaxLaserHealth
	state.Log(domain.TagRepair, "REPAIR: Laser fully realigned.")
	return cost, nil
}

// ExpandCargoBay adds 100 T units to the hold, each costing cash plus one
// weave mesh, capped at the phase ceiling.
func (s *Service) ExpandCargoBay(state *domain.GameState, units int) error {
	if units <= 0 {
		return domain.ErrInsufficientStock
	}
	newCap := state.CargoCapacity + float64(units*catalog.CargoUpgradeAmount)
	if newCap > float64(catalog.MaxCargoCapacity(state.GamePhase)) {
		return domain.ErrCapacityExceeded
	}
	cost := float64(units) * catalog.CargoUpgradeCost
	if state.Cash < cost {
		return domain.ErrInsufficientFunds
	}
	if state.CargoQuantity(catalog.MeshName) < units {
		return domain.ErrInsufficientStock
	}

	state.Cash -= cost
	state.RemoveCargo(catalog.MeshName, units)
	state.CargoCapacity = newCap
	state.Log(domain.TagBuy, "UPGRADE: Cargo bay expanded by %d T.", units*catalog.CargoUpgradeAmount)
	return nil
}
