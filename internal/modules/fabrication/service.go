// Package fabrication implements the on-board fabricator deck: weave mesh
// and stim-packs, each producible once per day from held materials.
package fabrication

import (
	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

// Service owns the fabrication recipes.
type Service struct {
	log zerolog.Logger
}

// New creates a fabrication service.
func New(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("component", "fabrication").Logger()}
}

// FabricateMesh converts 1 ore + 1 cloth + 2500 cash per unit into weave
// mesh. The output cost basis carries the inputs at their average cost plus
// the cash fee. Once per day.
func (s *Service) FabricateMesh(state *domain.GameState, qty int) error {
	if state.MeshFabricatedToday {
		return domain.ErrDailyLimitReached
	}
	if qty <= 0 || state.CargoQuantity(catalog.OreName) < qty || state.CargoQuantity(catalog.ClothName) < qty {
		return domain.ErrInsufficientStock
	}
	cashCost := float64(qty) * catalog.MeshFabricationCost
	if state.Cash < cashCost {
		return domain.ErrInsufficientFunds
	}

	unitBasis := state.Cargo[catalog.OreName].AverageCost +
		state.Cargo[catalog.ClothName].AverageCost +
		catalog.MeshFabricationCost

	state.RemoveCargo(catalog.OreName, qty)
	state.RemoveCargo(catalog.ClothName, qty)
	state.AddCargo(catalog.MeshName, qty, unitBasis)
	state.Cash -= cashCost
	state.MeshFabricatedToday = true

	state.Log(domain.TagBuy, "FABRICATION: Created %d %s. Daily limit reached.", qty, catalog.MeshName)
	s.log.Info().Int("qty", qty).Msg("mesh fabricated")
	return nil
}

// FabricateStims converts 2 H2O + 1 nutri-paste + 250 cash per unit into
// stim-packs. Once per day.
func (s *Service) FabricateStims(state *domain.GameState, qty int) error {
	if state.StimsFabricatedToday {
		return domain.ErrDailyLimitReached
	}
	if qty <= 0 || state.CargoQuantity(catalog.H2OName) < qty*2 || state.CargoQuantity(catalog.NutriPasteName) < qty {
		return domain.ErrInsufficientStock
	}
	cashCost := float64(qty) * catalog.StimFabricationCost
	if state.Cash < cashCost {
		return domain.ErrInsufficientFunds
	}

	unitBasis := 2*state.Cargo[catalog.H2OName].AverageCost +
		state.Cargo[catalog.NutriPasteName].AverageCost +
		catalog.StimFabricationCost

	state.RemoveCargo(catalog.H2OName, qty*2)
	state.RemoveCargo(catalog.NutriPasteName, qty)
	state.AddCargo(catalog.StimPacksName, qty, unitBasis)
	state.Cash -= cashCost
	state.StimsFabricatedToday = true

	state.Log(domain.TagBuy, "FABRICATION: Created %d %s. Daily limit reached.", qty, catalog.StimPacksName)
	s.log.Info().Int("qty", qty).Msg("stims fabricated")
	return nil
}

// ResetDailyFlags reopens both fabricators. Called by the tick pipeline.
func (s *Service) ResetDailyFlags(state *domain.GameState) {
	state.MeshFabricatedToday = false
	state.StimsFabricatedToday = false
}
