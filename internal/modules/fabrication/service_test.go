package fabrication

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

func newState() *domain.GameState {
	return &domain.GameState{
		Day:                    1,
		Cash:                   20000,
		GamePhase:              1,
		CargoCapacity:          500,
		Cargo:                  make(map[string]*domain.CargoItem),
		Warehouse:              make(map[int]map[string]*domain.WarehouseItem),
		VenueTradeBans:         make(map[int]int),
		DailyTransactionCounts: make(map[string]int),
	}
}

func TestFabricateMesh(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()
	state.AddCargo(catalog.OreName, 5, 200)
	state.AddCargo(catalog.ClothName, 5, 300)
	weightBefore := state.CargoWeight

	require.NoError(t, svc.FabricateMesh(state, 2))

	assert.Equal(t, 3, state.CargoQuantity(catalog.OreName))
	assert.Equal(t, 3, state.CargoQuantity(catalog.ClothName))
	assert.Equal(t, 2, state.CargoQuantity(catalog.MeshName))
	// 200 ore + 300 cloth + 2500 fee per unit.
	assert.InDelta(t, 3000.0, state.Cargo[catalog.MeshName].AverageCost, 1e-9)
	assert.Equal(t, 15000.0, state.Cash)
	// Inputs out (5.0 + 0.25 each), mesh in (2.5 each).
	assert.InDelta(t, weightBefore+2*(2.5-5.0-0.25), state.CargoWeight, 1e-9)
	assert.True(t, state.MeshFabricatedToday)

	assert.ErrorIs(t, svc.FabricateMesh(state, 1), domain.ErrDailyLimitReached)
}

func TestFabricateMeshRejections(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()

	assert.ErrorIs(t, svc.FabricateMesh(state, 1), domain.ErrInsufficientStock)

	state.AddCargo(catalog.OreName, 1, 200)
	state.AddCargo(catalog.ClothName, 1, 300)
	state.Cash = 100
	assert.ErrorIs(t, svc.FabricateMesh(state, 1), domain.ErrInsufficientFunds)
}

func TestFabricateStims(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()
	state.AddCargo(catalog.H2OName, 10, 20)
	state.AddCargo(catalog.NutriPasteName, 5, 40)

	require.NoError(t, svc.FabricateStims(state, 3))

	assert.Equal(t, 4, state.CargoQuantity(catalog.H2OName))
	assert.Equal(t, 2, state.CargoQuantity(catalog.NutriPasteName))
	assert.Equal(t, 3, state.CargoQuantity(catalog.StimPacksName))
	// 2x20 H2O + 40 paste + 250 fee per unit.
	assert.InDelta(t, 330.0, state.Cargo[catalog.StimPacksName].AverageCost, 1e-9)
	assert.Equal(t, 20000.0-750, state.Cash)
	assert.True(t, state.StimsFabricatedToday)

	assert.ErrorIs(t, svc.FabricateStims(state, 1), domain.ErrDailyLimitReached)
}

func TestResetDailyFlags(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()
	state.MeshFabricatedToday = true
	state.StimsFabricatedToday = true

	svc.ResetDailyFlags(state)

	assert.False(t, state.MeshFabricatedToday)
	assert.False(t, state.StimsFabricatedToday)
}
