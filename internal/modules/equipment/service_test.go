package equipment

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
		Cash:                   100000,
		GamePhase:              1,
		CargoCapacity:          500,
		ShipHealth:             100,
		LaserHealth:            100,
		Cargo:                  make(map[string]*domain.CargoItem),
		Warehouse:              make(map[int]map[string]*domain.WarehouseItem),
		VenueTradeBans:         make(map[int]int),
		DailyTransactionCounts: make(map[string]int),
	}
}

func TestBuyLaserTiering(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()

	assert.ErrorIs(t, svc.Buy(state, catalog.LaserMk2), ErrMissingPrerequisite)

	require.NoError(t, svc.Buy(state, catalog.LaserMk1))
	assert.Equal(t, 1, state.Equipment.LaserTier)
	assert.Equal(t, 95000.0, state.Cash)

	assert.ErrorIs(t, svc.Buy(state, catalog.LaserMk1), ErrAlreadyOwned)
	assert.ErrorIs(t, svc.Buy(state, catalog.LaserMk3), ErrMissingPrerequisite)

	state.Cash = 60000
	state.LaserHealth = 40
	require.NoError(t, svc.Buy(state, catalog.LaserMk2))
	assert.Equal(t, 2, state.Equipment.LaserTier)
	assert.Equal(t, catalog.MaxLaserHealth, state.LaserHealth, "new laser installs at full health")
}

func TestBuyRejections(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()

	assert.ErrorIs(t, svc.Buy(state, "warp_core"), ErrUnknownItem)

	state.Cash = 100
	assert.ErrorIs(t, svc.Buy(state, catalog.Scanner), domain.ErrInsufficientFunds)
}

func TestBuyConsumables(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()

	require.NoError(t, svc.Buy(state, catalog.PlasmaCannon))
	require.NoError(t, svc.Buy(state, catalog.ShieldGen))
	assert.True(t, state.Equipment.PlasmaCannons)
	assert.True(t, state.Equipment.ShieldGenerator)
}

func TestRepairHull(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()
	state.ShipHealth = 73

	cost, err := svc.RepairHull(state)
	require.NoError(t, err)

	// ceil((150-73)/5) = 16 increments at 1000.
	assert.Equal(t, 16000.0, cost)
	assert.Equal(t, catalog.MaxRepairHealth, state.ShipHealth)

	_, err = svc.RepairHull(state)
	assert.ErrorIs(t, err, ErrAtMaximum)
}

func TestRepairLaser(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()

	_, err := svc.RepairLaser(state)
	assert.ErrorIs(t, err, ErrNoLaser)

	state.Equipment.LaserTier = 1
	state.LaserHealth = 80
	cost, err := svc.RepairLaser(state)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, cost) // 4 increments at 2000
	assert.Equal(t, catalog.MaxLaserHealth, state.LaserHealth)

	state.LaserHealth = 10
	state.Cash = 100
	_, err = svc.RepairLaser(state)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestExpandCargoBay(t *testing.T) {
	svc := New(zerolog.Nop())
	state := newState()
	state.AddCargo(catalog.MeshName, 3, 3000)

	require.NoError(t, svc.ExpandCargoBay(state, 2))
	assert.Equal(t, 700.0, state.CargoCapacity)
	assert.Equal(t, 96000.0, state.Cash)
	assert.Equal(t, 1, state.CargoQuantity(catalog.MeshName))

	assert.ErrorIs(t, svc.ExpandCargoBay(state, 2), domain.ErrInsufficientStock)

	state.AddCargo(catalog.MeshName, 100, 3000)
	state.Cash = 1e9
	assert.ErrorIs(t, svc.ExpandCargoBay(state, 50), domain.ErrCapacityExceeded)
}
