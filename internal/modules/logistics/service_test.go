package logistics

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

func newService(seed int64) *Service {
	return New(random.New(seed), zerolog.Nop())
}

func newState() *domain.GameState {
	s := &domain.GameState{
		Day:                    1,
		Cash:                   20000,
		GamePhase:              1,
		CargoCapacity:          500,
		Cargo:                  make(map[string]*domain.CargoItem),
		Warehouse:              make(map[int]map[string]*domain.WarehouseItem),
		VenueTradeBans:         make(map[int]int),
		DailyTransactionCounts: make(map[string]int),
	}
	s.AddCargo(catalog.FuelName, 100, 10)
	return s
}

func TestShipFromCargo(t *testing.T) {
	svc := newService(1)
	state := newState()
	state.AddCargo(catalog.OreName, 20, 100)

	receipt, err := svc.Ship(state, ShipRequest{
		Commodity:   catalog.OreName,
		Quantity:    10,
		Destination: 1,
		Tier:        1,
	})
	require.NoError(t, err)

	dist := catalog.Distance(0, 1)
	expectedFuel := int(math.Ceil(float64(dist) * 10.0 / 50))
	expectedFee := math.Ceil((10*100*0.05 + float64(dist)*100) * 2)

	assert.Equal(t, expectedFuel, receipt.FuelFee)
	assert.Equal(t, expectedFee, receipt.CashFee)
	assert.Equal(t, state.Day+1, receipt.ArrivalDay)
	assert.Equal(t, 20000-expectedFee, state.Cash)
	assert.Equal(t, 10, state.CargoQuantity(catalog.OreName))
	assert.Equal(t, 100-expectedFuel, state.CargoQuantity(catalog.FuelName))

	item := state.Warehouse[1][catalog.OreName]
	require.NotNil(t, item)
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, 100.0, item.OriginalAvgCost)
}

func TestShipMergesCostBasis(t *testing.T) {
	svc := newService(2)
	state := newState()
	state.Warehouse[2] = map[string]*domain.WarehouseItem{
		catalog.ClothName: {Quantity: 10, OriginalAvgCost: 100, ArrivalDay: 1},
	}
	state.AddCargo(catalog.ClothName, 30, 200)
	state.Cash = 1e6

	_, err := svc.Ship(state, ShipRequest{
		Commodity:   catalog.ClothName,
		Quantity:    30,
		Destination: 2,
		Tier:        2,
	})
	require.NoError(t, err)

	item := state.Warehouse[2][catalog.ClothName]
	require.NotNil(t, item)
	assert.Equal(t, 40, item.Quantity)
	assert.InDelta(t, 175.0, item.OriginalAvgCost, 1e-9)
	assert.Equal(t, state.Day+2, item.ArrivalDay)
}

func TestForwardFromWarehouse(t *testing.T) {
	svc := newService(3)
	state := newState()
	state.CurrentVenue = 0
	state.Day = 5
	state.Warehouse[2] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 10, OriginalAvgCost: 100, ArrivalDay: 4},
	}

	_, err := svc.Ship(state, ShipRequest{
		Commodity:     catalog.OreName,
		Quantity:      10,
		Destination:   5,
		Tier:          3,
		FromWarehouse: true,
		SourceVenue:   2,
	})
	require.NoError(t, err)

	_, stillThere := state.Warehouse[2]
	assert.False(t, stillThere, "drained source entries are removed")
	assert.Equal(t, 10, state.Warehouse[5][catalog.OreName].Quantity)
	assert.Equal(t, 8, state.Warehouse[5][catalog.OreName].ArrivalDay)
}

func TestShipRejections(t *testing.T) {
	svc := newService(4)
	state := newState()
	state.AddCargo(catalog.OreName, 20, 100)

	_, err := svc.Ship(state, ShipRequest{Commodity: catalog.OreName, Quantity: 10, Destination: 0, Tier: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDestination, "same-venue shipment")

	state.VenueTradeBans[3] = 2
	_, err = svc.Ship(state, ShipRequest{Commodity: catalog.OreName, Quantity: 10, Destination: 3, Tier: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDestination, "banned venue")

	_, err = svc.Ship(state, ShipRequest{Commodity: catalog.OreName, Quantity: 10, Destination: 1, Tier: 9})
	assert.ErrorIs(t, err, ErrInvalidTier)

	_, err = svc.Ship(state, ShipRequest{Commodity: catalog.OreName, Quantity: 50, Destination: 1, Tier: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	state.RemoveCargo(catalog.FuelName, 100)
	_, err = svc.Ship(state, ShipRequest{Commodity: catalog.OreName, Quantity: 10, Destination: 1, Tier: 1})
	assert.ErrorIs(t, err, ErrInsufficientFuel)

	state.AddCargo(catalog.FuelName, 100, 10)
	state.Cash = 0
	_, err = svc.Ship(state, ShipRequest{Commodity: catalog.OreName, Quantity: 10, Destination: 1, Tier: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestForwardRequiresArrivedStock(t *testing.T) {
	svc := newService(5)
	state := newState()
	state.Day = 2
	state.Warehouse[2] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 10, OriginalAvgCost: 100, ArrivalDay: 4},
	}

	_, err := svc.Ship(state, ShipRequest{
		Commodity:     catalog.OreName,
		Quantity:      10,
		Destination:   5,
		Tier:          1,
		FromWarehouse: true,
		SourceVenue:   2,
	})
	assert.ErrorIs(t, err, ErrNotArrived)
}

func TestClaim(t *testing.T) {
	svc := newService(6)
	state := newState()
	state.CurrentVenue = 2
	state.Day = 5
	state.Warehouse[2] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 10, OriginalAvgCost: 120, ArrivalDay: 4},
	}

	err := svc.Claim(state, 2, catalog.OreName, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, state.CargoQuantity(catalog.OreName))
	assert.InDelta(t, 120.0, state.Cargo[catalog.OreName].AverageCost, 1e-9)
	assert.Equal(t, 6, state.Warehouse[2][catalog.OreName].Quantity)

	err = svc.Claim(state, 2, catalog.OreName, 6)
	require.NoError(t, err)
	_, left := state.Warehouse[2]
	assert.False(t, left, "emptied warehouse is removed")
}

func TestClaimRejections(t *testing.T) {
	svc := newService(7)
	state := newState()
	state.CurrentVenue = 0
	state.Day = 5
	state.Warehouse[2] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 100, OriginalAvgCost: 120, ArrivalDay: 4},
	}

	assert.ErrorIs(t, svc.Claim(state, 2, catalog.OreName, 10), domain.ErrLocationMismatch)

	state.CurrentVenue = 2
	assert.ErrorIs(t, svc.Claim(state, 2, catalog.OreName, 200), domain.ErrInsufficientStock)

	state.Warehouse[2][catalog.OreName].ArrivalDay = 9
	assert.ErrorIs(t, svc.Claim(state, 2, catalog.OreName, 10), ErrNotArrived)

	state.Warehouse[2][catalog.OreName].ArrivalDay = 4
	// 100 ore at 5 T each cannot fit a 500 T hold already holding fuel.
	assert.ErrorIs(t, svc.Claim(state, 2, catalog.OreName, 100), domain.ErrInsufficientCargoSpace)
}

func TestTickSeizureWindow(t *testing.T) {
	svc := newService(8)
	state := newState()
	state.Warehouse[3] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 10, OriginalAvgCost: 100, ArrivalDay: 10},
	}

	// Present through D+3, seized at D+4.
	for day := 10; day <= 13; day++ {
		state.Day = day
		report := &domain.DailyReport{Day: day}
		svc.Tick(state, report)
		require.NotNil(t, state.Warehouse[3][catalog.OreName], "day %d", day)
	}

	state.Day = 14
	report := &domain.DailyReport{Day: 14}
	svc.Tick(state, report)
	_, present := state.Warehouse[3]
	assert.False(t, present)
	require.Len(t, report.Events, 1)
	assert.Equal(t, domain.TagDanger, report.Events[0].Tag)
}

func TestTickDelayOnlyAffectsInTransit(t *testing.T) {
	svc := newService(9)
	state := newState()
	state.Day = 1
	state.Warehouse[3] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 10, OriginalAvgCost: 100, ArrivalDay: 3},
	}

	delayed := false
	for i := 0; i < 200 && !delayed; i++ {
		report := &domain.DailyReport{Day: state.Day}
		svc.Tick(state, report)
		delayed = state.Warehouse[3][catalog.OreName].ArrivalDay > 3
		state.Warehouse[3][catalog.OreName].ArrivalDay = 3
	}
	assert.True(t, delayed, "a 10%% delay should land within 200 rolls")
}
