package contracts

import (
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
	return &domain.GameState{
		Day:                    1,
		Cash:                   20000,
		GamePhase:              1,
		Cargo:                  make(map[string]*domain.CargoItem),
		Warehouse:              make(map[int]map[string]*domain.WarehouseItem),
		VenueTradeBans:         make(map[int]int),
		DailyTransactionCounts: make(map[string]int),
	}
}

func TestGenerateCommodityUniqueness(t *testing.T) {
	svc := newService(1)
	state := newState()

	for tick := 0; tick < 200; tick++ {
		svc.Generate(state)
		seen := map[string]bool{}
		for _, c := range append(append([]*domain.Contract{}, state.ActiveContracts...), state.AvailableContracts...) {
			assert.False(t, seen[c.Commodity], "duplicate commodity %s at tick %d", c.Commodity, tick)
			seen[c.Commodity] = true
		}
	}
}

func TestGenerateSkipsCurrentAndBannedVenues(t *testing.T) {
	svc := newService(2)
	state := newState()
	state.CurrentVenue = 0
	state.VenueTradeBans[3] = 2

	for tick := 0; tick < 100; tick++ {
		svc.Generate(state)
		for _, c := range state.AvailableContracts {
			assert.NotEqual(t, 0, c.Destination)
			assert.NotEqual(t, 3, c.Destination)
			assert.GreaterOrEqual(t, c.DaysRemaining, 1)
			assert.LessOrEqual(t, c.DaysRemaining, 3)
			assert.InDelta(t, c.Reward*0.5, c.Penalty, 0.5, "penalty is half the reward")
		}
		state.AvailableContracts = nil
	}
}

func TestAcceptMovesContractAndEnforcesLimit(t *testing.T) {
	svc := newService(3)
	state := newState()
	state.AvailableContracts = []*domain.Contract{
		{ID: "c1", Firm: "Choam Corp", Commodity: catalog.OreName, Quantity: 10, Destination: 2, Reward: 1000, Penalty: 500, DaysRemaining: 2},
	}

	c, err := svc.Accept(state, "c1")
	require.NoError(t, err)
	assert.Empty(t, state.AvailableContracts)
	require.Len(t, state.ActiveContracts, 1)
	assert.Equal(t, "c1", c.ID)

	_, err = svc.Accept(state, "c1")
	assert.ErrorIs(t, err, ErrUnknownContract)

	for i := 0; i < catalog.ContractLimit(1); i++ {
		state.ActiveContracts = append(state.ActiveContracts, &domain.Contract{ID: "x"})
	}
	state.AvailableContracts = []*domain.Contract{{ID: "c2"}}
	_, err = svc.Accept(state, "c2")
	assert.ErrorIs(t, err, ErrContractLimit)
}

func TestResolveFulfillsArrivedStock(t *testing.T) {
	svc := newService(4)
	state := newState()
	state.Day = 5
	state.ActiveContracts = []*domain.Contract{
		{ID: "c1", Firm: "Federation Supply", Commodity: catalog.OreName, Quantity: 10, Destination: 2, Reward: 5000, Penalty: 2500, DaysRemaining: 2},
	}
	state.Warehouse[2] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 10, OriginalAvgCost: 100, ArrivalDay: 4},
	}
	report := &domain.DailyReport{Day: state.Day}

	svc.Resolve(state, report)

	assert.Empty(t, state.ActiveContracts)
	assert.Equal(t, 25000.0, state.Cash)
	_, hasWh := state.Warehouse[2]
	assert.False(t, hasWh, "emptied warehouse entries are removed")
	require.Len(t, report.Events, 1)
	assert.Equal(t, domain.TagContract, report.Events[0].Tag)
}

func TestResolveIgnoresInTransitStock(t *testing.T) {
	svc := newService(5)
	state := newState()
	state.Day = 5
	state.ActiveContracts = []*domain.Contract{
		{ID: "c1", Firm: "Choam Corp", Commodity: catalog.OreName, Quantity: 10, Destination: 2, Reward: 5000, Penalty: 2500, DaysRemaining: 3},
	}
	state.Warehouse[2] = map[string]*domain.WarehouseItem{
		catalog.OreName: {Quantity: 10, OriginalAvgCost: 100, ArrivalDay: 7},
	}
	report := &domain.DailyReport{Day: state.Day}

	svc.Resolve(state, report)

	require.Len(t, state.ActiveContracts, 1)
	assert.Equal(t, 2, state.ActiveContracts[0].DaysRemaining)
	assert.Equal(t, 20000.0, state.Cash)
}

func TestResolveBreachChargesPenaltyAndBansVenue(t *testing.T) {
	svc := newService(6)
	state := newState()
	state.ActiveContracts = []*domain.Contract{
		{ID: "c1", Firm: "Cyberdyne Systems", Commodity: catalog.ClothName, Quantity: 10, Destination: 4, Reward: 5000, Penalty: 2500, DaysRemaining: 1},
	}
	report := &domain.DailyReport{Day: state.Day}

	svc.Resolve(state, report)

	assert.Empty(t, state.ActiveContracts)
	assert.Equal(t, 17500.0, state.Cash)
	assert.Equal(t, catalog.TradeBanDuration, state.VenueTradeBans[4])
	require.Len(t, report.Events, 1)
	assert.Equal(t, domain.TagBreach, report.Events[0].Tag)
}

func TestTickBansExpire(t *testing.T) {
	svc := newService(7)
	state := newState()
	state.VenueTradeBans[2] = 2
	state.VenueTradeBans[5] = 1

	svc.TickBans(state)
	assert.Equal(t, 1, state.VenueTradeBans[2])
	_, banned := state.VenueTradeBans[5]
	assert.False(t, banned)

	svc.TickBans(state)
	assert.Empty(t, state.VenueTradeBans)
}
