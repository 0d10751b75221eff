package market

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

func newState(seed int64) *domain.GameState {
	svc := newService(seed)
	return &domain.GameState{
		Day:                    1,
		Cash:                   20000,
		CargoCapacity:          500,
		GamePhase:              1,
		Cargo:                  make(map[string]*domain.CargoItem),
		Warehouse:              make(map[int]map[string]*domain.WarehouseItem),
		VenueTradeBans:         make(map[int]int),
		DailyTransactionCounts: make(map[string]int),
		Markets:                svc.GenerateAll(0),
	}
}

func TestGenerateBounds(t *testing.T) {
	svc := newService(1)
	for _, local := range []bool{true, false} {
		m := svc.Generate(local)
		require.Len(t, m, len(catalog.Commodities))
		for _, c := range catalog.Commodities {
			item := m[c.Name]
			require.NotNil(t, item, c.Name)
			assert.GreaterOrEqual(t, item.Price, c.MinPrice, c.Name)
			assert.LessOrEqual(t, item.Price, c.MaxPrice, c.Name)
			assert.GreaterOrEqual(t, item.Quantity, 1, c.Name)
			assert.Greater(t, item.StandardQuantity, 0, c.Name)
			assert.Zero(t, item.DepletionDays, c.Name)
		}
	}
}

func TestEvolvePricesStayInBand(t *testing.T) {
	svc := newService(99)
	state := newState(99)
	state.Day = 5

	phaseMult := catalog.PhasePriceMultiplier(state.GamePhase)
	h2oMin := math.Pow(1.05, float64(state.Day))
	h2oMax := math.Pow(1.10, float64(state.Day))

	for tick := 0; tick < 10000; tick++ {
		svc.Evolve(state)
		for _, m := range state.Markets {
			for _, c := range catalog.Commodities {
				item := m[c.Name]
				switch c.Name {
				case catalog.TeaName:
					// log-uniform draw, exempt from the band clamp
				case catalog.H2OName, catalog.NutriPasteName:
					assert.GreaterOrEqual(t, item.Price, math.Floor(c.MinPrice*h2oMin), c.Name)
					assert.LessOrEqual(t, item.Price, math.Ceil(c.MaxPrice*h2oMax), c.Name)
				case catalog.FuelName:
					assert.GreaterOrEqual(t, item.Price, math.Floor(c.MinPrice*phaseMult), c.Name)
					assert.LessOrEqual(t, item.Price, math.Ceil(c.MaxPrice*phaseMult*1.15), c.Name)
				default:
					assert.GreaterOrEqual(t, item.Price, math.Floor(c.MinPrice*phaseMult), c.Name)
					assert.LessOrEqual(t, item.Price, math.Ceil(c.MaxPrice*phaseMult), c.Name)
				}
				assert.GreaterOrEqual(t, item.Quantity, 0, c.Name)
			}
		}
	}
}

func TestTeaPriceIsFatTailed(t *testing.T) {
	svc := newService(7)
	state := newState(7)

	lo, hi := math.MaxFloat64, 0.0
	for tick := 0; tick < 1000; tick++ {
		svc.Evolve(state)
		for _, m := range state.Markets {
			p := m[catalog.TeaName].Price
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	// A log-uniform draw across 7..70000 visits both tails.
	assert.Less(t, lo, 100.0)
	assert.Greater(t, hi, 10000.0)
}

func TestEvolveDeterministicForSameSeed(t *testing.T) {
	a, b := newState(555), newState(555)
	svcA, svcB := newService(123), newService(123)

	for tick := 0; tick < 10; tick++ {
		svcA.Evolve(a)
		svcB.Evolve(b)
	}

	require.Equal(t, len(a.Markets), len(b.Markets))
	for i := range a.Markets {
		for name, itemA := range a.Markets[i] {
			itemB := b.Markets[i][name]
			require.NotNil(t, itemB, name)
			assert.Equal(t, *itemA, *itemB, name)
		}
	}
}

func TestForcedRestockAfterDepletion(t *testing.T) {
	svc := newService(3)
	state := newState(3)
	item := state.Markets[0][catalog.OreName]
	item.Quantity = 0
	item.DepletionDays = 2

	svc.Evolve(state)

	expected := int(math.Floor(float64(item.StandardQuantity) * 0.5))
	assert.Equal(t, expected, item.Quantity)
	assert.Zero(t, item.DepletionDays)
}

func TestApplyPhaseScaling(t *testing.T) {
	svc := newService(4)
	state := newState(4)
	item := state.Markets[2][catalog.ClothName]
	item.Quantity = 100
	item.StandardQuantity = 400

	svc.ApplyPhaseScaling(state, 3)

	assert.Equal(t, 600, item.Quantity) // x3 multiplier, x2 glut
	assert.Equal(t, 1200, item.StandardQuantity)
}
