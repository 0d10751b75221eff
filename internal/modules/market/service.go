// Package market maintains per-venue price/stock state and advances it
// once per day tick.
package market

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

// marketGlutFactor makes stock grow faster than demand at a phase start,
// depressing prices until the walk re-equilibrates.
const marketGlutFactor = 2.0

// Service owns market generation, daily evolution and trade execution.
type Service struct {
	rng *random.Source
	log zerolog.Logger
}

// New creates a market service.
func New(rng *random.Source, log zerolog.Logger) *Service {
	return &Service{
		rng: rng,
		log: log.With().Str("component", "market").Logger(),
	}
}

// Generate builds a fresh order book. Local markets start closer to their
// baseline stock than remote ones.
func (s *Service) Generate(local bool) domain.Market {
	m := make(domain.Market, len(catalog.Commodities))
	for _, c := range catalog.Commodities {
		base := int(math.Floor(100 + 1000*(1-c.Rarity)))
		var qty int
		if local {
			qty = int(math.Floor(float64(base) * (1 + s.rng.Between(-0.1, 0.3))))
		} else {
			qty = int(math.Floor(float64(base) * (1 + s.rng.Between(-0.5, 0.5))))
		}
		if qty < 1 {
			qty = 1
		}
		ratio := float64(qty) / float64(base)
		mid := (c.MinPrice + c.MaxPrice) / 2
		price := math.Round(clamp(mid/math.Sqrt(ratio), c.MinPrice, c.MaxPrice))
		m[c.Name] = &domain.MarketItem{
			Price:            price,
			Quantity:         qty,
			StandardQuantity: base,
			DepletionDays:    0,
		}
	}
	return m
}

// GenerateAll builds the order books for every venue, local at startVenue.
func (s *Service) GenerateAll(startVenue int) []domain.Market {
	markets := make([]domain.Market, len(catalog.Venues))
	for i := range markets {
		markets[i] = s.Generate(i == startVenue)
	}
	return markets
}

// Evolve advances every order book by one day. It is a function of the
// current items, the day number, the phase, and the injected random stream;
// commodities are visited in catalog order so the draw sequence is stable.
func (s *Service) Evolve(state *domain.GameState) {
	phaseMult := catalog.PhasePriceMultiplier(state.GamePhase)
	stockMult := catalog.StockMultiplier(state.GamePhase)

	// One surge percentage shared by every item that draws a surge today.
	surgePct := 0.10 + s.rng.Between(0, 0.15)

	h2oPasteMinMult := math.Pow(1.05, float64(state.Day))
	h2oPasteMaxMult := math.Pow(1.10, float64(state.Day))

	for _, m := range state.Markets {
		for _, c := range catalog.Commodities {
			item, ok := m[c.Name]
			if !ok {
				continue
			}
			adjustedStd := float64(item.StandardQuantity) * stockMult

			newQty := int(math.Floor(float64(item.Quantity) * (1 + s.rng.Between(-0.5, 0.5))))
			if s.rng.Chance(0.2) {
				newQty += int(math.Ceil(adjustedStd * surgePct))
			}

			dDays := 0
			if item.Quantity <= 0 {
				dDays = item.DepletionDays + 1
			}
			if dDays > 2 {
				// Forced restock breaks the starvation deadlock.
				newQty = int(math.Floor(adjustedStd * 0.5))
				dDays = 0
			}
			if newQty < 0 {
				newQty = 0
			}

			effectiveRatio := float64(newQty+1) / adjustedStd

			rangeMin := c.MinPrice * phaseMult
			rangeMax := c.MaxPrice * phaseMult
			switch c.Name {
			case catalog.H2OName, catalog.NutriPasteName:
				// Scarcity creep: survival goods get more expensive as days pass.
				rangeMin = c.MinPrice * h2oPasteMinMult
				rangeMax = c.MaxPrice * h2oPasteMaxMult
			case catalog.FuelName:
				rangeMax *= 1 + s.rng.Between(-0.15, 0.15)
			}

			var price float64
			if c.Name == catalog.TeaName {
				// Log-uniform draw across the whole band, deliberately fat-tailed.
				logMin := math.Log(rangeMin)
				logMax := math.Log(rangeMax)
				price = math.Round(math.Exp(logMin + (logMax-logMin)*s.rng.Float64()))
			} else {
				mid := (rangeMin + rangeMax) / 2
				price = math.Round(clamp(mid/math.Sqrt(effectiveRatio), rangeMin, rangeMax))
			}

			item.Price = price
			item.Quantity = newQty
			item.DepletionDays = dDays
		}
	}
}

// ApplyPhaseScaling expands every order book when a phase boundary is
// crossed. Stock gets the glut factor on top of the baseline multiplier.
func (s *Service) ApplyPhaseScaling(state *domain.GameState, multiplier float64) {
	for _, m := range state.Markets {
		for _, item := range m {
			item.Quantity = int(math.Floor(float64(item.Quantity) * multiplier * marketGlutFactor))
			item.StandardQuantity = int(float64(item.StandardQuantity) * multiplier)
		}
	}
	s.log.Info().Float64("multiplier", multiplier).Msg("market stock scaled for new phase")
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func txKey(venue int, commodity string) string {
	return fmt.Sprintf("%d|%s", venue, commodity)
}
