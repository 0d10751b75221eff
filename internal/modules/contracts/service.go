// Package contracts manages the delivery-contract lifecycle: generation,
// acceptance, fulfillment, breach and the resulting venue trade bans.
package contracts

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

var (
	ErrUnknownContract = errors.New("unknown contract")
	ErrContractLimit   = errors.New("active contract limit reached")
)

// proposalAttempts bounds how many candidates are rolled per regeneration.
const proposalAttempts = 3

// Service owns contract generation and resolution.
type Service struct {
	rng *random.Source
	log zerolog.Logger
}

// New creates a contract service.
func New(rng *random.Source, log zerolog.Logger) *Service {
	return &Service{
		rng: rng,
		log: log.With().Str("component", "contracts").Logger(),
	}
}

// Generate ages the pending pool by a day, drops expired offers, and rolls
// up to three new proposals while the pool is below the phase limit. A
// commodity never appears twice across the active and pending pools.
func (s *Service) Generate(state *domain.GameState) {
	kept := make([]*domain.Contract, 0, len(state.AvailableContracts))
	for _, c := range state.AvailableContracts {
		if c.DaysRemaining <= 0 {
			continue
		}
		c.DaysRemaining--
		if c.DaysRemaining > 0 {
			kept = append(kept, c)
		}
	}

	limit := catalog.ContractLimit(state.GamePhase)
	rewardMult := 1 + float64(state.GamePhase-1)*0.5

	if len(kept) < limit {
		for i := 0; i < proposalAttempts; i++ {
			dest := s.rng.Intn(len(catalog.Venues))
			if dest == state.CurrentVenue || state.VenueBanned(dest) {
				continue
			}

			firm := random.Pick(s.rng, catalog.ContractFirms)
			commod := random.Pick(s.rng, catalog.Commodities)
			if commodityTaken(commod.Name, state.ActiveContracts, kept) {
				continue
			}

			baseQty := s.rng.Intn(50) + 10
			qty := baseQty * catalog.ContractQuantityMultiplier(state.GamePhase)
			reward := math.Round(commod.MaxPrice * float64(qty) * (1.5 + s.rng.Between(0, 0.5)) * rewardMult)

			kept = append(kept, &domain.Contract{
				ID:            uuid.NewString(),
				Firm:          firm,
				Commodity:     commod.Name,
				Quantity:      qty,
				Destination:   dest,
				Reward:        reward,
				Penalty:       math.Round(reward * 0.5),
				DaysRemaining: s.rng.IntBetween(1, 3),
			})
		}
	}
	state.AvailableContracts = kept
}

// Accept moves a pending contract to the active pool, bounded by the phase
// limit.
func (s *Service) Accept(state *domain.GameState, contractID string) (*domain.Contract, error) {
	if len(state.ActiveContracts) >= catalog.ContractLimit(state.GamePhase) {
		return nil, ErrContractLimit
	}
	for i, c := range state.AvailableContracts {
		if c.ID != contractID {
			continue
		}
		state.AvailableContracts = append(state.AvailableContracts[:i], state.AvailableContracts[i+1:]...)
		state.ActiveContracts = append(state.ActiveContracts, c)
		state.Log(domain.TagContract, "CONTRACT: Accepted %s order for %d %s to %s.",
			c.Firm, c.Quantity, c.Commodity, catalog.Venues[c.Destination])
		s.log.Info().Str("firm", c.Firm).Str("commodity", c.Commodity).Msg("contract accepted")
		return c, nil
	}
	return nil, ErrUnknownContract
}

// Resolve settles every active contract against the destination warehouses.
// A contract fulfills when arrived stock covers the order; otherwise its
// clock runs down and a breach charges the penalty and bans the venue.
func (s *Service) Resolve(state *domain.GameState, report *domain.DailyReport) {
	kept := state.ActiveContracts[:0]
	for _, c := range state.ActiveContracts {
		wh := state.Warehouse[c.Destination]
		item := wh[c.Commodity]
		if item != nil && item.Quantity >= c.Quantity && item.ArrivalDay <= state.Day {
			item.Quantity -= c.Quantity
			if item.Quantity <= 0 {
				delete(wh, c.Commodity)
			}
			if len(wh) == 0 {
				delete(state.Warehouse, c.Destination)
			}
			state.Cash += c.Reward
			state.RecordWin(c.Reward)
			report.Add(domain.TagContract, "CONTRACT FULFILLED: %s received shipment at %s. Reward: %.0f",
				c.Firm, catalog.Venues[c.Destination], c.Reward)
			continue
		}

		c.DaysRemaining--
		if c.DaysRemaining <= 0 {
			state.Cash -= c.Penalty
			state.VenueTradeBans[c.Destination] = catalog.TradeBanDuration
			report.Add(domain.TagBreach, "BREACH OF CONTRACT: %s order failed. Penalty: %.0f & Trade License Suspended for %d days.",
				c.Firm, c.Penalty, catalog.TradeBanDuration)
			continue
		}
		if c.DaysRemaining == 1 {
			report.Add(domain.TagDanger, "WARNING: Contract for %s due TOMORROW.", c.Firm)
		}
		kept = append(kept, c)
	}
	state.ActiveContracts = kept
}

// TickBans counts venue trade bans down and lifts the expired ones.
func (s *Service) TickBans(state *domain.GameState) {
	for venue, days := range state.VenueTradeBans {
		if days > 0 {
			days--
		}
		if days <= 0 {
			delete(state.VenueTradeBans, venue)
		} else {
			state.VenueTradeBans[venue] = days
		}
	}
}

func commodityTaken(name string, active, pending []*domain.Contract) bool {
	for _, c := range active {
		if c.Commodity == name {
			return true
		}
	}
	for _, c := range pending {
		if c.Commodity == name {
			return true
		}
	}
	return false
}
