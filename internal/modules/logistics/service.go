// Package logistics manages off-ship shipments: dispatch, transit delays,
// arrival, claiming, forwarding and storage seizure.
package logistics

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

var (
	ErrInvalidTier      = errors.New("invalid shipping tier")
	ErrInsufficientFuel = errors.New("insufficient fuel reserves")
	ErrNotArrived       = errors.New("shipment not yet arrived")
)

// seizureGraceDays is how long an arrived item sits unclaimed before the
// port sells it to defray storage costs.
const seizureGraceDays = 3

// Service owns warehouse and shipping operations.
type Service struct {
	rng *random.Source
	log zerolog.Logger
}

// New creates a logistics service.
func New(rng *random.Source, log zerolog.Logger) *Service {
	return &Service{
		rng: rng,
		log: log.With().Str("component", "logistics").Logger(),
	}
}

// ShipRequest describes one dispatch. Goods come either from the ship's
// hold (FromWarehouse false, source = current venue) or from an arrived
// warehouse entry at SourceVenue (a forward, no presence required).
type ShipRequest struct {
	Commodity     string `json:"commodity"`
	Quantity      int    `json:"quantity"`
	Destination   int    `json:"destination"`
	Tier          int    `json:"tier"` // 1 priority, 2 standard, 3 bulk
	FromWarehouse bool   `json:"from_warehouse"`
	SourceVenue   int    `json:"source_venue,omitempty"` // warehouse source only
}

// ShipReceipt summarizes an accepted dispatch.
type ShipReceipt struct {
	Commodity   string  `json:"commodity"`
	Quantity    int     `json:"quantity"`
	Source      int     `json:"source"`
	Destination int     `json:"destination"`
	ArrivalDay  int     `json:"arrival_day"`
	CashFee     float64 `json:"cash_fee"`
	FuelFee     int     `json:"fuel_fee"`
}

// Ship dispatches goods to a destination warehouse. The cash fee scales
// with cargo value and distance, multiplied by the tier; the fuel fee is
// always drawn from the ship's own reserves.
func (s *Service) Ship(state *domain.GameState, req ShipRequest) (*ShipReceipt, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInsufficientStock
	}
	tierMult, ok := tierMultiplier(req.Tier)
	if !ok {
		return nil, ErrInvalidTier
	}

	source := state.CurrentVenue
	if req.FromWarehouse {
		source = req.SourceVenue
	}
	if !catalog.ValidVenue(req.Destination) || req.Destination == source || state.VenueBanned(req.Destination) {
		return nil, domain.ErrInvalidDestination
	}

	// Locate the source stock and its cost basis.
	var avgCost float64
	if req.FromWarehouse {
		item := state.Warehouse[source][req.Commodity]
		if item == nil || item.Quantity < req.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		if item.ArrivalDay > state.Day {
			return nil, ErrNotArrived
		}
		avgCost = item.OriginalAvgCost
	} else {
		held, ok := state.Cargo[req.Commodity]
		if !ok || held.Quantity < req.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		avgCost = held.AverageCost
	}

	dist := catalog.Distance(source, req.Destination)
	fuelFee := int(math.Ceil(float64(dist) * float64(req.Quantity) / 50))
	if state.CargoQuantity(catalog.FuelName) < fuelFee {
		return nil, ErrInsufficientFuel
	}
	cashFee := math.Ceil((float64(req.Quantity)*avgCost*0.05 + float64(dist)*100) * tierMult)
	if state.Cash < cashFee {
		return nil, domain.ErrInsufficientFunds
	}

	// Merge into the destination warehouse at a weighted-average basis.
	wh := state.WarehouseAt(req.Destination)
	arrival := state.Day + req.Tier
	if existing, ok := wh[req.Commodity]; ok {
		total := existing.Quantity + req.Quantity
		existing.OriginalAvgCost = (float64(existing.Quantity)*existing.OriginalAvgCost + float64(req.Quantity)*avgCost) / float64(total)
		existing.Quantity = total
		existing.ArrivalDay = arrival
	} else {
		wh[req.Commodity] = &domain.WarehouseItem{
			Quantity:        req.Quantity,
			OriginalAvgCost: avgCost,
			ArrivalDay:      arrival,
		}
	}

	// Draw down the source.
	if req.FromWarehouse {
		src := state.Warehouse[source]
		src[req.Commodity].Quantity -= req.Quantity
		if src[req.Commodity].Quantity <= 0 {
			delete(src, req.Commodity)
		}
		if len(src) == 0 {
			delete(state.Warehouse, source)
		}
	} else {
		state.RemoveCargo(req.Commodity, req.Quantity)
	}
	state.RemoveCargo(catalog.FuelName, fuelFee)
	state.Cash -= cashFee

	state.Log(domain.TagInfo, "LOGISTICS: Dispatched %d %s to %s. Arrival: Day %d.",
		req.Quantity, req.Commodity, catalog.Venues[req.Destination], arrival)
	s.log.Info().Str("commodity", req.Commodity).Int("qty", req.Quantity).
		Int("dest", req.Destination).Int("arrival", arrival).Msg("shipment dispatched")

	return &ShipReceipt{
		Commodity:   req.Commodity,
		Quantity:    req.Quantity,
		Source:      source,
		Destination: req.Destination,
		ArrivalDay:  arrival,
		CashFee:     cashFee,
		FuelFee:     fuelFee,
	}, nil
}

// Claim moves arrived warehouse stock into the hold at the stored cost
// basis. Requires presence at the venue and free capacity; partial claims
// reduce the entry and delete it at zero.
func (s *Service) Claim(state *domain.GameState, venue int, commodity string, qty int) error {
	if state.CurrentVenue != venue {
		return domain.ErrLocationMismatch
	}
	item := state.Warehouse[venue][commodity]
	if item == nil || qty <= 0 || qty > item.Quantity {
		return domain.ErrInsufficientStock
	}
	if item.ArrivalDay > state.Day {
		return ErrNotArrived
	}
	if state.CargoWeight+float64(qty)*catalog.UnitWeight(commodity) > state.CargoCapacity {
		return domain.ErrInsufficientCargoSpace
	}

	state.AddCargo(commodity, qty, item.OriginalAvgCost)
	item.Quantity -= qty
	if item.Quantity <= 0 {
		delete(state.Warehouse[venue], commodity)
		if len(state.Warehouse[venue]) == 0 {
			delete(state.Warehouse, venue)
		}
	}
	state.Log(domain.TagInfo, "LOGISTICS: Claimed %d %s from warehouse.", qty, commodity)
	return nil
}

// Tick rolls transit delays and seizes arrived items that overstayed the
// storage grace window. Venues and commodities are visited in a fixed
// order so the draw sequence is stable.
func (s *Service) Tick(state *domain.GameState, report *domain.DailyReport) {
	for venue := 0; venue < len(catalog.Venues); venue++ {
		wh, ok := state.Warehouse[venue]
		if !ok {
			continue
		}
		for _, c := range catalog.Commodities {
			item, ok := wh[c.Name]
			if !ok {
				continue
			}
			if item.ArrivalDay > state.Day {
				if s.rng.Chance(0.1) {
					item.ArrivalDay++
					report.Add(domain.TagInfo, "DELAY: Shipment of %s to %s delayed 1 day due to logistics hiccups.",
						c.Name, catalog.Venues[venue])
				}
				continue
			}
			if state.Day > item.ArrivalDay+seizureGraceDays {
				report.Add(domain.TagDanger, "SEIZURE: %d %s at %s sold to defray storage costs.",
					item.Quantity, c.Name, catalog.Venues[venue])
				delete(wh, c.Name)
			}
		}
		if len(wh) == 0 {
			delete(state.Warehouse, venue)
		}
	}
}

func tierMultiplier(tier int) (float64, bool) {
	switch tier {
	case 1:
		return 2, true
	case 2:
		return 1, true
	case 3:
		return 0.5, true
	}
	return 0, false
}
