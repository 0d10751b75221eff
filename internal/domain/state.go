package domain

import (
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

// GameState is the root state object for one session. It is a single
// mutable instance exclusively owned by the engine.
type GameState struct {
	ID   string `json:"id"` // session id
	Seed int64  `json:"seed"`

	Day          int     `json:"day"`
	Cash         float64 `json:"cash"`
	CurrentVenue int     `json:"current_venue"`

	Cargo         map[string]*CargoItem             `json:"cargo"`
	Warehouse     map[int]map[string]*WarehouseItem `json:"warehouse"` // destination venue -> commodity
	CargoWeight   float64                           `json:"cargo_weight"` // cached, recomputed on every mutation
	CargoCapacity float64                           `json:"cargo_capacity"`

	Markets []Market `json:"markets"` // indexed by venue

	ShipHealth  int          `json:"ship_health"`  // 0..150
	LaserHealth int          `json:"laser_health"` // 0..100
	Equipment   EquipmentSet `json:"equipment"`

	ActiveLoans        []*Loan       `json:"active_loans"`
	Investments        []*Investment `json:"investments"`
	LoanOffers         []LoanOffer   `json:"loan_offers"`
	ActiveContracts    []*Contract   `json:"active_contracts"`
	AvailableContracts []*Contract   `json:"available_contracts"`

	VenueTradeBans map[int]int `json:"venue_trade_bans"` // venue -> days remaining
	GamePhase      int         `json:"game_phase"`       // 1..4

	DailyTransactionCounts map[string]int `json:"daily_transaction_counts"` // venue|commodity, reset every tick
	MeshFabricatedToday    bool           `json:"mesh_fabricated_today"`
	StimsFabricatedToday   bool           `json:"stims_fabricated_today"`
	LoanAcceptedToday      bool           `json:"loan_accepted_today"`

	Stats    Stats     `json:"stats"`
	Messages []Message `json:"messages"`

	GameOver       bool   `json:"game_over"`
	GameOverReason string `json:"game_over_reason,omitempty"`
}

// RecomputeCargoWeight rebuilds the cached weight from the hold contents.
func (s *GameState) RecomputeCargoWeight() {
	var w float64
	for name, item := range s.Cargo {
		w += float64(item.Quantity) * catalog.UnitWeight(name)
	}
	s.CargoWeight = w
}

// CargoQuantity returns the held quantity of a commodity, zero when absent.
func (s *GameState) CargoQuantity(name string) int {
	if item, ok := s.Cargo[name]; ok {
		return item.Quantity
	}
	return 0
}

// AddCargo merges qty units acquired at unitCost into the hold, recomputing
// the weighted-average cost basis and the cached weight.
func (s *GameState) AddCargo(name string, qty int, unitCost float64) {
	if qty <= 0 {
		return
	}
	item, ok := s.Cargo[name]
	if !ok {
		s.Cargo[name] = &CargoItem{Quantity: qty, AverageCost: unitCost}
	} else {
		total := float64(item.Quantity)*item.AverageCost + float64(qty)*unitCost
		item.Quantity += qty
		item.AverageCost = total / float64(item.Quantity)
	}
	s.CargoWeight += float64(qty) * catalog.UnitWeight(name)
}

// RemoveCargo removes up to qty units from the hold, deleting the entry at
// zero. It returns the quantity actually removed.
func (s *GameState) RemoveCargo(name string, qty int) int {
	item, ok := s.Cargo[name]
	if !ok || qty <= 0 {
		return 0
	}
	if qty > item.Quantity {
		qty = item.Quantity
	}
	item.Quantity -= qty
	if item.Quantity <= 0 {
		delete(s.Cargo, name)
	}
	s.CargoWeight -= float64(qty) * catalog.UnitWeight(name)
	if s.CargoWeight < 0 {
		s.CargoWeight = 0
	}
	return qty
}

// TotalDebt sums the current debt across active loans.
func (s *GameState) TotalDebt() float64 {
	var total float64
	for _, l := range s.ActiveLoans {
		total += l.CurrentDebt
	}
	return total
}

// InvestedAmount sums the principal locked in open deposits.
func (s *GameState) InvestedAmount() float64 {
	var total float64
	for _, inv := range s.Investments {
		total += inv.Amount
	}
	return total
}

// CargoValueAtLocalPrices values the hold at the current venue's prices.
func (s *GameState) CargoValueAtLocalPrices() float64 {
	market := s.Markets[s.CurrentVenue]
	var total float64
	for name, item := range s.Cargo {
		if mi, ok := market[name]; ok {
			total += float64(item.Quantity) * mi.Price
		}
	}
	return total
}

// CargoValueAtCost values the hold at its weighted-average cost basis.
func (s *GameState) CargoValueAtCost() float64 {
	var total float64
	for _, item := range s.Cargo {
		total += float64(item.Quantity) * item.AverageCost
	}
	return total
}

// NetWorth is cash plus cargo at local prices plus invested principal,
// minus total debt.
func (s *GameState) NetWorth() float64 {
	return s.Cash + s.CargoValueAtLocalPrices() + s.InvestedAmount() - s.TotalDebt()
}

// DebtFree reports whether no loan debt is outstanding.
func (s *GameState) DebtFree() bool {
	return len(s.ActiveLoans) == 0
}

// WarehouseAt returns the warehouse map for a venue, creating it on demand.
func (s *GameState) WarehouseAt(venue int) map[string]*WarehouseItem {
	wh, ok := s.Warehouse[venue]
	if !ok {
		wh = make(map[string]*WarehouseItem)
		s.Warehouse[venue] = wh
	}
	return wh
}

// VenueBanned reports whether a venue is under an active trade ban.
func (s *GameState) VenueBanned(venue int) bool {
	return s.VenueTradeBans[venue] > 0
}

// RecordWin updates the biggest-win stat with a cash inflow: sale proceeds
// after tax, or a contract reward.
func (s *GameState) RecordWin(amount float64) {
	if amount > s.Stats.LargestSingleWin {
		s.Stats.LargestSingleWin = amount
	}
}

// RecordLoss updates the biggest-loss stat with a realized loss magnitude.
func (s *GameState) RecordLoss(amount float64) {
	if amount > s.Stats.LargestSingleLoss {
		s.Stats.LargestSingleLoss = amount
	}
}
