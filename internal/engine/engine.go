// Package engine owns the game state and orchestrates the simulation
// modules. All state mutation goes through the engine; callers never touch
// the GameState directly.
package engine

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/contracts"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/equipment"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/fabrication"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/ledger"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/logistics"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/market"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/travel"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

// Lifecycle rejections. Module-level rejections pass through unchanged.
var (
	ErrNoGame             = errors.New("no game in progress")
	ErrGameOver           = errors.New("game is over")
	ErrEncounterPending   = errors.New("encounter must be resolved first")
	ErrNoPendingEncounter = errors.New("no encounter pending")
	ErrPhasePending       = errors.New("phase transition must be acknowledged first")
	ErrNoPendingPhase     = errors.New("no phase transition pending")
)

// TickObserver is notified after every completed daily tick, with the
// mutated state and the day's report. Observers must not mutate state.
type TickObserver interface {
	AfterTick(state *domain.GameState, report *domain.DailyReport)
}

// Engine wires the simulation modules around a single GameState. It is
// safe for concurrent use; every operation holds the engine lock.
type Engine struct {
	mu   sync.Mutex
	seed int64
	rng  *random.Source
	log  zerolog.Logger

	state *domain.GameState

	market      *market.Service
	ledger      *ledger.Service
	contracts   *contracts.Service
	logistics   *logistics.Service
	fabrication *fabrication.Service
	equipment   *equipment.Service
	travel      *travel.Service

	pendingEncounter *domain.Encounter
	pendingJump      *travel.JumpRequest
	pendingReport    *domain.DailyReport
	pendingPhase     int
	lastReport       *domain.DailyReport

	observers []TickObserver
}

// New builds an engine seeded with seed. No game is running until NewGame
// is called.
func New(seed int64, log zerolog.Logger) *Engine {
	rng := random.New(seed)
	return &Engine{
		seed:        seed,
		rng:         rng,
		log:         log.With().Str("component", "engine").Logger(),
		market:      market.New(rng, log),
		ledger:      ledger.New(rng, log),
		contracts:   contracts.New(rng, log),
		logistics:   logistics.New(rng, log),
		fabrication: fabrication.New(log),
		equipment:   equipment.New(log),
		travel:      travel.New(rng, log),
	}
}

// AddObserver registers a post-tick observer.
func (e *Engine) AddObserver(o TickObserver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

// starterCargo is granted to every new captain, costed at catalog minimum
// prices. Order matters for rng draw stability.
var starterCargo = []struct {
	name string
	qty  int
}{
	{catalog.NutriPasteName, 10},
	{catalog.H2OName, 20},
	{catalog.PowerCellName, 25},
	{catalog.FuelName, 100},
}

// NewGame resets the engine to a fresh day-1 state: random start venue,
// starter cargo, seed cash and the mandatory starter loan.
func (e *Engine) NewGame() *domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := e.rng.Intn(len(catalog.Venues))
	s := &domain.GameState{
		ID:                     uuid.NewString(),
		Seed:                   e.seed,
		Day:                    1,
		Cash:                   20000,
		CurrentVenue:           start,
		Cargo:                  make(map[string]*domain.CargoItem),
		Warehouse:              make(map[int]map[string]*domain.WarehouseItem),
		CargoCapacity:          catalog.InitialCargoCapacity,
		Markets:                e.market.GenerateAll(start),
		ShipHealth:             100,
		LaserHealth:            100,
		GamePhase:              1,
		VenueTradeBans:         make(map[int]int),
		DailyTransactionCounts: make(map[string]int),
	}
	for _, sc := range starterCargo {
		c, _ := catalog.CommodityByName(sc.name)
		s.AddCargo(sc.name, sc.qty, c.MinPrice)
	}
	s.ActiveLoans = []*domain.Loan{{
		ID:             uuid.NewString(),
		Firm:           "Starfleet Credit Union",
		Principal:      5000,
		CurrentDebt:    5000,
		InterestRate:   5.0,
		DaysRemaining:  catalog.LoanRepaymentDays,
		OriginationDay: 1,
	}}
	s.Log(domain.TagInfo, "System Init v9.9.1... Welcome aboard, Captain.")
	s.Log(domain.TagDebt, "Widow's Gift Sent: 5000. Loan secured.")
	s.Log(domain.TagCritical, "ALERT: Mining Laser Offline.")

	s.LoanOffers = e.ledger.GenerateOffers(s.GamePhase)
	e.contracts.Generate(s)

	e.state = s
	e.pendingEncounter = nil
	e.pendingJump = nil
	e.pendingReport = nil
	e.pendingPhase = 0
	e.lastReport = nil

	e.log.Info().Int64("seed", e.seed).Int("venue", start).Msg("new game started")
	return s
}

// State returns the current game state, or nil before NewGame.
func (e *Engine) State() *domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// WithState runs fn with the engine lock held, so fn sees a consistent
// state. fn receives nil before NewGame. fn must not call back into the
// engine.
func (e *Engine) WithState(fn func(state *domain.GameState) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

// Restore replaces the running session with a previously saved state,
// discarding any pending encounter or phase transition. Snapshots are
// taken between days, so nothing mid-transit can be lost.
func (e *Engine) Restore(state *domain.GameState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = state
	e.pendingEncounter = nil
	e.pendingJump = nil
	e.pendingReport = nil
	e.pendingPhase = 0
	e.lastReport = nil
	e.log.Info().Str("session", state.ID).Int("day", state.Day).Msg("session restored from snapshot")
}

// ready gates every mutating action: a game must be running, not over, and
// not parked on a pending encounter or phase transition.
func (e *Engine) ready() error {
	if e.state == nil {
		return ErrNoGame
	}
	if e.state.GameOver {
		return ErrGameOver
	}
	if e.pendingEncounter != nil {
		return ErrEncounterPending
	}
	if e.pendingPhase != 0 {
		return ErrPhasePending
	}
	return nil
}

// Buy purchases commodity units on the local market.
func (e *Engine) Buy(commodity string, qty int) (*market.TradeReceipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.market.Buy(e.state, commodity, qty)
}

// Sell sells commodity units on the local market.
func (e *Engine) Sell(commodity string, qty int) (*market.TradeReceipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.market.Sell(e.state, commodity, qty)
}

// AcceptLoanOffer takes out one of today's loan offers.
func (e *Engine) AcceptLoanOffer(offerID string) (*domain.Loan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.ledger.AcceptOffer(e.state, offerID)
}

// RepayLoan settles an active loan in full.
func (e *Engine) RepayLoan(loanID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return err
	}
	return e.ledger.Repay(e.state, loanID)
}

// Invest opens a fixed-term deposit.
func (e *Engine) Invest(amount float64, termDays int) (*domain.Investment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.ledger.Invest(e.state, amount, termDays)
}

// AcceptContract moves an available contract into the active book.
func (e *Engine) AcceptContract(contractID string) (*domain.Contract, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.contracts.Accept(e.state, contractID)
}

// Ship books a shipment from the hold or a warehouse to another venue.
func (e *Engine) Ship(req logistics.ShipRequest) (*logistics.ShipReceipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.logistics.Ship(e.state, req)
}

// ClaimWarehouse moves arrived warehouse stock into the hold.
func (e *Engine) ClaimWarehouse(venue int, commodity string, qty int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return err
	}
	return e.logistics.Claim(e.state, venue, commodity, qty)
}

// FabricateMesh runs the daily mesh fabrication batch.
func (e *Engine) FabricateMesh(qty int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return err
	}
	return e.fabrication.FabricateMesh(e.state, qty)
}

// FabricateStims runs the daily stim fabrication batch.
func (e *Engine) FabricateStims(qty int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return err
	}
	return e.fabrication.FabricateStims(e.state, qty)
}

// BuyEquipment purchases a shop upgrade.
func (e *Engine) BuyEquipment(id catalog.EquipmentID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return err
	}
	return e.equipment.Buy(e.state, id)
}

// RepairHull restores the hull to maximum for a per-increment fee.
func (e *Engine) RepairHull() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.equipment.RepairHull(e.state)
}

// RepairLaser restores the mining laser to maximum.
func (e *Engine) RepairLaser() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.equipment.RepairLaser(e.state)
}

// ExpandCargoBay adds hold capacity in exchange for cash and mesh.
func (e *Engine) ExpandCargoBay(units int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return err
	}
	return e.equipment.ExpandCargoBay(e.state, units)
}
