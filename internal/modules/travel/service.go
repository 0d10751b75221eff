// Package travel runs the jump state machine: pre-departure options,
// fuel accounting, the transit encounter roll and its resolution, and the
// arrival phase with asteroid mining.
package travel

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

// Additional rejection reasons beyond the shared taxonomy.
var (
	ErrInsufficientFuel = errors.New("not enough fuel in the hold")
	ErrMissingEquipment = errors.New("required equipment not installed")
	ErrInvalidChoice    = errors.New("choice not available for this encounter")
	ErrNoPendingJump    = errors.New("no jump in progress")
)

// encounterBurnoutChance is rolled when consumable gear is actively used
// against an encounter; transitBurnoutChance is rolled passively on every
// arrival.
const (
	encounterBurnoutChance = 0.2
	transitBurnoutChance   = 0.1
	derelictSalvageChance  = 0.5
	derelictTrapDamage     = 15
	overchargeMishapChance = 0.3
	overchargeMishapDamage = 20
)

// JumpRequest carries the departure options chosen before leaving a venue.
type JumpRequest struct {
	Destination int  `json:"destination"`
	Insurance   bool `json:"insurance"`
	Mine        bool `json:"mine"`
	Overcharge  bool `json:"overcharge"`
	Invest95    bool `json:"invest95"`
}

// Service owns the jump lifecycle. A jump either completes in one call or
// parks on a pending encounter that the caller resolves before arrival.
type Service struct {
	rng *random.Source
	log zerolog.Logger
}

// New creates a travel service.
func New(rng *random.Source, log zerolog.Logger) *Service {
	return &Service{
		rng: rng,
		log: log.With().Str("component", "travel").Logger(),
	}
}

// FuelRequired returns the fuel units a jump consumes. Mining runs burn one
// extra unit for the detour.
func FuelRequired(from, to int, mine bool) int {
	need := catalog.FuelCost(from, to)
	if mine {
		need++
	}
	return need
}

// Depart validates the jump, applies the pre-departure options and rolls
// for a transit encounter. A nil encounter means the ship can proceed
// straight to Arrive; otherwise the returned encounter must be resolved
// first. State is already mutated on return: the deposit is locked, the
// premium charged and the fuel burned.
func (s *Service) Depart(state *domain.GameState, req JumpRequest, report *domain.DailyReport) (*domain.Encounter, error) {
	if state.CargoWeight > state.CargoCapacity {
		return nil, domain.ErrCapacityExceeded
	}
	if !catalog.ValidVenue(req.Destination) || req.Destination == state.CurrentVenue {
		return nil, domain.ErrInvalidDestination
	}

	fuelNeed := FuelRequired(state.CurrentVenue, req.Destination, req.Mine)
	if state.CargoQuantity(catalog.FuelName) < fuelNeed {
		return nil, ErrInsufficientFuel
	}

	var premium float64
	if req.Insurance {
		premium = math.Round(state.CargoValueAtCost() * catalog.InsurancePremiumPct)
		if state.Cash < premium {
			return nil, domain.ErrInsufficientFunds
		}
	}

	// The 95% sweep only fires for debt-free captains; with loans open the
	// flag is silently ignored.
	if req.Invest95 && state.DebtFree() {
		amt := math.Floor(state.Cash * 0.95)
		if amt > 0 {
			state.Cash -= amt
			state.Investments = append(state.Investments, &domain.Investment{
				ID:            uuid.NewString(),
				Amount:        amt,
				InterestRate:  0.05,
				DaysRemaining: 1,
				MaturityValue: math.Floor(amt * 1.05),
			})
			report.Add(domain.TagInvestment, "PROTECTION: Invested %.0f (95%%) in 1-Day CD.", amt)
		}
	}

	if req.Insurance {
		state.Cash -= premium
		report.Insured = true
	}

	state.RemoveCargo(catalog.FuelName, fuelNeed)
	report.FuelUsed = fuelNeed

	s.log.Debug().
		Int("from", state.CurrentVenue).
		Int("to", req.Destination).
		Int("fuel", fuelNeed).
		Bool("insured", req.Insurance).
		Msg("departing")

	if !s.rng.Chance(catalog.EncounterChance) {
		return nil, nil
	}
	return s.rollEncounter(state, req.Insurance, report), nil
}

// encounterTypes enumerates the roll table in fixed order.
var encounterTypes = []domain.EncounterType{
	domain.EncounterPirate,
	domain.EncounterAccident,
	domain.EncounterDerelict,
	domain.EncounterFuelLeak,
	domain.EncounterPolice,
	domain.EncounterMutiny,
	domain.EncounterTax,
	domain.EncounterStructural,
}

// rollEncounter builds one of the eight transit events. Flying uninsured
// doubles the risk damage and makes accident cargo loss certain. Accident
// losses apply immediately, before the captain picks a response.
func (s *Service) rollEncounter(state *domain.GameState, insured bool, report *domain.DailyReport) *domain.Encounter {
	typ := random.Pick(s.rng, encounterTypes)
	return s.buildEncounter(state, typ, insured, report)
}

func (s *Service) buildEncounter(state *domain.GameState, typ domain.EncounterType, insured bool, report *domain.DailyReport) *domain.Encounter {
	riskMult := 2
	if insured {
		riskMult = 1
	}

	enc := &domain.Encounter{Type: typ}
	switch typ {
	case domain.EncounterPirate:
		enc.Description = "Crimson Fleet demands tribute."
		enc.DemandAmount = math.Floor(state.Cash*0.2) + 500
		enc.RiskDamage = 25 * riskMult

	case domain.EncounterAccident:
		enc.Description = "Debris field detected."
		if !insured {
			enc.Description = "Debris field detected! HULL BREACH IMMINENT."
		}
		enc.RiskDamage = 15 * riskMult
		if !insured || s.rng.Chance(0.5) {
			if name := s.pickHeldCommodity(state); name != "" {
				frac := 0.5
				if insured {
					frac = 0.2
				}
				q := int(math.Ceil(float64(state.CargoQuantity(name)) * frac))
				state.RemoveCargo(name, q)
				enc.ItemLoss = &domain.ItemLoss{Commodity: name, Quantity: q}
				report.Lose(name, q)
				report.Add(domain.TagDanger, "IMPACT: %d %s destroyed by debris.", q, name)
			}
		}

	case domain.EncounterDerelict:
		enc.Description = "Found an abandoned freighter."

	case domain.EncounterFuelLeak:
		enc.Description = "Leaking fuel reserves."
		enc.RiskDamage = 5 * riskMult

	case domain.EncounterPolice:
		enc.Description = "Routine patrol scan."
		enc.DemandAmount = math.Floor(state.Cash*0.1) + 1000
		if !insured {
			enc.Description = "Aggressive scan detected. Bribe required or goods confiscated."
			if name := s.pickHeldCommodity(state); name != "" {
				enc.ItemLoss = &domain.ItemLoss{Commodity: name}
			}
		}

	case domain.EncounterMutiny:
		enc.Description = "Morale is low. They want a bonus."
		enc.DemandAmount = math.Floor(state.Cash*0.15) + 500

	case domain.EncounterTax:
		enc.Description = "Surprise checkpoint tax."
		enc.DemandAmount = math.Ceil(state.CargoWeight * 10)

	case domain.EncounterStructural:
		enc.Description = "Support beams buckling."
		enc.CapacityLoss = 100
	}

	s.log.Info().Str("type", string(typ)).Bool("insured", insured).Msg("encounter rolled")
	return enc
}

// pickHeldCommodity returns a uniformly chosen held commodity name, or ""
// for an empty hold. Candidates are collected in catalog order so the pick
// consumes rng draws deterministically.
func (s *Service) pickHeldCommodity(state *domain.GameState) string {
	var held []string
	for _, c := range catalog.Commodities {
		if state.CargoQuantity(c.Name) > 0 {
			held = append(held, c.Name)
		}
	}
	if len(held) == 0 {
		return ""
	}
	return random.Pick(s.rng, held)
}

// Resolve applies the captain's response to a pending encounter. The
// encounter is consumed on success; on error nothing changes and the
// encounter stays pending.
func (s *Service) Resolve(state *domain.GameState, enc *domain.Encounter, choice domain.EncounterChoice, report *domain.DailyReport) error {
	if enc == nil {
		return ErrNoPendingJump
	}

	switch choice {
	case domain.ChoiceFight:
		if enc.Type != domain.EncounterPirate {
			return ErrInvalidChoice
		}
		if !state.Equipment.PlasmaCannons {
			return ErrMissingEquipment
		}
		if s.rng.Chance(encounterBurnoutChance) {
			state.Equipment.PlasmaCannons = false
			report.Add(domain.TagCritical, "COMBAT: Pirates repelled, but Plasma Cannons destroyed!")
		} else {
			report.Add(domain.TagInfo, "COMBAT: Pirates repelled by Plasma Cannons.")
		}

	case domain.ChoiceShields:
		if enc.Type != domain.EncounterAccident && enc.Type != domain.EncounterFuelLeak {
			return ErrInvalidChoice
		}
		if !state.Equipment.ShieldGenerator {
			return ErrMissingEquipment
		}
		if s.rng.Chance(encounterBurnoutChance) {
			state.Equipment.ShieldGenerator = false
			report.Add(domain.TagCritical, "DEFENSE: Shields absorbed impact, but Generator burned out!")
		} else {
			report.Add(domain.TagInfo, "DEFENSE: Shields absorbed impact.")
		}

	case domain.ChoiceSearch:
		if enc.Type != domain.EncounterDerelict {
			return ErrInvalidChoice
		}
		if s.rng.Chance(derelictSalvageChance) {
			reward := float64(s.rng.IntBetween(1000, 5999))
			state.Cash += reward
			report.Add(domain.TagProfit, "SALVAGE: Found %.0f in crew quarters.", reward)
		} else {
			state.ShipHealth -= derelictTrapDamage
			report.HullDamage += derelictTrapDamage
			report.Add(domain.TagDanger, "TRAP: Derelict was booby-trapped! -%d%% Hull.", derelictTrapDamage)
		}

	case domain.ChoiceLeaveAlone:
		if enc.Type != domain.EncounterDerelict {
			return ErrInvalidChoice
		}
		report.Add(domain.TagInfo, "IGNORE: Derelict left undisturbed.")

	case domain.ChoicePayDemand:
		if enc.DemandAmount <= 0 {
			return ErrInvalidChoice
		}
		state.Cash -= enc.DemandAmount
		report.Add(domain.TagDanger, "SURRENDER: Paid %.0f demand.", enc.DemandAmount)

	case domain.ChoiceEvade:
		if enc.Type == domain.EncounterDerelict {
			return ErrInvalidChoice
		}
		s.evade(state, enc, report)

	default:
		return ErrInvalidChoice
	}

	s.log.Info().Str("type", string(enc.Type)).Str("choice", string(choice)).Msg("encounter resolved")
	return nil
}

// evade takes the emergency action: random hull damage up to the risk
// ceiling, plus any structural fallout the encounter carries.
func (s *Service) evade(state *domain.GameState, enc *domain.Encounter, report *domain.DailyReport) {
	if enc.RiskDamage > 0 {
		dmg := int(s.rng.Float64() * float64(enc.RiskDamage))
		state.ShipHealth -= dmg
		report.HullDamage += dmg
		report.Add(domain.TagDanger, "EVASION: Sustained -%d%% Hull Damage while fleeing.", dmg)
	} else {
		report.Add(domain.TagInfo, "EVASION: Slipped away without damage.")
	}

	if enc.ItemLoss != nil {
		if enc.ItemLoss.Quantity > 0 {
			report.Add(domain.TagDanger, "LOSS: %d %s lost in chaos.", enc.ItemLoss.Quantity, enc.ItemLoss.Commodity)
		} else {
			report.Add(domain.TagDanger, "CUSTOMS: %s flagged for confiscation.", enc.ItemLoss.Commodity)
		}
	}

	if enc.CapacityLoss > 0 {
		state.CargoCapacity = math.Max(catalog.InitialCargoCapacity, state.CargoCapacity-enc.CapacityLoss)
		report.Add(domain.TagDanger, "STRUCTURAL FAILURE: Cargo Bay Capacity reduced by %.0fT.", enc.CapacityLoss)
		s.forceJettison(state, report)
	}
}

// forceJettison dumps cargo until the hold fits the reduced capacity,
// draining the first held commodity in catalog order.
func (s *Service) forceJettison(state *domain.GameState, report *domain.DailyReport) {
	for _, c := range catalog.Commodities {
		if state.CargoWeight <= state.CargoCapacity {
			return
		}
		qty := state.CargoQuantity(c.Name)
		if qty == 0 {
			continue
		}
		excess := state.CargoWeight - state.CargoCapacity
		dump := int(math.Ceil(excess / c.UnitWeight))
		removed := state.RemoveCargo(c.Name, dump)
		report.Lose(c.Name, removed)
		report.Add(domain.TagDanger, "JETTISON: Dumped %d %s to stay within capacity.", removed, c.Name)
	}
}

// Arrive finishes a jump: passive gear burnout, the optional mining run,
// then the day advance and venue change. The caller runs the daily tick
// afterwards.
func (s *Service) Arrive(state *domain.GameState, req JumpRequest, report *domain.DailyReport) {
	if state.Equipment.PlasmaCannons && s.rng.Chance(transitBurnoutChance) {
		state.Equipment.PlasmaCannons = false
		report.Add(domain.TagCritical, "CRITICAL: Plasma Cannons burned out during transit.")
	}
	if state.Equipment.ShieldGenerator && s.rng.Chance(transitBurnoutChance) {
		state.Equipment.ShieldGenerator = false
		report.Add(domain.TagCritical, "CRITICAL: Shield Generator overload. Unit destroyed.")
	}

	if req.Mine && state.Equipment.LaserTier > 0 {
		s.mine(state, req.Overcharge, report)
	}

	state.Day++
	state.CurrentVenue = req.Destination
	s.log.Info().Int("day", state.Day).Int("venue", req.Destination).Msg("arrived")
}

// mine runs an asteroid mining pass on arrival. Power cells are consumed
// up front; yields land in the hold at zero cost basis and anything that
// would not fit is left behind.
func (s *Service) mine(state *domain.GameState, overcharge bool, report *domain.DailyReport) {
	cells := state.CargoQuantity(catalog.PowerCellName)
	if cells == 0 {
		report.Add(domain.TagMining, "MINING FAILED: No Power Cells available.")
		return
	}

	use := s.rng.IntBetween(1, 2)
	if use > cells {
		use = cells
	}
	state.RemoveCargo(catalog.PowerCellName, use)

	yieldMult := state.Equipment.LaserYieldMultiplier()
	if overcharge {
		yieldMult *= 2
	}
	amt := s.rng.IntBetween(5, 14) * yieldMult

	type haul struct {
		name string
		amt  int
	}
	yields := []haul{{catalog.OreName, amt}}
	if state.Equipment.LaserTier >= 2 && s.rng.Float64() > 0.5 {
		yields = append(yields, haul{catalog.AntimatterName, int(math.Ceil(float64(amt) * 0.2))})
	}
	if state.Equipment.LaserTier >= 3 && s.rng.Float64() > 0.8 {
		yields = append(yields, haul{catalog.DarkMatterName, int(math.Ceil(float64(amt) * 0.05))})
	}

	if overcharge && s.rng.Chance(overchargeMishapChance) {
		state.ShipHealth -= overchargeMishapDamage
		report.HullDamage += overchargeMishapDamage
		report.Add(domain.TagDanger, "LASER OVERLOAD: System overheat! Sustained -%d%% Hull Damage.", overchargeMishapDamage)
	}

	for _, y := range yields {
		weight := float64(y.amt) * catalog.UnitWeight(y.name)
		if state.CargoWeight+weight > state.CargoCapacity {
			report.Add(domain.TagMining, "MINING: %d %s abandoned, hold full.", y.amt, y.name)
			continue
		}
		state.AddCargo(y.name, y.amt, 0)
		report.Gain(y.name, y.amt)
		report.Add(domain.TagMining, "MINING: Extracted %d %s using %d Power Cells.", y.amt, y.name, use)
	}
}
