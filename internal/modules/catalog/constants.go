package catalog

// Cargo hold sizing.
const (
	InitialCargoCapacity = 500
	BaseMaxCargoCapacity = 5000 // phase 1 ceiling; x10 in phase 2, x50 beyond
	CargoUpgradeAmount   = 100
	CargoUpgradeCost     = 2000
)

// Phase goals and deadlines.
const (
	GoalPhase1Days   = 10
	GoalPhase1Amount = 1_000_000
	GoalPhase2Days   = 30
	GoalPhase2Amount = 1_000_000_000
	GoalPhase3Days   = 50
	GoalOvertimeDays = 55
)

// Contract economics.
const (
	ContractLimitP1  = 3
	ContractLimitP2  = 5
	ContractLimitP3  = 10
	TradeBanDuration = 3
)

// Repairs.
const (
	RepairCost      = 1000
	RepairIncrement = 5
	MaxRepairHealth = 150
	MaxLaserHealth  = 100
	LaserRepairCost = 2000
)

// Banking.
const (
	LoanRepaymentDays  = 5
	MaxActiveLoans     = 3
	LoanDefaultFinePct = 0.10
	OverdraftRatePct   = 0.15
)

// Trading.
const (
	FrequentTradeTaxPct = 0.05
	InsurancePremiumPct = 0.05
)

// Fabrication recipes (per unit of output).
const (
	MeshFabricationCost = 2500
	StimFabricationCost = 250
)

// Travel.
const (
	EncounterChance = 0.6
	BankruptcyFloor = -25000
)

// PhaseGoal returns the net-worth goal for a phase. Phase 3 and beyond have
// no further goal; callers treat the phase-2 goal as the last gate.
func PhaseGoal(phase int) float64 {
	switch phase {
	case 1:
		return GoalPhase1Amount
	case 2:
		return GoalPhase2Amount
	default:
		return GoalPhase2Amount * 2
	}
}

// PhaseDeadline returns the day limit for meeting a phase goal.
func PhaseDeadline(phase int) int {
	switch phase {
	case 1:
		return GoalPhase1Days
	case 2:
		return GoalPhase2Days
	default:
		return GoalPhase3Days
	}
}

// ContractLimit returns the maximum simultaneous active contracts per phase.
func ContractLimit(phase int) int {
	switch phase {
	case 1:
		return ContractLimitP1
	case 2:
		return ContractLimitP2
	default:
		return ContractLimitP3
	}
}

// StockMultiplier scales market stock baselines per phase.
func StockMultiplier(phase int) float64 {
	switch {
	case phase >= 3:
		return 9
	case phase == 2:
		return 3
	default:
		return 1
	}
}

// PhasePriceMultiplier widens price bands per phase.
func PhasePriceMultiplier(phase int) float64 {
	return 1 + float64(phase-1)*0.25
}

// ContractQuantityMultiplier scales contract sizes per phase.
func ContractQuantityMultiplier(phase int) int {
	switch {
	case phase >= 3:
		return 20
	case phase == 2:
		return 5
	default:
		return 1
	}
}

// MaxCargoCapacity returns the cargo-hold expansion ceiling per phase.
func MaxCargoCapacity(phase int) int {
	switch {
	case phase >= 3:
		return BaseMaxCargoCapacity * 50
	case phase == 2:
		return BaseMaxCargoCapacity * 10
	default:
		return BaseMaxCargoCapacity
	}
}
