package domain

// EncounterType tags the eight mutually exclusive travel events.
type EncounterType string

const (
	EncounterPirate     EncounterType = "pirate"
	EncounterAccident   EncounterType = "accident"
	EncounterDerelict   EncounterType = "derelict"
	EncounterFuelLeak   EncounterType = "fuel_leak"
	EncounterPolice     EncounterType = "police"
	EncounterMutiny     EncounterType = "mutiny"
	EncounterTax        EncounterType = "tax"
	EncounterStructural EncounterType = "structural"
)

// ItemLoss names a cargo casualty attached to an encounter.
type ItemLoss struct {
	Commodity string `json:"commodity"`
	Quantity  int    `json:"quantity"`
}

// Encounter is the ephemeral event rolled during a jump. It is fully
// resolved before the day advances and never persisted.
type Encounter struct {
	Type         EncounterType `json:"type"`
	Description  string        `json:"description"`
	DemandAmount float64       `json:"demand_amount,omitempty"`
	ItemLoss     *ItemLoss     `json:"item_loss,omitempty"`
	CapacityLoss float64       `json:"capacity_loss,omitempty"`
	RiskDamage   int           `json:"risk_damage,omitempty"`
}

// EncounterChoice is a caller-supplied resolution for a pending encounter.
type EncounterChoice string

const (
	ChoiceFight      EncounterChoice = "fight"
	ChoiceShields    EncounterChoice = "shields"
	ChoiceSearch     EncounterChoice = "search"
	ChoiceLeaveAlone EncounterChoice = "leave_alone"
	ChoicePayDemand  EncounterChoice = "pay_demand"
	ChoiceEvade      EncounterChoice = "evade"
)
