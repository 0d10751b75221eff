// Package events provides event management functionality.
package events

// EventType represents different event types
type EventType string

const (
	// Game lifecycle events
	GameStarted EventType = "GAME_STARTED"
	GameOver    EventType = "GAME_OVER"
	GameRestart EventType = "GAME_RESTART"

	// Daily cycle events
	DayCompleted  EventType = "DAY_COMPLETED"
	PhaseAdvanced EventType = "PHASE_ADVANCED"

	// Trading and finance events
	TradeExecuted    EventType = "TRADE_EXECUTED"
	ContractAccepted EventType = "CONTRACT_ACCEPTED"
	ContractResolved EventType = "CONTRACT_RESOLVED"
	LoanAccepted     EventType = "LOAN_ACCEPTED"
	LoanRepaid       EventType = "LOAN_REPAID"

	// Travel events
	EncounterRolled   EventType = "ENCOUNTER_ROLLED"
	EncounterResolved EventType = "ENCOUNTER_RESOLVED"

	// Persistence events
	SnapshotSaved  EventType = "SNAPSHOT_SAVED"
	ScoreSubmitted EventType = "SCORE_SUBMITTED"

	// Background job events
	JobStarted   EventType = "JOB_STARTED"
	JobCompleted EventType = "JOB_COMPLETED"
	JobFailed    EventType = "JOB_FAILED"

	ErrorOccurred EventType = "ERROR_OCCURRED"
)
