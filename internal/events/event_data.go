package events

import (
	"encoding/json"
	"time"
)

// EventData is the interface that all event data types must implement
// This allows for type-safe event data while maintaining flexibility
type EventData interface {
	// EventType returns the event type this data is associated with
	EventType() EventType
}

// GameStartedData contains data for GameStarted events
type GameStartedData struct {
	Seed       int64 `json:"seed"`
	StartVenue int   `json:"start_venue"`
	Day        int   `json:"day"`
}

// EventType returns the event type for GameStartedData
func (d *GameStartedData) EventType() EventType {
	return GameStarted
}

// GameOverData contains data for GameOver events
type GameOverData struct {
	Reason   string  `json:"reason"`
	Day      int     `json:"day"`
	NetWorth float64 `json:"net_worth"`
}

// EventType returns the event type for GameOverData
func (d *GameOverData) EventType() EventType {
	return GameOver
}

// DayCompletedData contains data for DayCompleted events
type DayCompletedData struct {
	Day      int     `json:"day"`
	Phase    int     `json:"phase"`
	Venue    int     `json:"venue"`
	Cash     float64 `json:"cash"`
	NetWorth float64 `json:"net_worth"`
	Messages int     `json:"messages"`
}

// EventType returns the event type for DayCompletedData
func (d *DayCompletedData) EventType() EventType {
	return DayCompleted
}

// PhaseAdvancedData contains data for PhaseAdvanced events
type PhaseAdvancedData struct {
	Phase    int     `json:"phase"`
	Day      int     `json:"day"`
	NetWorth float64 `json:"net_worth"`
}

// EventType returns the event type for PhaseAdvancedData
func (d *PhaseAdvancedData) EventType() EventType {
	return PhaseAdvanced
}

// TradeExecutedData contains data for TradeExecuted events
type TradeExecutedData struct {
	Commodity string  `json:"commodity"`
	Side      string  `json:"side"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Venue     int     `json:"venue"`
}

// EventType returns the event type for TradeExecutedData
func (d *TradeExecutedData) EventType() EventType {
	return TradeExecuted
}

// ContractEventData contains data for ContractAccepted and ContractResolved events
type ContractEventData struct {
	ContractID string  `json:"contract_id"`
	Commodity  string  `json:"commodity"`
	Quantity   int     `json:"quantity"`
	Venue      int     `json:"venue"`
	Outcome    string  `json:"outcome,omitempty"` // "fulfilled" or "breached"
	Amount     float64 `json:"amount,omitempty"`
}

// EventType returns the event type for ContractEventData
func (d *ContractEventData) EventType() EventType {
	if d.Outcome == "" {
		return ContractAccepted
	}
	return ContractResolved
}

// LoanEventData contains data for LoanAccepted and LoanRepaid events
type LoanEventData struct {
	LoanID string  `json:"loan_id"`
	Lender string  `json:"lender"`
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate,omitempty"`
	Repaid bool    `json:"repaid,omitempty"`
}

// EventType returns the event type for LoanEventData
func (d *LoanEventData) EventType() EventType {
	if d.Repaid {
		return LoanRepaid
	}
	return LoanAccepted
}

// EncounterRolledData contains data for EncounterRolled events
type EncounterRolledData struct {
	Type        string  `json:"type"`
	Destination int     `json:"destination"`
	Demand      float64 `json:"demand,omitempty"`
	Risk        float64 `json:"risk,omitempty"`
}

// EventType returns the event type for EncounterRolledData
func (d *EncounterRolledData) EventType() EventType {
	return EncounterRolled
}

// EncounterResolvedData contains data for EncounterResolved events
type EncounterResolvedData struct {
	Type       string `json:"type"`
	Choice     string `json:"choice"`
	HullDamage int    `json:"hull_damage,omitempty"`
	Message    string `json:"message,omitempty"`
}

// EventType returns the event type for EncounterResolvedData
func (d *EncounterResolvedData) EventType() EventType {
	return EncounterResolved
}

// SnapshotSavedData contains data for SnapshotSaved events
type SnapshotSavedData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Day   int    `json:"day"`
}

// EventType returns the event type for SnapshotSavedData
func (d *SnapshotSavedData) EventType() EventType {
	return SnapshotSaved
}

// ScoreSubmittedData contains data for ScoreSubmitted events
type ScoreSubmittedData struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Qualified bool    `json:"qualified"`
}

// EventType returns the event type for ScoreSubmittedData
func (d *ScoreSubmittedData) EventType() EventType {
	return ScoreSubmitted
}

// ErrorEventData contains data for ErrorOccurred events
type ErrorEventData struct {
	Error   string                 `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// EventType returns the event type for ErrorEventData
func (d *ErrorEventData) EventType() EventType {
	return ErrorOccurred
}

// JobStatusData contains data for job lifecycle events
type JobStatusData struct {
	JobName   string                 `json:"job_name"`
	Status    string                 `json:"status"` // "started", "completed", "failed"
	Error     string                 `json:"error,omitempty"`
	Duration  float64                `json:"duration,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// EventType returns the event type for JobStatusData
// Note: The actual event type is determined by the Status field
func (d *JobStatusData) EventType() EventType {
	switch d.Status {
	case "completed":
		return JobCompleted
	case "failed":
		return JobFailed
	default:
		return JobStarted
	}
}

// EventWithData represents an event with typed data
type EventWithData struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Module    string    `json:"module"`
	Data      EventData `json:"data"`
}

// MarshalJSON customizes JSON serialization for EventWithData
func (e *EventWithData) MarshalJSON() ([]byte, error) {
	type Alias EventWithData
	aux := &struct {
		Data json.RawMessage `json:"data"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}

	// Marshal the data separately
	if e.Data != nil {
		dataBytes, err := json.Marshal(e.Data)
		if err != nil {
			return nil, err
		}
		aux.Data = dataBytes
	}

	return json.Marshal(aux)
}

// UnmarshalJSON customizes JSON deserialization for EventWithData
func (e *EventWithData) UnmarshalJSON(data []byte) error {
	type Alias EventWithData
	aux := &struct {
		Data json.RawMessage `json:"data"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	// Unmarshal data based on event type
	if len(aux.Data) > 0 {
		var eventData EventData
		switch aux.Type {
		case GameStarted:
			eventData = &GameStartedData{}
		case GameOver:
			eventData = &GameOverData{}
		case DayCompleted:
			eventData = &DayCompletedData{}
		case PhaseAdvanced:
			eventData = &PhaseAdvancedData{}
		case TradeExecuted:
			eventData = &TradeExecutedData{}
		case ContractAccepted, ContractResolved:
			eventData = &ContractEventData{}
		case LoanAccepted, LoanRepaid:
			eventData = &LoanEventData{}
		case EncounterRolled:
			eventData = &EncounterRolledData{}
		case EncounterResolved:
			eventData = &EncounterResolvedData{}
		case SnapshotSaved:
			eventData = &SnapshotSavedData{}
		case ScoreSubmitted:
			eventData = &ScoreSubmittedData{}
		case JobStarted, JobCompleted, JobFailed:
			eventData = &JobStatusData{}
		case ErrorOccurred:
			eventData = &ErrorEventData{}
		default:
			// For unknown types, use raw map
			var rawData map[string]interface{}
			if err := json.Unmarshal(aux.Data, &rawData); err != nil {
				return err
			}
			// Convert to generic data type
			eventData = &GenericEventData{Data: rawData}
		}

		if eventData != nil {
			if err := json.Unmarshal(aux.Data, eventData); err != nil {
				return err
			}
			e.Data = eventData
		}
	}

	return nil
}

// GenericEventData is a fallback for events that don't have a specific type
type GenericEventData struct {
	Type EventType              `json:"-"`
	Data map[string]interface{} `json:"-"`
}

// EventType returns the event type for GenericEventData
func (d *GenericEventData) EventType() EventType {
	return d.Type
}

// MarshalJSON customizes JSON serialization for GenericEventData
func (d *GenericEventData) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Data)
}

// UnmarshalJSON customizes JSON deserialization for GenericEventData
func (d *GenericEventData) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &d.Data)
}
