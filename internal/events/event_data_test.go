package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDataTypeDispatch(t *testing.T) {
	assert.Equal(t, GameStarted, (&GameStartedData{}).EventType())
	assert.Equal(t, TradeExecuted, (&TradeExecutedData{}).EventType())
	assert.Equal(t, EncounterRolled, (&EncounterRolledData{}).EventType())

	// Contract and loan data pick the event type from their outcome fields
	assert.Equal(t, ContractAccepted, (&ContractEventData{ContractID: "c1"}).EventType())
	assert.Equal(t, ContractResolved, (&ContractEventData{ContractID: "c1", Outcome: "breached"}).EventType())
	assert.Equal(t, LoanAccepted, (&LoanEventData{LoanID: "l1"}).EventType())
	assert.Equal(t, LoanRepaid, (&LoanEventData{LoanID: "l1", Repaid: true}).EventType())

	// Job status maps onto the three lifecycle types
	assert.Equal(t, JobStarted, (&JobStatusData{Status: "started"}).EventType())
	assert.Equal(t, JobCompleted, (&JobStatusData{Status: "completed"}).EventType())
	assert.Equal(t, JobFailed, (&JobStatusData{Status: "failed"}).EventType())
}

func TestEventWithDataRoundTrip(t *testing.T) {
	event := &EventWithData{
		Type:      TradeExecuted,
		Timestamp: time.Now().UTC(),
		Module:    "market",
		Data: &TradeExecutedData{
			Commodity: "Quantum Processors",
			Side:      "buy",
			Quantity:  12,
			Price:     850,
			Venue:     2,
		},
	}

	jsonData, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), "Quantum Processors")
	assert.Contains(t, string(jsonData), "TRADE_EXECUTED")

	var decoded EventWithData
	require.NoError(t, json.Unmarshal(jsonData, &decoded))

	trade, ok := decoded.Data.(*TradeExecutedData)
	require.True(t, ok, "expected typed trade data, got %T", decoded.Data)
	assert.Equal(t, "Quantum Processors", trade.Commodity)
	assert.Equal(t, 12, trade.Quantity)
	assert.Equal(t, 850.0, trade.Price)
}

func TestEventWithDataUnknownTypeFallsBackToGeneric(t *testing.T) {
	raw := `{"type":"SOMETHING_ELSE","timestamp":"2025-01-01T00:00:00Z","module":"test","data":{"key":"value"}}`

	var decoded EventWithData
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))

	generic, ok := decoded.Data.(*GenericEventData)
	require.True(t, ok, "expected generic data, got %T", decoded.Data)
	assert.Equal(t, "value", generic.Data["key"])
}

func TestEventGetTypedData(t *testing.T) {
	event := &Event{
		Type: DayCompleted,
		Data: map[string]interface{}{
			"day":       5,
			"phase":     1,
			"venue":     3,
			"cash":      12500.0,
			"net_worth": 18000.0,
		},
	}

	typed := event.GetTypedData()
	require.NotNil(t, typed)
	day, ok := typed.(*DayCompletedData)
	require.True(t, ok)
	assert.Equal(t, 5, day.Day)
	assert.Equal(t, 18000.0, day.NetWorth)

	assert.Nil(t, (&Event{Type: DayCompleted}).GetTypedData())
}

func TestBusSubscribeAndEmit(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var received []*Event
	bus.Subscribe(DayCompleted, func(event *Event) {
		received = append(received, event)
	})
	bus.Subscribe(GameOver, func(event *Event) {
		t.Fatal("no game over event was emitted")
	})

	bus.Emit(DayCompleted, "engine", map[string]interface{}{"day": 2})
	bus.Emit(TradeExecuted, "market", nil)
	bus.Emit(DayCompleted, "engine", map[string]interface{}{"day": 3})

	require.Len(t, received, 2)
	assert.Equal(t, DayCompleted, received[0].Type)
	assert.Equal(t, "engine", received[0].Module)
	assert.Equal(t, 3, received[1].Data["day"])
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestManagerEmitTypedPublishesToBus(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	manager := NewManager(bus, zerolog.Nop())

	var got *Event
	bus.Subscribe(PhaseAdvanced, func(event *Event) { got = event })

	manager.EmitTyped(PhaseAdvanced, "engine", &PhaseAdvancedData{Phase: 2, Day: 14, NetWorth: 260000})

	require.NotNil(t, got)
	typed := got.GetTypedData()
	require.NotNil(t, typed)
	phase, ok := typed.(*PhaseAdvancedData)
	require.True(t, ok)
	assert.Equal(t, 2, phase.Phase)
	assert.Equal(t, 260000.0, phase.NetWorth)
}

func TestManagerEmitError(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	manager := NewManager(bus, zerolog.Nop())

	var got *Event
	bus.Subscribe(ErrorOccurred, func(event *Event) { got = event })

	manager.EmitError("logistics", errors.New("warehouse seized"), map[string]interface{}{"venue": 4})

	require.NotNil(t, got)
	assert.Equal(t, "warehouse seized", got.Data["error"])
}
