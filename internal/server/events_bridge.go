package server

import (
	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
)

// TickPublisher publishes each completed daily tick onto the event bus,
// where the websocket stream picks it up. It is registered as an engine
// observer at startup.
type TickPublisher struct {
	events *events.Manager
}

// NewTickPublisher creates a tick publisher backed by the event manager.
func NewTickPublisher(eventsMgr *events.Manager) *TickPublisher {
	return &TickPublisher{events: eventsMgr}
}

// AfterTick implements engine.TickObserver.
func (p *TickPublisher) AfterTick(state *domain.GameState, report *domain.DailyReport) {
	p.events.EmitTyped(events.DayCompleted, "engine", &events.DayCompletedData{
		Day:      state.Day,
		Phase:    state.GamePhase,
		Venue:    state.CurrentVenue,
		Cash:     state.Cash,
		NetWorth: state.NetWorth(),
		Messages: len(report.Events),
	})
}
