package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"nhooyr.io/websocket"

	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
)

// streamedEventTypes is every event type pushed to websocket clients when
// no filter is given.
var streamedEventTypes = []events.EventType{
	events.GameStarted,
	events.GameOver,
	events.DayCompleted,
	events.PhaseAdvanced,
	events.TradeExecuted,
	events.ContractAccepted,
	events.ContractResolved,
	events.LoanAccepted,
	events.LoanRepaid,
	events.EncounterRolled,
	events.EncounterResolved,
	events.SnapshotSaved,
	events.ScoreSubmitted,
	events.JobStarted,
	events.JobCompleted,
	events.JobFailed,
	events.ErrorOccurred,
}

// handleEventsWS upgrades to a websocket and streams bus events to the
// client until it disconnects. A "types" query parameter narrows the
// subscription to a comma-separated subset.
func (s *Server) handleEventsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream closed")

	var allowedTypes map[events.EventType]bool
	if typesFilter := r.URL.Query().Get("types"); typesFilter != "" {
		allowedTypes = make(map[events.EventType]bool)
		for _, t := range strings.Split(typesFilter, ",") {
			allowedTypes[events.EventType(strings.TrimSpace(t))] = true
		}
	}

	s.log.Info().Msg("Client connected to event stream")

	// Buffer to prevent a slow client from blocking emitters
	eventChan := make(chan *events.Event, 100)
	eventHandler := func(event *events.Event) {
		if allowedTypes != nil && !allowedTypes[event.Type] {
			return
		}
		select {
		case eventChan <- event:
		default:
			s.log.Warn().
				Str("event_type", string(event.Type)).
				Msg("Event channel full, dropping event")
		}
	}

	if allowedTypes == nil {
		for _, eventType := range streamedEventTypes {
			s.eventBus.Subscribe(eventType, eventHandler)
		}
	} else {
		for eventType := range allowedTypes {
			s.eventBus.Subscribe(eventType, eventHandler)
		}
	}

	ctx := r.Context()

	// Initial connection message
	if err := s.writeWS(ctx, conn, map[string]interface{}{
		"type":    "connected",
		"message": "Connected to event stream",
	}); err != nil {
		return
	}

	// Heartbeat to keep the connection alive through idle proxies
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Client disconnected from event stream")
			conn.Close(websocket.StatusNormalClosure, "client gone")
			return

		case event := <-eventChan:
			s.log.Debug().
				Str("event_type", string(event.Type)).
				Msg("Sending event to client")

			payload := map[string]interface{}{
				"type":      string(event.Type),
				"module":    event.Module,
				"timestamp": event.Timestamp.Format(time.RFC3339),
				"data":      event.Data,
			}
			if err := s.writeWS(ctx, conn, payload); err != nil {
				return
			}

		case <-heartbeat.C:
			if err := s.writeWS(ctx, conn, map[string]interface{}{
				"type":      "heartbeat",
				"timestamp": time.Now().Format(time.RFC3339),
			}); err != nil {
				return
			}
		}
	}
}

// writeWS marshals and sends one message with a bounded write deadline.
func (s *Server) writeWS(ctx context.Context, conn *websocket.Conn, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to marshal event")
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		s.log.Debug().Err(err).Msg("Websocket write failed, dropping client")
		return err
	}
	return nil
}
