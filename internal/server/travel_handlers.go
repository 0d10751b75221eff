package server

import (
	"net/http"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/travel"
)

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	var req travel.JumpRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	outcome, err := s.engine.Jump(req)
	if err != nil {
		s.writeRejection(w, err)
		return
	}

	if outcome.PendingEncounter != nil {
		s.events.EmitTyped(events.EncounterRolled, "travel", &events.EncounterRolledData{
			Type:        string(outcome.PendingEncounter.Type),
			Destination: req.Destination,
			Demand:      outcome.PendingEncounter.DemandAmount,
			Risk:        float64(outcome.PendingEncounter.RiskDamage),
		})
	}
	s.publishOutcome(outcome)
	s.writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleStay(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.engine.Stay()
	if err != nil {
		s.writeRejection(w, err)
		return
	}

	s.publishOutcome(outcome)
	s.writeJSON(w, http.StatusOK, outcome)
}

// handleEncounter returns the parked encounter, if any.
func (s *Server) handleEncounter(w http.ResponseWriter, r *http.Request) {
	enc := s.engine.PendingEncounter()
	if enc == nil {
		s.writeRejection(w, engine.ErrNoPendingEncounter)
		return
	}
	s.writeJSON(w, http.StatusOK, enc)
}

type resolveRequest struct {
	Choice string `json:"choice"`
}

func (s *Server) handleResolveEncounter(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	enc := s.engine.PendingEncounter()
	outcome, err := s.engine.ResolveEncounter(domain.EncounterChoice(req.Choice))
	if err != nil {
		s.writeRejection(w, err)
		return
	}

	if enc != nil {
		hull := 0
		if outcome.Report != nil {
			hull = outcome.Report.HullDamage
		}
		s.events.EmitTyped(events.EncounterResolved, "travel", &events.EncounterResolvedData{
			Type:       string(enc.Type),
			Choice:     req.Choice,
			HullDamage: hull,
		})
	}
	s.publishOutcome(outcome)
	s.writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleAdvancePhase(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.AdvancePhase(); err != nil {
		s.writeRejection(w, err)
		return
	}

	state := s.engine.State()
	s.events.EmitTyped(events.PhaseAdvanced, "engine", &events.PhaseAdvancedData{
		Phase:    state.GamePhase,
		Day:      state.Day,
		NetWorth: state.NetWorth(),
	})
	s.writeJSON(w, http.StatusOK, state)
}

// publishOutcome pushes terminal day results onto the event bus.
func (s *Server) publishOutcome(outcome *engine.JumpOutcome) {
	if !outcome.GameOver {
		return
	}
	day, nw := 0, 0.0
	if state := s.engine.State(); state != nil {
		day = state.Day
		nw = state.NetWorth()
	}
	s.events.EmitTyped(events.GameOver, "engine", &events.GameOverData{
		Reason:   outcome.GameOverReason,
		Day:      day,
		NetWorth: nw,
	})
}
