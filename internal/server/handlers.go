package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/contracts"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/equipment"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/ledger"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/logistics"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/travel"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "starbuck",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// rejectionCodes maps engine and module rejections to stable API codes.
var rejectionCodes = []struct {
	err  error
	code string
}{
	{domain.ErrInsufficientFunds, "insufficient_funds"},
	{domain.ErrInsufficientCargoSpace, "insufficient_cargo_space"},
	{domain.ErrInsufficientStock, "insufficient_stock"},
	{domain.ErrInvalidDestination, "invalid_destination"},
	{domain.ErrDailyLimitReached, "daily_limit_reached"},
	{domain.ErrLocationMismatch, "location_mismatch"},
	{domain.ErrCapacityExceeded, "capacity_exceeded"},
	{engine.ErrNoGame, "no_game"},
	{engine.ErrGameOver, "game_over"},
	{engine.ErrEncounterPending, "encounter_pending"},
	{engine.ErrNoPendingEncounter, "no_pending_encounter"},
	{engine.ErrPhasePending, "phase_pending"},
	{engine.ErrNoPendingPhase, "no_pending_phase"},
	{travel.ErrInsufficientFuel, "insufficient_fuel"},
	{travel.ErrMissingEquipment, "missing_equipment"},
	{travel.ErrInvalidChoice, "invalid_choice"},
	{ledger.ErrLoanCapReached, "loan_cap_reached"},
	{ledger.ErrExistingLender, "existing_lender"},
	{ledger.ErrUnknownOffer, "unknown_offer"},
	{ledger.ErrUnknownLoan, "unknown_loan"},
	{ledger.ErrInvalidTerm, "invalid_term"},
	{ledger.ErrOutstandingDebt, "outstanding_debt"},
	{contracts.ErrUnknownContract, "unknown_contract"},
	{contracts.ErrContractLimit, "contract_limit"},
	{logistics.ErrInvalidTier, "invalid_tier"},
	{logistics.ErrInsufficientFuel, "insufficient_fuel"},
	{logistics.ErrNotArrived, "not_arrived"},
	{equipment.ErrUnknownItem, "unknown_item"},
	{equipment.ErrAlreadyOwned, "already_owned"},
	{equipment.ErrMissingPrerequisite, "missing_prerequisite"},
	{equipment.ErrNoLaser, "no_laser"},
	{equipment.ErrAtMaximum, "at_maximum"},
}

// writeRejection maps a rejected action to 422 with a stable code. Every
// rejection is a state no-op; none are server faults.
func (s *Server) writeRejection(w http.ResponseWriter, err error) {
	code := "rejected"
	for _, rc := range rejectionCodes {
		if errors.Is(err, rc.err) {
			code = rc.code
			break
		}
	}
	s.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
		"error": err.Error(),
		"code":  code,
	})
}

// decodeBody decodes a JSON request body, responding 400 on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
			"code":  "bad_request",
		})
		return false
	}
	return true
}
