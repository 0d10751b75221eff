package engine

import (
	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/travel"
)

// JumpOutcome is the result of advancing the simulation by one day.
// PendingEncounter means the jump paused mid-transit and carries no report
// yet; PendingPhase means the completed day reached the phase goal and
// AdvancePhase must be called before play resumes.
type JumpOutcome struct {
	Report           *domain.DailyReport `json:"report,omitempty"`
	PendingEncounter *domain.Encounter   `json:"pending_encounter,omitempty"`
	PendingPhase     int                 `json:"pending_phase,omitempty"`
	GameOver         bool                `json:"game_over"`
	GameOverReason   string              `json:"game_over_reason,omitempty"`
}

// Stay spends the day at the current venue: no fuel, no encounter, just the
// daily tick and the goal check.
func (e *Engine) Stay() (*JumpOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}

	e.state.Day++
	report := &domain.DailyReport{Day: e.state.Day}
	e.processDay(report)
	return e.finishDay(report), nil
}

// Jump departs for another venue. When a transit encounter fires, the
// outcome carries it and the engine parks until ResolveEncounter supplies
// a choice; every other action is rejected in the meantime.
func (e *Engine) Jump(req travel.JumpRequest) (*JumpOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ready(); err != nil {
		return nil, err
	}

	report := &domain.DailyReport{Day: e.state.Day + 1}
	enc, err := e.travel.Depart(e.state, req, report)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		e.pendingEncounter = enc
		e.pendingJump = &req
		e.pendingReport = report
		return &JumpOutcome{PendingEncounter: enc}, nil
	}
	return e.completeJump(req, report), nil
}

// PendingEncounter returns the parked encounter, or nil.
func (e *Engine) PendingEncounter() *domain.Encounter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingEncounter
}

// ResolveEncounter applies a choice to the parked encounter and finishes
// the interrupted jump. An invalid choice leaves the encounter pending.
func (e *Engine) ResolveEncounter(choice domain.EncounterChoice) (*JumpOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil, ErrNoGame
	}
	if e.pendingEncounter == nil {
		return nil, ErrNoPendingEncounter
	}

	if err := e.travel.Resolve(e.state, e.pendingEncounter, choice, e.pendingReport); err != nil {
		return nil, err
	}

	req, report := *e.pendingJump, e.pendingReport
	e.pendingEncounter = nil
	e.pendingJump = nil
	e.pendingReport = nil
	return e.completeJump(req, report), nil
}

// completeJump lands the ship, runs the tick and evaluates the phase goal.
func (e *Engine) completeJump(req travel.JumpRequest, report *domain.DailyReport) *JumpOutcome {
	e.travel.Arrive(e.state, req, report)
	e.processDay(report)
	return e.finishDay(report)
}

// LastReport returns the most recent completed daily report, or nil if no
// day has finished yet.
func (e *Engine) LastReport() *domain.DailyReport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastReport
}

// finishDay checks the phase goal, the deadline and the bankruptcy floor
// after a completed tick.
func (e *Engine) finishDay(report *domain.DailyReport) *JumpOutcome {
	s := e.state
	e.lastReport = report
	out := &JumpOutcome{Report: report}
	nw := s.NetWorth()

	if s.GamePhase < 3 {
		if nw >= catalog.PhaseGoal(s.GamePhase) {
			e.pendingPhase = s.GamePhase + 1
			out.PendingPhase = e.pendingPhase
			return out
		}
		if s.Day > catalog.PhaseDeadline(s.GamePhase) {
			return e.endGame(out, "Deadline Missed.")
		}
	}
	if nw < catalog.BankruptcyFloor {
		return e.endGame(out, "Bankruptcy Declared.")
	}
	return out
}

func (e *Engine) endGame(out *JumpOutcome, reason string) *JumpOutcome {
	e.state.GameOver = true
	e.state.GameOverReason = reason
	out.GameOver = true
	out.GameOverReason = reason
	e.log.Info().Str("reason", reason).Float64("net_worth", e.state.NetWorth()).Msg("game over")
	return out
}

// AdvancePhase acknowledges a pending phase transition: the phase counter
// moves and every market is flooded with the supply glut.
func (e *Engine) AdvancePhase() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return ErrNoGame
	}
	if e.pendingPhase == 0 {
		return ErrNoPendingPhase
	}

	next := e.pendingPhase
	e.pendingPhase = 0
	e.state.GamePhase = next
	e.market.ApplyPhaseScaling(e.state, catalog.StockMultiplier(next))
	e.state.Log(domain.TagPhase, "PHASE %d STARTED. Markets expanded. Supply Glut detected!", next)
	e.log.Info().Int("phase", next).Msg("phase advanced")
	return nil
}
