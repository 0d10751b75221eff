package scheduler

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/analytics"
)

// HistoryPruneJob trims the recorded price history to a rolling window
// of recent game days so the history database stays small.
type HistoryPruneJob struct {
	log       zerolog.Logger
	engine    *engine.Engine
	analytics *analytics.Service
	keepDays  int
}

// NewHistoryPruneJob creates a new history prune job keeping keepDays
// of price history behind the current game day.
func NewHistoryPruneJob(eng *engine.Engine, svc *analytics.Service, keepDays int, log zerolog.Logger) *HistoryPruneJob {
	return &HistoryPruneJob{
		log:       log.With().Str("job", "history_prune").Logger(),
		engine:    eng,
		analytics: svc,
		keepDays:  keepDays,
	}
}

// Name returns the job name
func (j *HistoryPruneJob) Name() string {
	return "history_prune"
}

// Run executes the prune
func (j *HistoryPruneJob) Run() error {
	err := j.engine.WithState(func(state *domain.GameState) error {
		if state == nil {
			j.log.Debug().Msg("No session running, skipping history prune")
			return nil
		}
		return j.analytics.Prune(state, j.keepDays)
	})
	if err != nil {
		return fmt.Errorf("history prune failed: %w", err)
	}
	return nil
}
