package scheduler

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/snapshots"
)

// AutosaveLabel marks snapshots written by the autosave job, keeping
// them separate from manual saves during pruning.
const AutosaveLabel = "autosave"

// AutosaveJob periodically snapshots the running session and prunes old
// autosaves. Sessions that are over or not started are skipped.
type AutosaveJob struct {
	log       zerolog.Logger
	engine    *engine.Engine
	snapshots *snapshots.Service
	keep      int
}

// NewAutosaveJob creates a new autosave job retaining keep autosaves.
func NewAutosaveJob(eng *engine.Engine, snaps *snapshots.Service, keep int, log zerolog.Logger) *AutosaveJob {
	return &AutosaveJob{
		log:       log.With().Str("job", "autosave").Logger(),
		engine:    eng,
		snapshots: snaps,
		keep:      keep,
	}
}

// Name returns the job name
func (j *AutosaveJob) Name() string {
	return "autosave"
}

// Run executes the autosave
func (j *AutosaveJob) Run() error {
	var meta *snapshots.Meta

	err := j.engine.WithState(func(state *domain.GameState) error {
		if state == nil {
			j.log.Debug().Msg("No session running, skipping autosave")
			return nil
		}
		if state.GameOver {
			j.log.Debug().Msg("Session is over, skipping autosave")
			return nil
		}

		var saveErr error
		meta, saveErr = j.snapshots.Save(state, AutosaveLabel)
		return saveErr
	})
	if err != nil {
		return fmt.Errorf("autosave failed: %w", err)
	}
	if meta == nil {
		return nil
	}

	if err := j.snapshots.Prune(AutosaveLabel, j.keep); err != nil {
		return fmt.Errorf("autosave prune failed: %w", err)
	}

	j.log.Info().
		Str("snapshot_id", meta.ID).
		Int("day", meta.Day).
		Msg("Session autosaved")

	return nil
}
