package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/database"
)

// HealthCheckJob performs database integrity checks and WAL upkeep on
// the game and history databases.
type HealthCheckJob struct {
	log       zerolog.Logger
	databases []*database.DB
}

// NewHealthCheckJob creates a new health check job for the given
// databases. Nil entries are skipped.
func NewHealthCheckJob(log zerolog.Logger, dbs ...*database.DB) *HealthCheckJob {
	return &HealthCheckJob{
		log:       log.With().Str("job", "health_check").Logger(),
		databases: dbs,
	}
}

// Name returns the job name
func (j *HealthCheckJob) Name() string {
	return "health_check"
}

// Run executes the health check
func (j *HealthCheckJob) Run() error {
	j.log.Info().Msg("Starting database health check")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, db := range j.databases {
		if db == nil {
			continue
		}

		if err := db.HealthCheck(ctx); err != nil {
			// Corruption is critical, cannot auto-recover
			return fmt.Errorf("database %s failed health check: %w", db.Name(), err)
		}
		j.log.Debug().Str("database", db.Name()).Msg("Database integrity OK")

		if err := db.WALCheckpoint(""); err != nil {
			j.log.Warn().
				Err(err).
				Str("database", db.Name()).
				Msg("WAL checkpoint failed")
		}
	}

	j.log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Health check completed successfully")

	return nil
}
