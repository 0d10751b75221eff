// Package scheduler runs the background maintenance jobs on cron
// schedules: session autosaves, snapshot pruning and price history
// upkeep.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
)

// Job represents a scheduled job
type Job interface {
	Run() error
	Name() string
}

// Scheduler manages background jobs
type Scheduler struct {
	cron   *cron.Cron
	log    zerolog.Logger
	events *events.Manager
}

// New creates a new scheduler. events may be nil; job lifecycle events
// are then only logged.
func New(log zerolog.Logger, eventsMgr *events.Manager) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		log:    log.With().Str("component", "scheduler").Logger(),
		events: eventsMgr,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}

// AddJob registers a new job with cron schedule
// Schedule examples:
//   - "0 */5 * * * *"      - Every 5 minutes
//   - "@hourly"            - Every hour
//   - "@every 30s"         - Every 30 seconds
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.runJob(job)
	})

	if err != nil {
		return err
	}

	s.log.Info().
		Str("schedule", schedule).
		Str("job", job.Name()).
		Msg("Job registered")

	return nil
}

// RunNow executes a job immediately (outside schedule)
func (s *Scheduler) RunNow(job Job) error {
	s.log.Info().Str("job", job.Name()).Msg("Running job immediately")
	s.runJob(job)
	return nil
}

func (s *Scheduler) runJob(job Job) {
	s.log.Debug().Str("job", job.Name()).Msg("Running job")
	s.emitStatus(job.Name(), "started", nil, 0)

	start := time.Now()
	err := job.Run()
	duration := time.Since(start)

	if err != nil {
		s.log.Error().
			Err(err).
			Str("job", job.Name()).
			Msg("Job failed")
		s.emitStatus(job.Name(), "failed", err, duration)
		return
	}

	s.log.Debug().
		Str("job", job.Name()).
		Dur("duration", duration).
		Msg("Job completed")
	s.emitStatus(job.Name(), "completed", nil, duration)
}

func (s *Scheduler) emitStatus(name, status string, err error, duration time.Duration) {
	if s.events == nil {
		return
	}

	data := &events.JobStatusData{
		JobName:   name,
		Status:    status,
		Duration:  duration.Seconds(),
		Timestamp: time.Now(),
	}
	if err != nil {
		data.Error = err.Error()
	}
	s.events.EmitTyped(data.EventType(), "scheduler", data)
}
