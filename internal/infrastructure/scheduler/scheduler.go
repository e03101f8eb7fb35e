package scheduler

import (
	"context"
	"time"

	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/usecase/lifecycle"
	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs the tournament lifecycle sweep at a fixed interval
type Scheduler struct {
	scheduler gocron.Scheduler
	sweeper   *lifecycle.Sweeper
	interval  time.Duration
	logger    coreport.Logger
}

// NewScheduler creates a scheduler that sweeps tournament statuses
// every interval
func NewScheduler(
	sweeper *lifecycle.Sweeper,
	interval time.Duration,
	logger coreport.Logger,
) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		scheduler: sched,
		sweeper:   sweeper,
		interval:  interval,
		logger:    logger,
	}, nil
}

// Start registers the sweep job and begins running it. The first sweep
// runs immediately so restarts do not delay overdue transitions
func (s *Scheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := s.sweeper.Sweep(ctx); err != nil {
				s.logger.Error("Scheduled lifecycle sweep failed", map[string]any{
					"error": err.Error(),
				})
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()

	s.logger.Info("Lifecycle scheduler started", map[string]any{
		"interval": s.interval.String(),
	})

	return nil
}

// Stop shuts the scheduler down and waits for a running sweep to finish
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
