package workers

import (
	"context"
	"fmt"

	"workbridge_backend/internal/logger"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"
)

// Job is a unit of background work run on a cron schedule.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs jobs on cron specs. A run that is still going when the next
// tick fires is not started twice.
type Scheduler struct {
	cron  *cron.Cron
	group singleflight.Group
}

func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// Add registers job under spec. Runs receive the ctx passed to Start.
func (s *Scheduler) Add(ctx context.Context, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.runOnce(ctx, job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, job.Name(), err)
	}
	logger.Info("Worker scheduled", "worker", job.Name(), "spec", spec)
	return nil
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	_, _, _ = s.group.Do(job.Name(), func() (any, error) {
		if ctx.Err() != nil {
			return nil, nil
		}
		return nil, job.Run(ctx)
	})
}

// Start runs the scheduler until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	go func() {
		<-ctx.Done()
		stopped := s.cron.Stop()
		<-stopped.Done()
		logger.Info("Workers stopped")
	}()
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
