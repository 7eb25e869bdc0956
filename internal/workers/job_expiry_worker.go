package workers

import (
	"context"
	"time"

	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/repositories"

	"gorm.io/gorm"
)

// JobExpiryWorker closes listings whose application deadline has passed.
type JobExpiryWorker struct {
	db      *gorm.DB
	jobRepo repositories.JobRepository
	now     func() time.Time
}

func NewJobExpiryWorker(db *gorm.DB, jobRepo repositories.JobRepository) *JobExpiryWorker {
	return &JobExpiryWorker{db: db, jobRepo: jobRepo, now: time.Now}
}

func (w *JobExpiryWorker) Name() string { return "job_expiry" }

func (w *JobExpiryWorker) Run(ctx context.Context) error {
	now := w.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	closed, err := w.jobRepo.DeactivateExpired(ctx, w.db, today)
	if err != nil {
		logger.WorkerLog(w.Name(), "deactivate_expired", err)
		return err
	}
	if closed > 0 {
		logger.WorkerLog(w.Name(), "deactivate_expired", nil, "closed", closed)
	}
	return nil
}
