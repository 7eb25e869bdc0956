package workers

import (
	"context"
	"time"

	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/storage"

	"gorm.io/gorm"
)

// OrphanSweeper removes stored CVs that no candidate references. It catches
// uploads whose candidate insert failed and whose compensating delete did
// not go through. Objects younger than the grace period are left alone so
// an in-flight submission never loses its file.
type OrphanSweeper struct {
	db            *gorm.DB
	store         storage.Storage
	candidateRepo repositories.CandidateRepository
	prefix        string
	grace         time.Duration
	now           func() time.Time
}

func NewOrphanSweeper(db *gorm.DB, store storage.Storage, candidateRepo repositories.CandidateRepository, prefix string, grace time.Duration) *OrphanSweeper {
	return &OrphanSweeper{
		db:            db,
		store:         store,
		candidateRepo: candidateRepo,
		prefix:        prefix,
		grace:         grace,
		now:           time.Now,
	}
}

func (w *OrphanSweeper) Name() string { return "orphan_sweeper" }

func (w *OrphanSweeper) Run(ctx context.Context) error {
	objects, err := w.store.List(ctx, w.prefix)
	if err != nil {
		logger.WorkerLog(w.Name(), "list_objects", err)
		return err
	}

	referenced, err := w.candidateRepo.CVPaths(ctx, w.db)
	if err != nil {
		logger.WorkerLog(w.Name(), "load_references", err)
		return err
	}

	cutoff := w.now().Add(-w.grace)
	removed, failed := 0, 0
	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := referenced[obj.Path]; ok {
			continue
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err := w.store.Delete(ctx, obj.Path); err != nil {
			failed++
			logger.WorkerLog(w.Name(), "delete_object", err, "path", obj.Path)
			continue
		}
		removed++
	}

	logger.WorkerLog(w.Name(), "sweep", nil, "scanned", len(objects), "removed", removed, "failed", failed)
	return nil
}
