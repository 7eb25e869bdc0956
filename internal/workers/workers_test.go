package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCandidates struct {
	repositories.CandidateRepository
	paths map[string]struct{}
	err   error
}

func (s *stubCandidates) CVPaths(ctx context.Context, db *gorm.DB) (map[string]struct{}, error) {
	return s.paths, s.err
}

type stubJobs struct {
	repositories.JobRepository
	today  time.Time
	closed int64
}

func (s *stubJobs) DeactivateExpired(ctx context.Context, db *gorm.DB, today time.Time) (int64, error) {
	s.today = today
	return s.closed, nil
}

func saveAged(t *testing.T, store *storage.LocalStorage, root, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), path, strings.NewReader("cv"), "application/pdf"))
	if age > 0 {
		at := time.Now().Add(-age)
		require.NoError(t, os.Chtimes(filepath.Join(root, filepath.FromSlash(path)), at, at))
	}
}

func TestOrphanSweeper_RemovesOnlyOldUnreferencedCVs(t *testing.T) {
	base := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: base, Bucket: "cvs-bucket"})
	require.NoError(t, err)
	root := filepath.Join(base, "cvs-bucket")

	saveAged(t, store, root, "cvs/orphan.pdf", 72*time.Hour)
	saveAged(t, store, root, "cvs/kept.pdf", 72*time.Hour)
	saveAged(t, store, root, "cvs/fresh.pdf", 0)
	saveAged(t, store, root, "other/file.pdf", 72*time.Hour)

	candidates := &stubCandidates{paths: map[string]struct{}{"cvs/kept.pdf": {}}}
	sweeper := NewOrphanSweeper(nil, store, candidates, "cvs/", 24*time.Hour)

	require.NoError(t, sweeper.Run(context.Background()))

	exists := func(p string) bool {
		ok, err := store.Exists(context.Background(), p)
		require.NoError(t, err)
		return ok
	}
	assert.False(t, exists("cvs/orphan.pdf"))
	assert.True(t, exists("cvs/kept.pdf"))
	assert.True(t, exists("cvs/fresh.pdf"))
	assert.True(t, exists("other/file.pdf"))
}

func TestOrphanSweeper_ReferenceLookupFailureDeletesNothing(t *testing.T) {
	base := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: base, Bucket: "b"})
	require.NoError(t, err)
	saveAged(t, store, filepath.Join(base, "b"), "cvs/a.pdf", 72*time.Hour)

	sweeper := NewOrphanSweeper(nil, store, &stubCandidates{err: errors.New("db down")}, "cvs/", time.Hour)
	assert.Error(t, sweeper.Run(context.Background()))

	ok, err := store.Exists(context.Background(), "cvs/a.pdf")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJobExpiryWorker_UsesStartOfToday(t *testing.T) {
	jobs := &stubJobs{closed: 2}
	w := NewJobExpiryWorker(nil, jobs)
	w.now = func() time.Time { return time.Date(2025, 3, 5, 17, 30, 0, 0, time.UTC) }

	require.NoError(t, w.Run(context.Background()))
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), jobs.today)
}

type countingJob struct{ runs int }

func (j *countingJob) Name() string                  { return "counting" }
func (j *countingJob) Run(ctx context.Context) error { j.runs++; return nil }

func TestScheduler(t *testing.T) {
	s := NewScheduler()
	job := &countingJob{}

	assert.Error(t, s.Add(context.Background(), "not a spec", job))
	require.NoError(t, s.Add(context.Background(), "@hourly", job))
	assert.Equal(t, 1, s.Entries())

	s.runOnce(context.Background(), job)
	assert.Equal(t, 1, job.runs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.runOnce(ctx, job)
	assert.Equal(t, 1, job.runs)
}
