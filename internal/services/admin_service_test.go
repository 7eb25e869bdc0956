package services

import (
	"context"
	"testing"
	"time"

	"workbridge_backend/internal/admin"
	"workbridge_backend/internal/events"
	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: map[string]*models.Job{}}
	for i := range jobs {
		j := jobs[i]
		r.jobs[j.ID] = &j
	}
	return r
}

func (r *fakeJobRepo) ListActive(ctx context.Context, db *gorm.DB) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.ordered() {
		if j.IsActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindActiveByID(ctx context.Context, db *gorm.DB, id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok || !j.IsActive {
		return nil, repositories.ErrJobNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) List(ctx context.Context, db *gorm.DB) ([]models.Job, error) {
	return r.ordered(), nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) Create(ctx context.Context, db *gorm.DB, job *models.Job) error {
	job.ID = "job-new"
	job.CreatedAt = time.Now()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, db *gorm.DB, job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

// ordered returns jobs newest first.
func (r *fakeJobRepo) ordered() []models.Job {
	out := make([]models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	for i := 1; i < len(out); i++ {
		for k := i; k > 0 && out[k].CreatedAt.After(out[k-1].CreatedAt); k-- {
			out[k], out[k-1] = out[k-1], out[k]
		}
	}
	return out
}

func jobInput(title string) dto.JobInput {
	salary := "$1,500"
	return dto.JobInput{
		Title:    title,
		Company:  "BuildCo",
		Location: "Warsaw",
		Region:   "Poland",
		Category: "Construction",
		JobType:  models.JobTypeFullTime,
		Salary:   &salary,
		IsActive: true,
	}
}

func TestAdminStore_JobLifecycleThroughManager(t *testing.T) {
	jobs := newFakeJobRepo()
	rec := &events.Recorder{}
	svc := NewAdminService(jobs, &fakeInquiryRepo{}, newFakeCandidateRepo(&callLog{}), nil, rec)

	m := admin.NewManager(svc.Store(nil), nil, admin.WithConfirmer(admin.Accept))
	ctx := context.Background()

	created, err := m.SaveJob(ctx, "", jobInput("Mason"), "admin-1")
	require.NoError(t, err)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, "admin-1", *created.CreatedBy)
	assert.Len(t, m.Jobs(listing.AdminJobFilter{}), 1)

	updated, err := m.SaveJob(ctx, created.ID, jobInput("Senior Mason"), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "Senior Mason", updated.Title)

	require.NoError(t, m.DeleteJob(ctx, created.ID))
	assert.Empty(t, m.Jobs(listing.AdminJobFilter{}))

	assert.Equal(t, []events.Type{events.JobSaved, events.JobSaved, events.JobDeleted}, rec.Types())
}

func TestAdminStore_UpdateMissingJobIsNotFound(t *testing.T) {
	svc := NewAdminService(newFakeJobRepo(), &fakeInquiryRepo{}, newFakeCandidateRepo(&callLog{}), nil, nil)

	_, err := svc.Store(nil).UpdateJob(context.Background(), "nope", jobInput("X"), "admin-1")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestAdminStore_DeleteCandidateRemovesCV(t *testing.T) {
	log := &callLog{}
	store := newFakeStorage(log)
	candidates := newFakeCandidateRepo(log)
	path := "cvs/1-abc.pdf"
	store.objects[path] = []byte("pdf")
	candidates.candidates["c-1"] = &models.Candidate{BaseModel: models.BaseModel{ID: "c-1"}, CVURL: &path}

	rec := &events.Recorder{}
	svc := NewAdminService(newFakeJobRepo(), &fakeInquiryRepo{}, candidates, store, rec)

	require.NoError(t, svc.Store(nil).DeleteCandidate(context.Background(), "c-1"))
	assert.Equal(t, []string{"candidates.Delete", "storage.Delete"}, log.all())
	assert.Empty(t, store.objects)
	assert.Equal(t, []events.Type{events.CandidateDeleted}, rec.Types())
}

func TestAdminStore_StatusUpdatePublishes(t *testing.T) {
	candidates := newFakeCandidateRepo(&callLog{})
	candidates.candidates["c-1"] = &models.Candidate{BaseModel: models.BaseModel{ID: "c-1"}, Status: models.CandidateStatusPending}
	rec := &events.Recorder{}
	svc := NewAdminService(newFakeJobRepo(), &fakeInquiryRepo{}, candidates, nil, rec)

	m := admin.NewManager(svc.Store(nil), nil)
	require.NoError(t, m.UpdateCandidateStatus(context.Background(), "c-1", models.CandidateStatusInterview))

	assert.Equal(t, models.CandidateStatusInterview, candidates.candidates["c-1"].Status)
	require.Len(t, rec.Events, 1)
	assert.Equal(t, events.CandidateUpdated, rec.Events[0].Type)
}

func TestJobService_PublicListing(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	salary := "$1,200 - $1,800"
	jobs := newFakeJobRepo(
		models.Job{BaseModel: models.BaseModel{ID: "1", CreatedAt: now.Add(-48 * time.Hour)}, Title: "Chef", Company: "Sol", Category: "Kitchen", Region: "Spain", Salary: &salary, IsActive: true},
		models.Job{BaseModel: models.BaseModel{ID: "2", CreatedAt: now.Add(-time.Hour)}, Title: "Cleaner", Company: "Sparkle", Category: "Cleaning", Region: "Spain", IsActive: true},
		models.Job{BaseModel: models.BaseModel{ID: "3", CreatedAt: now}, Title: "Sous chef", Company: "Mar", Category: "Kitchen", Region: "Spain", IsActive: false},
	)
	svc := &jobService{jobRepo: jobs, now: func() time.Time { return now }}

	resp, err := svc.ListPublic(context.Background(), nil, listing.JobFilter{Search: "chef"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "1", resp.Jobs[0].ID)
	assert.Equal(t, "2 days ago", resp.Jobs[0].PostedLabel)

	_, err = svc.GetPublic(context.Background(), nil, "3")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	details, err := svc.GetPublic(context.Background(), nil, "1")
	require.NoError(t, err)
	assert.Equal(t, "$1,200 - $1,800", details.SalaryLabel)
}

func (r *fakeJobRepo) DeactivateExpired(ctx context.Context, db *gorm.DB, today time.Time) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.IsActive && j.ApplicationDeadline != nil && time.Time(*j.ApplicationDeadline).Before(today) {
			j.IsActive = false
			n++
		}
	}
	return n, nil
}
