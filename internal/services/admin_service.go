package services

import (
	"context"

	"workbridge_backend/internal/admin"
	"workbridge_backend/internal/events"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/internal/storage"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminService backs the admin dashboard.
type AdminService interface {
	// Store binds the dashboard persistence to db for one request.
	Store(db *gorm.DB) admin.Store

	GetInquiry(ctx context.Context, db *gorm.DB, id string) (*models.JobInquiry, error)
}

type adminService struct {
	jobRepo       repositories.JobRepository
	inquiryRepo   repositories.InquiryRepository
	candidateRepo repositories.CandidateRepository
	storage       storage.Storage
	publisher     events.Publisher
}

func NewAdminService(
	jobRepo repositories.JobRepository,
	inquiryRepo repositories.InquiryRepository,
	candidateRepo repositories.CandidateRepository,
	store storage.Storage,
	publisher events.Publisher,
) AdminService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &adminService{
		jobRepo:       jobRepo,
		inquiryRepo:   inquiryRepo,
		candidateRepo: candidateRepo,
		storage:       store,
		publisher:     publisher,
	}
}

func (s *adminService) Store(db *gorm.DB) admin.Store {
	return &adminStore{adminService: s, db: db}
}

func (s *adminService) GetInquiry(ctx context.Context, db *gorm.DB, id string) (*models.JobInquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, db, id)
	if err != nil {
		return nil, handleRepoError(err, "inquiry")
	}
	return inquiry, nil
}

type adminStore struct {
	*adminService
	db *gorm.DB
}

func (s *adminStore) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, s.db)
	return jobs, handleRepoError(err, "job")
}

func (s *adminStore) ListInquiries(ctx context.Context) ([]models.JobInquiry, error) {
	inquiries, err := s.inquiryRepo.List(ctx, s.db)
	return inquiries, handleRepoError(err, "inquiry")
}

func (s *adminStore) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := s.candidateRepo.List(ctx, s.db)
	return candidates, handleRepoError(err, "candidate")
}

func (s *adminStore) CreateJob(ctx context.Context, in dto.JobInput, actorID string) (*models.Job, error) {
	job := &models.Job{}
	applyJobInput(job, in)
	if actorID != "" {
		job.CreatedBy = &actorID
	}

	if err := s.jobRepo.Create(ctx, s.db, job); err != nil {
		return nil, handleRepoError(err, "job")
	}

	logger.CtxInfo(ctx, "Job created", "job_id", job.ID, "actor_id", actorID)
	s.publisher.Publish(events.New(events.JobSaved, job.ID, job))
	return job, nil
}

func (s *adminStore) UpdateJob(ctx context.Context, id string, in dto.JobInput, actorID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}

	applyJobInput(job, in)
	if err := s.jobRepo.Update(ctx, s.db, job); err != nil {
		return nil, handleRepoError(err, "job")
	}

	logger.CtxInfo(ctx, "Job updated", "job_id", job.ID, "actor_id", actorID)
	s.publisher.Publish(events.New(events.JobSaved, job.ID, job))
	return job, nil
}

func (s *adminStore) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobRepo.Delete(ctx, s.db, id); err != nil {
		return handleRepoError(err, "job")
	}
	s.publisher.Publish(events.New(events.JobDeleted, id, nil))
	return nil
}

func (s *adminStore) DeleteInquiry(ctx context.Context, id string) error {
	if err := s.inquiryRepo.Delete(ctx, s.db, id); err != nil {
		return handleRepoError(err, "inquiry")
	}
	s.publisher.Publish(events.New(events.InquiryDeleted, id, nil))
	return nil
}

func (s *adminStore) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, handleRepoError(err, "candidate")
	}
	return candidate, nil
}

func (s *adminStore) UpdateCandidateStatus(ctx context.Context, id string, status models.CandidateStatus) error {
	if err := s.candidateRepo.UpdateStatus(ctx, s.db, id, status); err != nil {
		return handleRepoError(err, "candidate")
	}
	s.publisher.Publish(events.New(events.CandidateUpdated, id, map[string]any{"status": status}))
	return nil
}

// DeleteCandidate removes the row, then the stored CV. A CV that cannot be
// removed is left for the orphan sweeper.
func (s *adminStore) DeleteCandidate(ctx context.Context, id string) error {
	candidate, err := s.candidateRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return handleRepoError(err, "candidate")
	}
	if err := s.candidateRepo.Delete(ctx, s.db, id); err != nil {
		return handleRepoError(err, "candidate")
	}

	if candidate.CVURL != nil && *candidate.CVURL != "" && s.storage != nil {
		if err := s.storage.Delete(ctx, *candidate.CVURL); err != nil {
			logger.CtxWarn(ctx, "Failed to delete candidate CV", "candidate_id", id, "cv_path", *candidate.CVURL, "error", err)
		}
	}

	s.publisher.Publish(events.New(events.CandidateDeleted, id, nil))
	return nil
}

func applyJobInput(job *models.Job, in dto.JobInput) {
	job.Title = in.Title
	job.Company = in.Company
	job.Location = in.Location
	job.Region = in.Region
	job.Category = in.Category
	job.JobType = in.JobType
	job.Salary = in.Salary
	job.Description = in.Description
	job.Requirements = in.Requirements
	job.Benefits = in.Benefits
	job.IsActive = in.IsActive
	job.ApplicationDeadline = nil
	if in.ApplicationDeadline != nil {
		d := datatypes.Date(*in.ApplicationDeadline)
		job.ApplicationDeadline = &d
	}
}
