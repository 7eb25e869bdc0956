package services

import (
	"context"
	"time"

	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/services/dto"

	"gorm.io/gorm"
)

// JobService serves the public job board.
type JobService interface {
	ListPublic(ctx context.Context, db *gorm.DB, filter listing.JobFilter) (*dto.JobListResponse, error)
	GetPublic(ctx context.Context, db *gorm.DB, id string) (*dto.JobDetails, error)
	Catalog() dto.CatalogResponse
}

type jobService struct {
	jobRepo repositories.JobRepository
	now     func() time.Time
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo, now: time.Now}
}

func (s *jobService) ListPublic(ctx context.Context, db *gorm.DB, filter listing.JobFilter) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.ListActive(ctx, db)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}

	now := s.now()
	matched := listing.FilterJobs(jobs, filter)
	items := make([]dto.JobListItem, 0, len(matched))
	for _, job := range matched {
		items = append(items, dto.NewJobListItem(job, now))
	}

	return &dto.JobListResponse{Jobs: items, Total: len(items)}, nil
}

func (s *jobService) GetPublic(ctx context.Context, db *gorm.DB, id string) (*dto.JobDetails, error) {
	job, err := s.jobRepo.FindActiveByID(ctx, db, id)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}
	details := dto.NewJobDetails(*job, s.now())
	return &details, nil
}

func (s *jobService) Catalog() dto.CatalogResponse {
	return dto.NewCatalogResponse()
}
