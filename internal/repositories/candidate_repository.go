package repositories

import (
	"context"
	"errors"

	"workbridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Create(ctx context.Context, db *gorm.DB, candidate *models.Candidate) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*models.Candidate, error)
	List(ctx context.Context, db *gorm.DB) ([]models.Candidate, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status models.CandidateStatus) error
	Delete(ctx context.Context, db *gorm.DB, id string) error

	// CVPaths returns every stored CV path still referenced by a candidate.
	CVPaths(ctx context.Context, db *gorm.DB) (map[string]struct{}, error)
}

type CandidateRepositoryImpl struct{}

func NewCandidateRepository() CandidateRepository {
	return &CandidateRepositoryImpl{}
}

func (r *CandidateRepositoryImpl) Create(ctx context.Context, db *gorm.DB, candidate *models.Candidate) error {
	if candidate.Status == "" {
		candidate.Status = models.CandidateStatusPending
	}
	return db.WithContext(ctx).Create(candidate).Error
}

func (r *CandidateRepositoryImpl) FindByID(ctx context.Context, db *gorm.DB, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := db.WithContext(ctx).First(&candidate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) List(ctx context.Context, db *gorm.DB) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := db.WithContext(ctx).Order("created_at DESC").Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepositoryImpl) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status models.CandidateStatus) error {
	result := db.WithContext(ctx).Model(&models.Candidate{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *CandidateRepositoryImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Delete(&models.Candidate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *CandidateRepositoryImpl) CVPaths(ctx context.Context, db *gorm.DB) (map[string]struct{}, error) {
	var paths []string
	err := db.WithContext(ctx).Model(&models.Candidate{}).
		Where("cv_url IS NOT NULL AND cv_url <> ''").
		Pluck("cv_url", &paths).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		out[p] = struct{}{}
	}
	return out, nil
}
