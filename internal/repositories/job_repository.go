package repositories

import (
	"context"
	"errors"
	"time"

	"workbridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	// Public listings: active jobs only, newest first.
	ListActive(ctx context.Context, db *gorm.DB) ([]models.Job, error)
	FindActiveByID(ctx context.Context, db *gorm.DB, id string) (*models.Job, error)

	// Admin
	List(ctx context.Context, db *gorm.DB) ([]models.Job, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*models.Job, error)
	Create(ctx context.Context, db *gorm.DB, job *models.Job) error
	Update(ctx context.Context, db *gorm.DB, job *models.Job) error
	Delete(ctx context.Context, db *gorm.DB, id string) error

	// DeactivateExpired closes active jobs whose application deadline is
	// before today and returns how many were closed.
	DeactivateExpired(ctx context.Context, db *gorm.DB, today time.Time) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) ListActive(ctx context.Context, db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindActiveByID(ctx context.Context, db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.WithContext(ctx).First(&job, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) List(ctx context.Context, db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(ctx context.Context, db *gorm.DB, job *models.Job) error {
	return db.WithContext(ctx).Create(job).Error
}

// Update writes every editable column, including ones cleared to NULL.
func (r *JobRepositoryImpl) Update(ctx context.Context, db *gorm.DB, job *models.Job) error {
	result := db.WithContext(ctx).Model(job).Select(
		"title", "company", "location", "region", "category", "job_type",
		"salary", "description", "requirements", "benefits",
		"application_deadline", "is_active", "updated_at",
	).Updates(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeactivateExpired(ctx context.Context, db *gorm.DB, today time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Model(&models.Job{}).
		Where("is_active = ? AND application_deadline IS NOT NULL AND application_deadline < ?", true, today.Format("2006-01-02")).
		Updates(map[string]any{"is_active": false, "updated_at": gorm.Expr("NOW()")})
	return result.RowsAffected, result.Error
}
