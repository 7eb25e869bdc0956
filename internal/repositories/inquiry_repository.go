package repositories

import (
	"context"
	"errors"

	"workbridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("job inquiry not found")

type InquiryRepository interface {
	Create(ctx context.Context, db *gorm.DB, inquiry *models.JobInquiry) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*models.JobInquiry, error)
	List(ctx context.Context, db *gorm.DB) ([]models.JobInquiry, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type InquiryRepositoryImpl struct{}

func NewInquiryRepository() InquiryRepository {
	return &InquiryRepositoryImpl{}
}

func (r *InquiryRepositoryImpl) Create(ctx context.Context, db *gorm.DB, inquiry *models.JobInquiry) error {
	return db.WithContext(ctx).Create(inquiry).Error
}

func (r *InquiryRepositoryImpl) FindByID(ctx context.Context, db *gorm.DB, id string) (*models.JobInquiry, error) {
	var inquiry models.JobInquiry
	err := db.WithContext(ctx).First(&inquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepositoryImpl) List(ctx context.Context, db *gorm.DB) ([]models.JobInquiry, error) {
	var inquiries []models.JobInquiry
	err := db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

func (r *InquiryRepositoryImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Delete(&models.JobInquiry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
