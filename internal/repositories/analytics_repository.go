package repositories

import (
	"context"
	"time"

	"workbridge_backend/internal/models"

	"gorm.io/gorm"
)

// CountRow is one bucket of a grouped count.
type CountRow struct {
	Key   string
	Count int64
}

// DailyRow counts rows created on one calendar day (UTC).
type DailyRow struct {
	Day   time.Time
	Count int64
}

type AnalyticsRepository interface {
	CandidatesByStatus(ctx context.Context, db *gorm.DB) ([]CountRow, error)
	CandidatesByNationality(ctx context.Context, db *gorm.DB, limit int) ([]CountRow, error)
	JobsByCategory(ctx context.Context, db *gorm.DB, activeOnly bool) ([]CountRow, error)
	InquiriesByIndustry(ctx context.Context, db *gorm.DB) ([]CountRow, error)
	ApplicationsPerDay(ctx context.Context, db *gorm.DB, from, to time.Time) ([]DailyRow, error)
	RequestedPositions(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error)
}

type AnalyticsRepositoryImpl struct{}

func NewAnalyticsRepository() AnalyticsRepository {
	return &AnalyticsRepositoryImpl{}
}

func (r *AnalyticsRepositoryImpl) CandidatesByStatus(ctx context.Context, db *gorm.DB) ([]CountRow, error) {
	var rows []CountRow
	err := db.WithContext(ctx).Model(&models.Candidate{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) CandidatesByNationality(ctx context.Context, db *gorm.DB, limit int) ([]CountRow, error) {
	var rows []CountRow
	q := db.WithContext(ctx).Model(&models.Candidate{}).
		Select("nationality AS key, COUNT(*) AS count").
		Group("nationality").
		Order("count DESC, nationality ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) JobsByCategory(ctx context.Context, db *gorm.DB, activeOnly bool) ([]CountRow, error) {
	var rows []CountRow
	q := db.WithContext(ctx).Model(&models.Job{}).
		Select("category AS key, COUNT(*) AS count").
		Group("category").
		Order("count DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) InquiriesByIndustry(ctx context.Context, db *gorm.DB) ([]CountRow, error) {
	var rows []CountRow
	err := db.WithContext(ctx).Model(&models.JobInquiry{}).
		Select("industry AS key, COUNT(*) AS count").
		Group("industry").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// ApplicationsPerDay covers [from, to). Days without applications are absent.
func (r *AnalyticsRepositoryImpl) ApplicationsPerDay(ctx context.Context, db *gorm.DB, from, to time.Time) ([]DailyRow, error) {
	var rows []DailyRow
	err := db.WithContext(ctx).Model(&models.Candidate{}).
		Select("date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

// RequestedPositions sums the positions employers asked for in [from, to).
func (r *AnalyticsRepositoryImpl) RequestedPositions(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&models.JobInquiry{}).
		Select("COALESCE(SUM(positions), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	return total, err
}
