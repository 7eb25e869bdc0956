package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbridge_backend/internal/repositories"
	"workbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAnalyticsRepo struct {
	statuses   []repositories.CountRow
	categories map[bool][]repositories.CountRow
	perDay     []repositories.DailyRow
	err        error
}

func (f *fakeAnalyticsRepo) CandidatesByStatus(ctx context.Context, db *gorm.DB) ([]repositories.CountRow, error) {
	return f.statuses, f.err
}

func (f *fakeAnalyticsRepo) CandidatesByNationality(ctx context.Context, db *gorm.DB, limit int) ([]repositories.CountRow, error) {
	return []repositories.CountRow{{Key: "Romania", Count: 3}}, nil
}

func (f *fakeAnalyticsRepo) JobsByCategory(ctx context.Context, db *gorm.DB, activeOnly bool) ([]repositories.CountRow, error) {
	return f.categories[activeOnly], nil
}

func (f *fakeAnalyticsRepo) InquiriesByIndustry(ctx context.Context, db *gorm.DB) ([]repositories.CountRow, error) {
	return []repositories.CountRow{{Key: "construction", Count: 2}, {Key: "hotels", Count: 1}}, nil
}

func (f *fakeAnalyticsRepo) ApplicationsPerDay(ctx context.Context, db *gorm.DB, from, to time.Time) ([]repositories.DailyRow, error) {
	return f.perDay, nil
}

func (f *fakeAnalyticsRepo) RequestedPositions(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	return 12, nil
}

func TestAnalyticsStats(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		statuses: []repositories.CountRow{
			{Key: "pending", Count: 5},
			{Key: "approved", Count: 3},
			{Key: "rejected", Count: 1},
		},
		categories: map[bool][]repositories.CountRow{
			false: {{Key: "Kitchen", Count: 4}, {Key: "Cleaning", Count: 2}},
			true:  {{Key: "Kitchen", Count: 3}},
		},
		perDay: []repositories.DailyRow{{Day: day, Count: 2}},
	}
	svc := NewAnalyticsService(repo)

	stats, err := svc.Stats(context.Background(), nil, day.AddDate(0, 0, -7), day.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.EqualValues(t, 9, stats.Candidates.Total)
	assert.InDelta(t, 0.75, stats.Candidates.ApprovalRate, 1e-9)
	assert.EqualValues(t, 3, stats.Jobs.Active)
	assert.Len(t, stats.Jobs.ByCategory, 2)
	assert.EqualValues(t, 3, stats.Inquiries.Total)
	assert.EqualValues(t, 12, stats.Inquiries.RequestedPositions)
	require.Len(t, stats.Applications, 1)
	assert.Equal(t, "2026-03-02", stats.Applications[0].Day)
}

func TestAnalyticsStats_NoDecisionsMeansZeroRate(t *testing.T) {
	repo := &fakeAnalyticsRepo{statuses: []repositories.CountRow{{Key: "pending", Count: 2}}}
	stats, err := NewAnalyticsService(repo).Stats(context.Background(), nil, time.Unix(0, 0), time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.Candidates.ApprovalRate)
	assert.NotNil(t, stats.Applications)
}

func TestAnalyticsStats_InvalidRange(t *testing.T) {
	now := time.Now()
	_, err := NewAnalyticsService(&fakeAnalyticsRepo{}).Stats(context.Background(), nil, now, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestAnalyticsStats_RepositoryFailure(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("connection reset")}
	_, err := NewAnalyticsService(repo).Stats(context.Background(), nil, time.Unix(0, 0), time.Now())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInternalError, appErr.Code)
}
