package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// topNationalities caps the nationality breakdown.
const topNationalities = 10

type AnalyticsService interface {
	// Stats aggregates the current totals plus the applications and
	// requested positions that fall in [from, to).
	Stats(ctx context.Context, db *gorm.DB, from, to time.Time) (*dto.AdminStats, error)
}

type analyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) Stats(ctx context.Context, db *gorm.DB, from, to time.Time) (*dto.AdminStats, error) {
	if !from.Before(to) {
		return nil, apperrors.Wrap(ErrInvalidDateRange, apperrors.CodeInvalidOperation, "analytics",
			"date_from must be before date_to", http.StatusBadRequest)
	}

	var (
		byStatus, nationalities, byCategory, activeByCategory, byIndustry []repositories.CountRow
		perDay                                                            []repositories.DailyRow
		positions                                                         int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byStatus, err = s.analyticsRepo.CandidatesByStatus(gctx, db)
		return
	})
	g.Go(func() (err error) {
		nationalities, err = s.analyticsRepo.CandidatesByNationality(gctx, db, topNationalities)
		return
	})
	g.Go(func() (err error) {
		byCategory, err = s.analyticsRepo.JobsByCategory(gctx, db, false)
		return
	})
	g.Go(func() (err error) {
		activeByCategory, err = s.analyticsRepo.JobsByCategory(gctx, db, true)
		return
	})
	g.Go(func() (err error) {
		byIndustry, err = s.analyticsRepo.InquiriesByIndustry(gctx, db)
		return
	})
	g.Go(func() (err error) {
		perDay, err = s.analyticsRepo.ApplicationsPerDay(gctx, db, from, to)
		return
	})
	g.Go(func() (err error) {
		positions, err = s.analyticsRepo.RequestedPositions(gctx, db, from, to)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, handleRepoError(err, "analytics")
	}

	stats := &dto.AdminStats{
		Range: dto.StatsRange{From: from, To: to},
		Candidates: dto.CandidateStats{
			Total:         sumRows(byStatus),
			ByStatus:      buckets(byStatus),
			Nationalities: buckets(nationalities),
			ApprovalRate:  approvalRate(byStatus),
		},
		Jobs: dto.JobStats{
			Active:     sumRows(activeByCategory),
			ByCategory: buckets(byCategory),
		},
		Inquiries: dto.InquiryStats{
			Total:              sumRows(byIndustry),
			ByIndustry:         buckets(byIndustry),
			RequestedPositions: positions,
		},
		Applications: make([]dto.DailyCount, 0, len(perDay)),
	}
	for _, row := range perDay {
		stats.Applications = append(stats.Applications, dto.DailyCount{
			Day:   row.Day.UTC().Format("2006-01-02"),
			Count: row.Count,
		})
	}
	return stats, nil
}

func buckets(rows []repositories.CountRow) []dto.CountBucket {
	out := make([]dto.CountBucket, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CountBucket{Key: r.Key, Count: r.Count})
	}
	return out
}

func sumRows(rows []repositories.CountRow) int64 {
	var n int64
	for _, r := range rows {
		n += r.Count
	}
	return n
}

func approvalRate(byStatus []repositories.CountRow) float64 {
	var approved, rejected int64
	for _, r := range byStatus {
		switch models.CandidateStatus(r.Key) {
		case models.CandidateStatusApproved:
			approved = r.Count
		case models.CandidateStatusRejected:
			rejected = r.Count
		}
	}
	if approved+rejected == 0 {
		return 0
	}
	return float64(approved) / float64(approved+rejected)
}
