package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"workbridge_backend/internal/events"
	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/internal/storage"
	"workbridge_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultCVPrefix is where CVs are stored when no prefix is configured.
const DefaultCVPrefix = "cvs/"

// compensateTimeout bounds the cleanup of an orphaned upload.
const compensateTimeout = 15 * time.Second

// ApplicationService takes public CV applications.
type ApplicationService interface {
	// Submit uploads the CV, then inserts the candidate. A failed upload
	// stops before the insert; a failed insert removes the uploaded file.
	Submit(ctx context.Context, db *gorm.DB, app dto.CandidateApplication, cv *forms.FileInfo) (*models.Candidate, error)
}

type applicationService struct {
	candidateRepo repositories.CandidateRepository
	storage       storage.Storage
	extractor     TextExtractor
	publisher     events.Publisher
	cvPrefix      string
	now           func() time.Time
}

// NewApplicationService wires the intake. extractor may be nil to skip CV
// text extraction.
func NewApplicationService(
	candidateRepo repositories.CandidateRepository,
	store storage.Storage,
	extractor TextExtractor,
	publisher events.Publisher,
	cvPrefix string,
) ApplicationService {
	if cvPrefix == "" {
		cvPrefix = DefaultCVPrefix
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &applicationService{
		candidateRepo: candidateRepo,
		storage:       store,
		extractor:     extractor,
		publisher:     publisher,
		cvPrefix:      cvPrefix,
		now:           time.Now,
	}
}

// CVObjectPath names a stored CV: millisecond timestamp, random suffix and
// the original extension.
func CVObjectPath(prefix string, now time.Time, filename string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s%d-%s%s", prefix, now.UnixMilli(), suffix, ext)
}

func (s *applicationService) Submit(ctx context.Context, db *gorm.DB, app dto.CandidateApplication, cv *forms.FileInfo) (*models.Candidate, error) {
	if cv == nil {
		return nil, apperrors.ErrCVRequired
	}

	cvPath, err := s.upload(ctx, cv)
	if err != nil {
		return nil, err
	}

	candidate := newCandidate(app, cvPath)
	if text := s.extractText(ctx, cv); text != "" {
		candidate.CVText = &text
	}

	if err := s.candidateRepo.Create(ctx, db, candidate); err != nil {
		s.compensate(ctx, cvPath)
		return nil, handleRepoError(err, "candidate")
	}

	logger.CtxInfo(ctx, "Application received", "candidate_id", candidate.ID, "cv_path", cvPath)
	s.publisher.Publish(events.New(events.CandidateCreated, candidate.ID, map[string]any{
		"full_name": candidate.FullName,
		"email":     candidate.Email,
		"job_id":    candidate.JobID,
	}))
	return candidate, nil
}

func (s *applicationService) upload(ctx context.Context, cv *forms.FileInfo) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := cv.Open()
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("open cv: %w", err))
	}
	defer f.Close()

	cvPath := CVObjectPath(s.cvPrefix, s.now(), cv.Name)
	if err := s.storage.Save(ctx, cvPath, f, cv.ContentType); err != nil {
		logger.CtxWithError(ctx, "CV upload failed", err, "cv_path", cvPath)
		return "", apperrors.ErrStorage(err, "Failed to upload CV")
	}
	return cvPath, nil
}

// extractText is best effort: failures are logged and the candidate is
// stored without CV text.
func (s *applicationService) extractText(ctx context.Context, cv *forms.FileInfo) string {
	if s.extractor == nil {
		return ""
	}

	f, err := cv.Open()
	if err != nil {
		logger.CtxWarn(ctx, "CV text extraction skipped", "error", err)
		return ""
	}
	defer f.Close()

	text, err := s.extractor.Extract(ctx, cv.Name, f)
	if err != nil {
		logger.CtxWarn(ctx, "CV text extraction failed", "file", cv.Name, "error", err)
		return ""
	}
	return text
}

// compensate removes an upload whose candidate row never made it. It runs
// even when the request context is already done.
func (s *applicationService) compensate(ctx context.Context, cvPath string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	if err := s.storage.Delete(cleanupCtx, cvPath); err != nil {
		logger.CtxWithError(ctx, "Failed to remove orphaned CV", err, "cv_path", cvPath)
		return
	}
	logger.CtxWarn(ctx, "Removed CV after failed insert", "cv_path", cvPath)
}

func newCandidate(app dto.CandidateApplication, cvPath string) *models.Candidate {
	c := &models.Candidate{
		FullName:            app.FullName,
		Email:               app.Email,
		CVURL:               &cvPath,
		Nationality:         app.Nationality,
		ExperienceYears:     app.ExperienceYears,
		JobID:               app.JobID,
		Skills:              pq.StringArray(app.Skills),
		PreferredIndustries: pq.StringArray(app.PreferredIndustries),
		PreferredCountries:  pq.StringArray(app.PreferredCountries),
		Status:              models.CandidateStatusPending,
	}
	if app.Phone != "" {
		p := app.Phone
		c.Phone = &p
	}
	if app.CurrentLocation != "" {
		loc := app.CurrentLocation
		c.CurrentLocation = &loc
	}
	if app.Notes != "" {
		notes := app.Notes
		c.Notes = &notes
	}
	if app.DateOfBirth != nil {
		dob := datatypes.Date(*app.DateOfBirth)
		c.DateOfBirth = &dob
	}
	return c
}
