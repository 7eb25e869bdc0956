package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"workbridge_backend/internal/events"
	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/internal/validator"
	"workbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fivePDF() forms.FileInfo {
	content := bytes.Repeat([]byte("%"), forms.MaxCVSize)
	return forms.FileInfo{
		Name:        "resume.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func filledApplicationForm(t *testing.T) *forms.Controller[dto.CandidateApplication] {
	t.Helper()
	form := forms.NewApplicationForm(validator.New())
	require.NoError(t, form.Load(map[string]string{
		"first_name":         "Ana",
		"last_name":          "Pop",
		"email":              "ana@example.com",
		"phone":              "712 345 678",
		"phone_country_code": "RO",
		"nationality":        "Romania",
		"current_location":   "Cluj",
		"experience_years":   "4",
		"skills":             "cooking, cleaning",
	}, map[string][]string{
		"preferred_industries": {"Hospitality & Tourism"},
		"preferred_countries":  {"Poland"},
	}))
	require.NoError(t, form.Attach(fivePDF()))
	return form
}

func submitVia(svc ApplicationService) forms.SubmitFunc[dto.CandidateApplication] {
	return func(ctx context.Context, app dto.CandidateApplication, cv *forms.FileInfo) error {
		_, err := svc.Submit(ctx, nil, app, cv)
		return err
	}
}

func TestApplicationSubmit_UploadThenInsert(t *testing.T) {
	log := &callLog{}
	store := newFakeStorage(log)
	repo := newFakeCandidateRepo(log)
	rec := &events.Recorder{}
	svc := NewApplicationService(repo, store, nil, rec, "")

	form := filledApplicationForm(t)
	app, err := form.Submit(context.Background(), submitVia(svc))
	require.NoError(t, err)

	assert.Equal(t, []string{"storage.Save", "candidates.Create"}, log.all())
	assert.Equal(t, "Ana Pop", app.FullName)
	assert.Equal(t, forms.StateSuccess, form.State())

	require.Len(t, repo.candidates, 1)
	for _, c := range repo.candidates {
		require.NotNil(t, c.CVURL)
		assert.True(t, strings.HasPrefix(*c.CVURL, DefaultCVPrefix))
		assert.True(t, strings.HasSuffix(*c.CVURL, ".pdf"))
		assert.Len(t, store.objects[*c.CVURL], forms.MaxCVSize)
		assert.Equal(t, models.CandidateStatusPending, c.Status)
		assert.Equal(t, "+40 712 345 678", *c.Phone)
		assert.Equal(t, []string{"cooking", "cleaning"}, []string(c.Skills))
		assert.Equal(t, "Applied for: General Application", *c.Notes)
	}
	assert.Equal(t, []events.Type{events.CandidateCreated}, rec.Types())
}

func TestApplicationSubmit_UploadFailureSkipsInsert(t *testing.T) {
	log := &callLog{}
	store := newFakeStorage(log)
	store.saveErr = errors.New("bucket unavailable")
	repo := newFakeCandidateRepo(log)
	svc := NewApplicationService(repo, store, nil, nil, "")

	form := filledApplicationForm(t)
	_, err := form.Submit(context.Background(), submitVia(svc))
	require.Error(t, err)

	assert.Equal(t, []string{"storage.Save"}, log.all())
	assert.Empty(t, repo.candidates)
	assert.Equal(t, forms.StateError, form.State())
	require.NotNil(t, form.Notice())
	assert.Equal(t, "Failed to upload CV", form.Notice().Message)
	assert.Equal(t, "Ana", form.Value("first_name"))
}

func TestApplicationSubmit_InsertFailureRemovesUpload(t *testing.T) {
	log := &callLog{}
	store := newFakeStorage(log)
	repo := newFakeCandidateRepo(log)
	repo.createErr = errors.New("duplicate key")
	svc := NewApplicationService(repo, store, nil, nil, "")

	_, err := svc.Submit(context.Background(), nil, dto.CandidateApplication{FullName: "Ana Pop"}, ptr(fivePDF()))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInternalError, appErr.Code)
	assert.Equal(t, []string{"storage.Save", "candidates.Create", "storage.Delete"}, log.all())
	assert.Empty(t, store.objects)
}

func TestApplicationSubmit_RequiresCV(t *testing.T) {
	log := &callLog{}
	svc := NewApplicationService(newFakeCandidateRepo(log), newFakeStorage(log), nil, nil, "")

	_, err := svc.Submit(context.Background(), nil, dto.CandidateApplication{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrCVRequired)
	assert.Empty(t, log.all())
}

func TestApplicationSubmit_CancelledContextUploadsNothing(t *testing.T) {
	log := &callLog{}
	svc := NewApplicationService(newFakeCandidateRepo(log), newFakeStorage(log), nil, nil, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Submit(ctx, nil, dto.CandidateApplication{}, ptr(fivePDF()))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, log.all())
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.text, s.err
}

func TestApplicationSubmit_StoresExtractedText(t *testing.T) {
	log := &callLog{}
	repo := newFakeCandidateRepo(log)
	svc := NewApplicationService(repo, newFakeStorage(log), stubExtractor{text: "Line cook, 4 years"}, nil, "")

	c, err := svc.Submit(context.Background(), nil, dto.CandidateApplication{FullName: "Ana"}, ptr(fivePDF()))
	require.NoError(t, err)
	require.NotNil(t, c.CVText)
	assert.Equal(t, "Line cook, 4 years", *c.CVText)
}

func TestApplicationSubmit_ExtractionFailureIsIgnored(t *testing.T) {
	log := &callLog{}
	repo := newFakeCandidateRepo(log)
	svc := NewApplicationService(repo, newFakeStorage(log), stubExtractor{err: errors.New("pdftotext missing")}, nil, "")

	c, err := svc.Submit(context.Background(), nil, dto.CandidateApplication{FullName: "Ana"}, ptr(fivePDF()))
	require.NoError(t, err)
	assert.Nil(t, c.CVText)
}

func TestCVObjectPath(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	a := CVObjectPath("cvs/", at, "My CV.DOCX")
	b := CVObjectPath("cvs/", at, "My CV.DOCX")

	assert.True(t, strings.HasPrefix(a, "cvs/1700000000123-"))
	assert.True(t, strings.HasSuffix(a, ".docx"))
	assert.NotEqual(t, a, b)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "abc", truncateText("abc", 5))
	assert.Equal(t, "ab", truncateText("abcdef", 2))
	// "ă" is two bytes; cutting through it drops the partial rune
	assert.Equal(t, "a", truncateText("aăb", 2))
}

func ptr[T any](v T) *T { return &v }
