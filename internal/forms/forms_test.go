package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbridge_backend/internal/services/dto"
	"workbridge_backend/internal/validator"
	"workbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdf() FileInfo {
	return FileInfo{Name: "cv.pdf", ContentType: "application/pdf", Size: 1024}
}

func fillApplication(t *testing.T, c *Controller[dto.CandidateApplication]) {
	t.Helper()
	require.NoError(t, c.Load(map[string]string{
		"first_name":       "Ana",
		"last_name":        "Pop",
		"email":            "ana@example.com",
		"phone":            "712 345 678",
		"nationality":      "Romania",
		"current_location": "Cluj",
		"experience_years": "4",
		"skills":           "cooking, cleaning",
	}, map[string][]string{
		"preferred_industries": {"Hospitality & Tourism"},
		"preferred_countries":  {"Poland"},
	}))
}

func TestMachine_Transitions(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, StateIdle, m.State())

	_, err := m.Fire(EventSubmitted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateIdle, m.State())

	for _, step := range []struct {
		ev   Event
		want State
	}{
		{EventValidate, StateValidating},
		{EventValid, StateSubmitting},
		{EventFailed, StateError},
		{EventValidate, StateValidating},
		{EventValid, StateSubmitting},
		{EventSubmitted, StateSuccess},
		{EventReset, StateIdle},
	} {
		got, err := m.Fire(step.ev)
		require.NoError(t, err, step.ev)
		assert.Equal(t, step.want, got)
	}
}

func TestToggle_TwiceRestoresList(t *testing.T) {
	c := NewApplicationForm(validator.New())

	require.NoError(t, c.Toggle("preferred_countries", "Poland"))
	require.NoError(t, c.Toggle("preferred_countries", "Spain"))
	before := c.List("preferred_countries")

	require.NoError(t, c.Toggle("preferred_countries", "Italy"))
	require.NoError(t, c.Toggle("preferred_countries", "Italy"))
	assert.Equal(t, before, c.List("preferred_countries"))

	require.NoError(t, c.Toggle("preferred_countries", "Poland"))
	assert.Equal(t, []string{"Spain"}, c.List("preferred_countries"))
}

func TestSet_ClearsOnlyThatFieldError(t *testing.T) {
	c := NewApplicationForm(validator.New())

	_, err := c.Submit(context.Background(), func(context.Context, dto.CandidateApplication, *FileInfo) error {
		t.Fatal("submit must not run for an invalid form")
		return nil
	})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "First name is required", fe["first_name"])
	assert.Equal(t, "Please upload your CV", fe[CVField])
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Set("first_name", "Ana"))
	errs := c.Errors()
	assert.NotContains(t, errs, "first_name")
	assert.Contains(t, errs, "last_name")
	assert.Contains(t, errs, CVField)
}

func TestAttach_RejectionKeepsPrevious(t *testing.T) {
	c := NewApplicationForm(validator.New())
	require.NoError(t, c.Attach(pdf()))

	err := c.Attach(FileInfo{Name: "photo.png", ContentType: "image/png", Size: 10})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Equal(t, "cv.pdf", c.Attachment().Name)

	err = c.Attach(FileInfo{Name: "big.docx", Size: MaxCVSize + 1})
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Equal(t, "cv.pdf", c.Attachment().Name)

	// extension alone is enough
	require.NoError(t, c.Attach(FileInfo{Name: "CV.DOCX", ContentType: "application/octet-stream", Size: MaxCVSize}))
	assert.Equal(t, "CV.DOCX", c.Attachment().Name)
}

func TestSubmit_FailureKeepsValuesAndUsesFallback(t *testing.T) {
	c := NewApplicationForm(validator.New())
	fillApplication(t, c)
	require.NoError(t, c.Attach(pdf()))

	_, err := c.Submit(context.Background(), func(context.Context, dto.CandidateApplication, *FileInfo) error {
		return errors.New("")
	})
	require.Error(t, err)
	assert.Equal(t, StateError, c.State())
	assert.Equal(t, FallbackMessage, c.Notice().Message)
	assert.Equal(t, "Ana", c.Value("first_name"))
	assert.NotNil(t, c.Attachment())

	_, err = c.Submit(context.Background(), func(context.Context, dto.CandidateApplication, *FileInfo) error {
		return errors.New("Failed to upload CV: bucket missing")
	})
	require.Error(t, err)
	assert.Equal(t, "Failed to upload CV: bucket missing", c.Notice().Message)
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	c := NewApplicationForm(validator.New())
	fillApplication(t, c)
	require.NoError(t, c.Attach(pdf()))

	entered := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = c.Submit(context.Background(), func(context.Context, dto.CandidateApplication, *FileInfo) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	_, err := c.Submit(context.Background(), func(context.Context, dto.CandidateApplication, *FileInfo) error {
		t.Fatal("second submission must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrSubmitting)
	assert.ErrorIs(t, c.Set("first_name", "X"), ErrSubmitting)

	close(release)
}

func TestSubmit_SuccessNormalizesAndResets(t *testing.T) {
	c := NewApplicationForm(validator.New(), WithResetDelay(10*time.Millisecond))
	fillApplication(t, c)
	require.NoError(t, c.Set("job_title", "Line Cook"))
	require.NoError(t, c.Set("cover_letter", "Hello"))
	require.NoError(t, c.Attach(pdf()))

	var got dto.CandidateApplication
	_, err := c.Submit(context.Background(), func(_ context.Context, app dto.CandidateApplication, f *FileInfo) error {
		got = app
		require.NotNil(t, f)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Pop", got.FullName)
	assert.Equal(t, "+1 712 345 678", got.Phone)
	assert.Equal(t, []string{"cooking", "cleaning"}, got.Skills)
	assert.Equal(t, 4, got.ExperienceYears)
	assert.Equal(t, "Applied for: Line Cook\n\nCover Letter:\nHello", got.Notes)
	assert.Equal(t, NoticeSuccess, c.Notice().Kind)

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("form was not reset")
	}
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, "", c.Value("first_name"))
	assert.Equal(t, "US", c.Value("phone_country_code"))
	assert.Empty(t, c.List("preferred_countries"))
	assert.Nil(t, c.Attachment())
}

func TestSubmit_CancelledContextFails(t *testing.T) {
	c := NewInquiryForm(validator.New())
	require.NoError(t, c.Load(map[string]string{
		"company_name":   "Hotel Rex",
		"contact_person": "Ana",
		"email":          "ana@rex.ro",
		"phone":          "+40 700 000 000",
		"industry":       "hotels",
		"location":       "Brasov",
		"country":        "Romania",
	}, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := c.Submit(ctx, func(context.Context, dto.InquiryInput, *FileInfo) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Equal(t, StateError, c.State())
}

func TestInquiryForm_Defaults(t *testing.T) {
	c := NewInquiryForm(validator.New())
	assert.Equal(t, "1", c.Value("positions"))

	require.NoError(t, c.Load(map[string]string{
		"company_name":   "Hotel Rex",
		"contact_person": "Ana",
		"email":          "ana@rex.ro",
		"phone":          "+40 700 000 000",
		"industry":       "hotels",
		"positions":      "0",
		"location":       "Brasov",
		"country":        "Romania",
	}, nil))

	in, err := c.Submit(context.Background(), func(context.Context, dto.InquiryInput, *FileInfo) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, in.Positions)
	assert.Nil(t, in.JobDetails)
}

func TestJobEditorForm_Defaults(t *testing.T) {
	c := NewJobEditorForm(validator.New())
	assert.Equal(t, "Full-time", c.Value("job_type"))
	assert.Equal(t, "true", c.Value("is_active"))
}

func TestApplicationForm_PhoneDropsDisallowedCharacters(t *testing.T) {
	c := NewApplicationForm(validator.New())
	fillApplication(t, c)
	require.NoError(t, c.Set("phone", "712abc 345$-678"))
	assert.Equal(t, "712 345-678", c.Value("phone"))
	require.NoError(t, c.Attach(pdf()))

	app, err := c.Submit(context.Background(), func(context.Context, dto.CandidateApplication, *FileInfo) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "+1 712 345-678", app.Phone)
}

func TestJobEditorForm_RejectsBlankText(t *testing.T) {
	c := NewJobEditorForm(validator.New())
	require.NoError(t, c.Load(map[string]string{
		"title":    "   ",
		"company":  "\t",
		"location": "Madrid",
		"region":   "Spain",
		"category": "Kitchen",
	}, nil))

	_, err := c.Submit(context.Background(), func(context.Context, dto.JobInput, *FileInfo) error {
		t.Fatal("submit must not run for a blank title")
		return nil
	})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Title is required", fe["title"])
	assert.Equal(t, "Company is required", fe["company"])
	assert.NotContains(t, fe, "location")
}
