package services

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"workbridge_backend/internal/email"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/storage"

	"gorm.io/gorm"
)

// callLog records calls across fakes so tests can assert ordering.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeStorage struct {
	log     *callLog
	saveErr error
	objects map[string][]byte
}

func newFakeStorage(log *callLog) *fakeStorage {
	return &fakeStorage{log: log, objects: map[string][]byte{}}
}

func (s *fakeStorage) Save(ctx context.Context, path string, r io.Reader, contentType string) error {
	s.log.add("storage.Save")
	if s.saveErr != nil {
		return s.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[path] = b
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	b, ok := s.objects[path]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.log.add("storage.Delete")
	delete(s.objects, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/files/" + path + "?signed", nil
}

func (s *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return int64(len(s.objects[path])), nil
}

func (s *fakeStorage) List(ctx context.Context, prefix string) ([]storage.Object, error) {
	return nil, nil
}

type fakeCandidateRepo struct {
	log        *callLog
	createErr  error
	candidates map[string]*models.Candidate
	seq        int
}

func newFakeCandidateRepo(log *callLog) *fakeCandidateRepo {
	return &fakeCandidateRepo{log: log, candidates: map[string]*models.Candidate{}}
}

func (r *fakeCandidateRepo) Create(ctx context.Context, db *gorm.DB, c *models.Candidate) error {
	r.log.add("candidates.Create")
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	c.ID = "cand-" + string(rune('0'+r.seq))
	r.candidates[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*models.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, repositories.ErrCandidateNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) List(ctx context.Context, db *gorm.DB) ([]models.Candidate, error) {
	out := make([]models.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCandidateRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status models.CandidateStatus) error {
	r.log.add("candidates.UpdateStatus")
	c, ok := r.candidates[id]
	if !ok {
		return repositories.ErrCandidateNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeCandidateRepo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	r.log.add("candidates.Delete")
	if _, ok := r.candidates[id]; !ok {
		return repositories.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	return nil
}

func (r *fakeCandidateRepo) CVPaths(ctx context.Context, db *gorm.DB) (map[string]struct{}, error) {
	out := map[string]struct{}{}
	for _, c := range r.candidates {
		if c.CVURL != nil {
			out[*c.CVURL] = struct{}{}
		}
	}
	return out, nil
}

type sentMail struct {
	To       []string
	ReplyTo  string
	Subject  string
	Template string
	Data     email.TemplateData
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	sendErr error
	tplErr  error
}

func (m *fakeMailer) Send(ctx context.Context, e *email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{To: e.To, ReplyTo: e.ReplyTo, Subject: e.Subject})
	return nil
}

func (m *fakeMailer) SendTemplate(ctx context.Context, to []string, subject, templateName string, data email.TemplateData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tplErr != nil {
		return m.tplErr
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Template: templateName, Data: data})
	return nil
}

func (m *fakeMailer) Validate() error { return nil }

func (m *fakeMailer) messages() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}
