// Package admin keeps the admin dashboard's view of jobs, inquiries and
// candidates and runs the mutating actions against a Store.
package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

// Store is the persistence the manager reads and mutates. Lists come back
// newest first.
type Store interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListInquiries(ctx context.Context) ([]models.JobInquiry, error)
	ListCandidates(ctx context.Context) ([]models.Candidate, error)

	CreateJob(ctx context.Context, in dto.JobInput, actorID string) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, in dto.JobInput, actorID string) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	DeleteInquiry(ctx context.Context, id string) error

	GetCandidate(ctx context.Context, id string) (*models.Candidate, error)
	UpdateCandidateStatus(ctx context.Context, id string, status models.CandidateStatus) error
	DeleteCandidate(ctx context.Context, id string) error
}

// Signer issues short-lived links to stored files.
type Signer interface {
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// DefaultCVLinkTTL is how long a CV link stays valid.
const DefaultCVLinkTTL = 60 * time.Second

type Manager struct {
	store    Store
	signer   Signer
	confirm  Confirmer
	workflow models.StatusWorkflow
	cvTTL    time.Duration

	mu         sync.Mutex
	jobs       Collection[models.Job]
	inquiries  Collection[models.JobInquiry]
	candidates Collection[models.Candidate]
	action     actionState
	notices    []forms.Notice
}

type Option func(*Manager)

func WithConfirmer(c Confirmer) Option {
	return func(m *Manager) { m.confirm = c }
}

func WithWorkflow(w models.StatusWorkflow) Option {
	return func(m *Manager) { m.workflow = w }
}

func WithCVLinkTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.cvTTL = ttl
		}
	}
}

// NewManager starts with all collections loading. Deletes are declined
// unless a Confirmer says otherwise.
func NewManager(store Store, signer Signer, opts ...Option) *Manager {
	m := &Manager{
		store:      store,
		signer:     signer,
		confirm:    Decline,
		workflow:   models.OpenStatusWorkflow,
		cvTTL:      DefaultCVLinkTTL,
		jobs:       newCollection[models.Job](),
		inquiries:  newCollection[models.JobInquiry](),
		candidates: newCollection[models.Candidate](),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load fetches the three collections concurrently. Each collection ends up
// loaded or in error on its own; a failed one keeps its previous items.
// When ctx is cancelled before the fetches finish, nothing is written and
// every collection goes back to the state it had before.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	m.jobs.begin()
	m.inquiries.begin()
	m.candidates.begin()
	m.mu.Unlock()

	var (
		jobs       []models.Job
		inquiries  []models.JobInquiry
		candidates []models.Candidate
		jobsErr    error
		inqErr     error
		candErr    error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, jobsErr = m.store.ListJobs(gctx)
		return nil
	})
	g.Go(func() error {
		inquiries, inqErr = m.store.ListInquiries(gctx)
		return nil
	})
	g.Go(func() error {
		candidates, candErr = m.store.ListCandidates(gctx)
		return nil
	})
	_ = g.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		m.jobs.restore()
		m.inquiries.restore()
		m.candidates.restore()
		return err
	}

	applyCollection(m, &m.jobs, jobs, jobsErr, NoticeLoadJobsFailed)
	applyCollection(m, &m.inquiries, inquiries, inqErr, NoticeLoadInquiriesFailed)
	applyCollection(m, &m.candidates, candidates, candErr, NoticeLoadCandidatesFailed)

	return errors.Join(jobsErr, inqErr, candErr)
}

// applyCollection records a fetch result. Caller holds m.mu.
func applyCollection[T any](m *Manager, c *Collection[T], items []T, err error, failMsg string) {
	if err != nil {
		c.fail(err)
		m.noticeLocked(forms.NoticeError, failMsg)
		return
	}
	c.succeed(items)
}

func refresh[T any](ctx context.Context, m *Manager, c *Collection[T], fetch func(context.Context) ([]T, error), failMsg string) error {
	m.mu.Lock()
	c.begin()
	m.mu.Unlock()

	items, err := fetch(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.restore()
		return ctxErr
	}
	applyCollection(m, c, items, err, failMsg)
	return err
}

// LoadJobs refetches only the jobs collection.
func (m *Manager) LoadJobs(ctx context.Context) error {
	return refresh(ctx, m, &m.jobs, m.store.ListJobs, NoticeLoadJobsFailed)
}

func (m *Manager) LoadInquiries(ctx context.Context) error {
	return refresh(ctx, m, &m.inquiries, m.store.ListInquiries, NoticeLoadInquiriesFailed)
}

func (m *Manager) LoadCandidates(ctx context.Context) error {
	return refresh(ctx, m, &m.candidates, m.store.ListCandidates, NoticeLoadCandidatesFailed)
}

func (m *Manager) refreshJobs(ctx context.Context)       { _ = m.LoadJobs(ctx) }
func (m *Manager) refreshInquiries(ctx context.Context)  { _ = m.LoadInquiries(ctx) }
func (m *Manager) refreshCandidates(ctx context.Context) { _ = m.LoadCandidates(ctx) }

// run drives one action through idle -> submitting -> idle and records the
// outcome notice. refetch runs only on success.
func (m *Manager) run(ctx context.Context, okMsg, failMsg string, do func() error, refetch func(context.Context)) error {
	m.mu.Lock()
	if err := m.action.begin(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.mu.Unlock()

	err := do()

	m.mu.Lock()
	m.action.end()
	if err != nil {
		m.noticeLocked(forms.NoticeError, failMsg)
		m.mu.Unlock()
		return err
	}
	m.noticeLocked(forms.NoticeSuccess, okMsg)
	m.mu.Unlock()

	if refetch != nil {
		refetch(ctx)
	}
	return nil
}

// SaveJob creates a job when id is empty and updates it otherwise.
func (m *Manager) SaveJob(ctx context.Context, id string, in dto.JobInput, actorID string) (*models.Job, error) {
	okMsg := NoticeJobCreated
	if id != "" {
		okMsg = NoticeJobUpdated
	}

	var saved *models.Job
	err := m.run(ctx, okMsg, NoticeJobSaveFailed, func() error {
		var err error
		if id == "" {
			saved, err = m.store.CreateJob(ctx, in, actorID)
		} else {
			saved, err = m.store.UpdateJob(ctx, id, in, actorID)
		}
		return err
	}, m.refreshJobs)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (m *Manager) DeleteJob(ctx context.Context, id string) error {
	if !m.confirm.Confirm(PromptDeleteJob) {
		return notConfirmed(PromptDeleteJob)
	}
	return m.run(ctx, NoticeJobDeleted, NoticeJobDeleteFailed, func() error {
		return m.store.DeleteJob(ctx, id)
	}, m.refreshJobs)
}

func (m *Manager) DeleteInquiry(ctx context.Context, id string) error {
	if !m.confirm.Confirm(PromptDeleteInquiry) {
		return notConfirmed(PromptDeleteInquiry)
	}
	return m.run(ctx, NoticeInquiryDeleted, NoticeInquiryDeleteFailed, func() error {
		return m.store.DeleteInquiry(ctx, id)
	}, m.refreshInquiries)
}

func (m *Manager) DeleteCandidate(ctx context.Context, id string) error {
	if !m.confirm.Confirm(PromptDeleteCandidate) {
		return notConfirmed(PromptDeleteCandidate)
	}
	return m.run(ctx, NoticeCandidateDeleted, NoticeCandidateDeleteFailed, func() error {
		return m.store.DeleteCandidate(ctx, id)
	}, m.refreshCandidates)
}

// UpdateCandidateStatus checks the change against the workflow before
// touching the store.
func (m *Manager) UpdateCandidateStatus(ctx context.Context, id string, status models.CandidateStatus) error {
	candidate, err := m.store.GetCandidate(ctx, id)
	if err != nil {
		return err
	}
	if !m.workflow.CanTransition(candidate.Status, status) {
		return apperrors.ErrInvalidStatus("candidate",
			fmt.Sprintf("Cannot change status from %s to %s", candidate.Status, status))
	}
	return m.run(ctx, NoticeStatusUpdated, NoticeStatusUpdateFailed, func() error {
		return m.store.UpdateCandidateStatus(ctx, id, status)
	}, m.refreshCandidates)
}

// CVLink returns a fresh signed link to the candidate's CV. Links are never
// cached; each call signs again.
func (m *Manager) CVLink(ctx context.Context, candidateID string) (string, error) {
	candidate, err := m.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return "", err
	}
	if candidate.CVURL == nil || *candidate.CVURL == "" {
		return "", apperrors.ErrNoCV
	}
	return m.signer.GetSignedURL(ctx, *candidate.CVURL, m.cvTTL)
}

func (m *Manager) CVLinkTTL() time.Duration {
	return m.cvTTL
}

func (m *Manager) Workflow() models.StatusWorkflow {
	return m.workflow
}

func (m *Manager) noticeLocked(kind forms.NoticeKind, msg string) {
	title := "Success"
	if kind == forms.NoticeError {
		title = "Error"
	}
	m.notices = append(m.notices, forms.Notice{Kind: kind, Title: title, Message: msg})
}

// Notices returns and clears the pending notices.
func (m *Manager) Notices() []forms.Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.notices
	m.notices = nil
	return out
}

func (m *Manager) Submitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.action.submitting
}

// --- views ---

func (m *Manager) JobsCollection() Collection[models.Job] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs.copy()
}

func (m *Manager) InquiriesCollection() Collection[models.JobInquiry] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inquiries.copy()
}

func (m *Manager) CandidatesCollection() Collection[models.Candidate] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.candidates.copy()
}

func (m *Manager) Jobs(f listing.AdminJobFilter) []models.Job {
	return listing.FilterAdminJobs(m.JobsCollection().Items, f)
}

func (m *Manager) Inquiries(f listing.InquiryFilter) []models.JobInquiry {
	return listing.FilterInquiries(m.InquiriesCollection().Items, f)
}

func (m *Manager) Candidates(f listing.CandidateFilter) []models.Candidate {
	return listing.FilterCandidates(m.CandidatesCollection().Items, f)
}

func (m *Manager) Nationalities() []string {
	return listing.Nationalities(m.CandidatesCollection().Items)
}
