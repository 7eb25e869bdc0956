package forms

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"workbridge_backend/pkg/apperrors"
)

// FallbackMessage is shown when a failed submission carries no message.
const FallbackMessage = "An unexpected error occurred. Please try again."

var ErrSubmitting = errors.New("forms: submission in progress")

// FieldErrors maps a field to its message. It is returned by Submit when
// the form does not validate.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "forms: invalid fields: " + strings.Join(fields, ", ")
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the one-shot message a form shows after a submission.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

// Snapshot is a copy of the form values handed to a validate function.
type Snapshot struct {
	Fields     map[string]string
	Lists      map[string][]string
	Attachment *FileInfo
}

func (s Snapshot) Get(field string) string {
	return s.Fields[field]
}

func (s Snapshot) List(field string) []string {
	return s.Lists[field]
}

// ValidateFunc turns a snapshot into a typed value or field errors.
type ValidateFunc[T any] func(Snapshot) (T, map[string]string)

// SubmitFunc performs the side effect of a valid form.
type SubmitFunc[T any] func(ctx context.Context, value T, attachment *FileInfo) error

type Option func(*options)

type options struct {
	defaults          map[string]string
	listFields        []string
	sanitizers        map[string]func(string) string
	policy            *AttachmentPolicy
	requireAttachment string
	resetDelay        time.Duration
	successTitle      string
	successMessage    string
	failureTitle      string
}

// WithDefaults sets the values a fresh or reset form starts with.
func WithDefaults(defaults map[string]string) Option {
	return func(o *options) {
		for k, v := range defaults {
			o.defaults[k] = v
		}
	}
}

// WithSanitizer filters every value stored in field through fn. Characters
// fn drops are discarded without an error.
func WithSanitizer(field string, fn func(string) string) Option {
	return func(o *options) {
		if o.sanitizers == nil {
			o.sanitizers = map[string]func(string) string{}
		}
		o.sanitizers[field] = fn
	}
}

// WithLists declares the multi-select fields.
func WithLists(fields ...string) Option {
	return func(o *options) { o.listFields = append(o.listFields, fields...) }
}

// WithAttachment enables Attach with the given policy. A non-empty field
// makes the attachment required; its error is reported under that field.
func WithAttachment(policy AttachmentPolicy, requiredField string) Option {
	return func(o *options) {
		o.policy = &policy
		o.requireAttachment = requiredField
	}
}

// WithResetDelay schedules a Reset that long after a successful submission.
// Zero disables the automatic reset.
func WithResetDelay(d time.Duration) Option {
	return func(o *options) { o.resetDelay = d }
}

func WithSuccessNotice(title, message string) Option {
	return func(o *options) {
		o.successTitle = title
		o.successMessage = message
	}
}

func WithFailureTitle(title string) Option {
	return func(o *options) { o.failureTitle = title }
}

// Controller owns one form. All methods are safe for concurrent use.
type Controller[T any] struct {
	mu       sync.Mutex
	opts     options
	machine  *Machine
	validate ValidateFunc[T]

	fields     map[string]string
	lists      map[string][]string
	errors     map[string]string
	attachment *FileInfo
	notice     *Notice

	resetTimer *time.Timer
	done       chan struct{}
}

func NewController[T any](validate ValidateFunc[T], opts ...Option) *Controller[T] {
	o := options{
		defaults:     map[string]string{},
		successTitle: "Success",
		failureTitle: "Submission Failed",
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{
		opts:     o,
		machine:  NewMachine(),
		validate: validate,
	}
	c.clear()
	return c
}

// clear restores defaults. Caller holds mu (or owns c exclusively).
func (c *Controller[T]) clear() {
	c.fields = make(map[string]string, len(c.opts.defaults))
	for k, v := range c.opts.defaults {
		c.fields[k] = v
	}
	c.lists = make(map[string][]string, len(c.opts.listFields))
	for _, f := range c.opts.listFields {
		c.lists[f] = []string{}
	}
	c.errors = map[string]string{}
	c.attachment = nil
}

func (c *Controller[T]) State() State {
	return c.machine.State()
}

// edit moves a finished form back to idle before a change. Caller holds mu.
func (c *Controller[T]) edit() error {
	switch c.machine.State() {
	case StateSubmitting, StateValidating:
		return ErrSubmitting
	case StateSuccess:
		c.cancelReset()
	}
	_, err := c.machine.Fire(EventEdit)
	return err
}

// Set stores a field value and clears that field's error only.
func (c *Controller[T]) Set(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.edit(); err != nil {
		return err
	}
	if sanitize, ok := c.opts.sanitizers[field]; ok {
		value = sanitize(value)
	}
	c.fields[field] = value
	delete(c.errors, field)
	return nil
}

// Toggle adds item to a multi-select field, or removes it when present.
func (c *Controller[T]) Toggle(field, item string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.edit(); err != nil {
		return err
	}

	current := c.lists[field]
	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == item {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, item)
	}
	c.lists[field] = next
	delete(c.errors, field)
	return nil
}

// Attach replaces the attachment when f passes the policy. A rejected file
// leaves the previous attachment in place.
func (c *Controller[T]) Attach(f FileInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.policy == nil {
		return apperrors.NewBadRequestError("this form does not accept attachments")
	}
	if err := c.edit(); err != nil {
		return err
	}
	if err := c.opts.policy.Check(f); err != nil {
		return err
	}
	c.attachment = &f
	if c.opts.requireAttachment != "" {
		delete(c.errors, c.opts.requireAttachment)
	}
	return nil
}

// Load applies a batch of values, as posted by a client, through Set and
// Toggle.
func (c *Controller[T]) Load(fields map[string]string, lists map[string][]string) error {
	for k, v := range fields {
		if err := c.Set(k, v); err != nil {
			return err
		}
	}
	for k, items := range lists {
		for _, item := range items {
			if err := c.Toggle(k, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Controller[T]) Value(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields[field]
}

func (c *Controller[T]) List(field string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lists[field]...)
}

func (c *Controller[T]) Attachment() *FileInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attachment
}

func (c *Controller[T]) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

func (c *Controller[T]) Notice() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *Controller[T]) snapshot() Snapshot {
	s := Snapshot{
		Fields:     make(map[string]string, len(c.fields)),
		Lists:      make(map[string][]string, len(c.lists)),
		Attachment: c.attachment,
	}
	for k, v := range c.fields {
		s.Fields[k] = v
	}
	for k, v := range c.lists {
		s.Lists[k] = append([]string(nil), v...)
	}
	return s
}

// Submit validates the form and, when valid, runs fn. It returns
// ErrSubmitting if a submission is already running, FieldErrors when the
// form is invalid, or the error of fn. Values survive a failure.
func (c *Controller[T]) Submit(ctx context.Context, fn SubmitFunc[T]) (T, error) {
	var zero T

	c.mu.Lock()
	if _, err := c.machine.Fire(EventValidate); err != nil {
		c.mu.Unlock()
		if c.machine.State() == StateSubmitting || c.machine.State() == StateValidating {
			return zero, ErrSubmitting
		}
		return zero, err
	}
	c.errors = map[string]string{}
	c.notice = nil
	snap := c.snapshot()
	c.mu.Unlock()

	value, errs := c.validate(snap)
	if errs == nil {
		errs = map[string]string{}
	}
	if c.opts.requireAttachment != "" && snap.Attachment == nil {
		if _, exists := errs[c.opts.requireAttachment]; !exists {
			errs[c.opts.requireAttachment] = apperrors.ErrCVRequired.Message
		}
	}

	c.mu.Lock()
	if len(errs) > 0 {
		c.errors = errs
		c.machine.Fire(EventInvalid)
		c.mu.Unlock()
		return zero, FieldErrors(errs)
	}
	c.machine.Fire(EventValid)
	c.mu.Unlock()

	err := ctx.Err()
	if err == nil {
		err = fn(ctx, value, snap.Attachment)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.machine.Fire(EventFailed)
		c.notice = &Notice{
			Kind:    NoticeError,
			Title:   c.opts.failureTitle,
			Message: apperrors.UserMessage(err, FallbackMessage),
		}
		return zero, err
	}

	c.machine.Fire(EventSubmitted)
	c.notice = &Notice{
		Kind:    NoticeSuccess,
		Title:   c.opts.successTitle,
		Message: c.opts.successMessage,
	}
	c.scheduleReset()
	return value, nil
}

// scheduleReset arms the post-success reset. Caller holds mu.
func (c *Controller[T]) scheduleReset() {
	if c.opts.resetDelay <= 0 {
		return
	}
	done := make(chan struct{})
	c.done = done
	c.resetTimer = time.AfterFunc(c.opts.resetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// an edit or manual reset already superseded this one
		if c.done != done {
			return
		}
		c.resetLocked()
	})
}

// cancelReset stops a pending reset and releases Done waiters. Caller holds mu.
func (c *Controller[T]) cancelReset() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

// Reset clears values, errors and the attachment and returns to idle.
// It is rejected while a submission is running.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller[T]) resetLocked() {
	if _, err := c.machine.Fire(EventReset); err != nil {
		return
	}
	c.clear()
	c.cancelReset()
}

// Done is closed once the reset scheduled by a successful submission has
// run or been superseded. With nothing pending it is already closed.
func (c *Controller[T]) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return c.done
}
