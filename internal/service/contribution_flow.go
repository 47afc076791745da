package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/i18n"
	apperrors "daily-quotes/pkg/errors"
)

// DefaultCloseDelay is how long a settled submission stays visible.
const DefaultCloseDelay = 1400 * time.Millisecond

// timestampLayout matches JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// AfterFunc schedules f after d and returns a function that cancels it.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func timeAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// ContributionFlow drives the translation contribution form.
//
// Callers must hold mu around every method except Wait and Shutdown. The
// notify goroutine and the auto-close timer take mu themselves, so a
// submission that settles after the form was closed or reopened leaves the
// new draft alone.
type ContributionFlow struct {
	mu        sync.Locker
	quotes    domain.QuoteStore
	resolver  *TranslationResolver
	state     *StateStore
	notifier  domain.ContributionNotifier
	catalog   *i18n.Catalog
	logger    domain.Logger
	delay     time.Duration
	now       func() time.Time
	afterFunc AfterFunc

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	draft     domain.ContributionDraft
	gen       uint64
	stopTimer func() bool
}

// ContributionOptions tunes timing; zero values select the defaults.
type ContributionOptions struct {
	CloseDelay time.Duration
	Now        func() time.Time
	AfterFunc  AfterFunc
}

func NewContributionFlow(
	mu sync.Locker,
	quotes domain.QuoteStore,
	resolver *TranslationResolver,
	state *StateStore,
	notifier domain.ContributionNotifier,
	catalog *i18n.Catalog,
	opts ContributionOptions,
	logger domain.Logger,
) *ContributionFlow {
	if opts.CloseDelay <= 0 {
		opts.CloseDelay = DefaultCloseDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = timeAfterFunc
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ContributionFlow{
		mu:        mu,
		quotes:    quotes,
		resolver:  resolver,
		state:     state,
		notifier:  notifier,
		catalog:   catalog,
		logger:    logger,
		delay:     opts.CloseDelay,
		now:       opts.Now,
		afterFunc: opts.AfterFunc,
		ctx:       ctx,
		cancel:    cancel,
		draft:     domain.ContributionDraft{Status: domain.StatusIdle},
	}
}

// Draft returns a copy of the form state.
func (f *ContributionFlow) Draft() domain.ContributionDraft {
	d := f.draft
	if d.QuoteID != nil {
		id := *d.QuoteID
		d.QuoteID = &id
	}
	return d
}

// Open targets quoteID and pre-fills the draft with its current translation.
func (f *ContributionFlow) Open(quoteID int) error {
	q, ok := f.quotes.FindByID(quoteID)
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("Quote %d not found", quoteID), domain.ErrQuoteNotFound)
	}
	f.reset()
	text, _ := f.resolver.Resolve(q)
	f.draft = domain.ContributionDraft{
		Open:    true,
		QuoteID: &quoteID,
		Text:    text,
		Status:  domain.StatusIdle,
	}
	return nil
}

func (f *ContributionFlow) SetDraft(text string) error {
	if !f.draft.Open {
		return apperrors.WrapValidation("Contribution form is not open", domain.ErrContributionClosed)
	}
	f.draft.Text = text
	return nil
}

// Close discards the draft and its target.
func (f *ContributionFlow) Close() {
	f.reset()
}

func (f *ContributionFlow) reset() {
	f.gen++
	if f.stopTimer != nil {
		f.stopTimer()
		f.stopTimer = nil
	}
	f.draft = domain.ContributionDraft{Status: domain.StatusIdle}
}

// Submit records the draft locally, then delivers it in the background.
// The returned channel yields the terminal status once and is closed.
func (f *ContributionFlow) Submit(ctx context.Context) (<-chan domain.SubmissionStatus, error) {
	if !f.draft.Open || f.draft.QuoteID == nil {
		return nil, apperrors.WrapValidation("No quote selected for contribution", domain.ErrNoContributionTarget)
	}
	if f.draft.Status == domain.StatusPending {
		return nil, apperrors.WrapValidation("Submission already in progress", domain.ErrSubmissionPending)
	}
	text := strings.TrimSpace(f.draft.Text)
	if text == "" {
		return nil, apperrors.WrapValidation(f.catalog.T(i18n.MsgEmptyTranslation), domain.ErrEmptyTranslation)
	}

	id := *f.draft.QuoteID
	f.resolver.AddUserTranslation(id, text)
	f.state.SaveTranslations(ctx, f.resolver.Log())

	// A re-submit retires the previous result and its auto-close.
	if f.stopTimer != nil {
		f.stopTimer()
		f.stopTimer = nil
	}
	f.gen++
	f.draft.Status = domain.StatusPending
	f.draft.Message = ""
	gen := f.gen
	payload := domain.ContributionPayload{
		QuoteID:     id,
		Translation: text,
		Timestamp:   f.now().UTC().Format(timestampLayout),
	}

	done := make(chan domain.SubmissionStatus, 1)
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer close(done)

		status, msgid := domain.StatusSuccess, i18n.MsgSubmitted
		if err := f.notifier.Notify(f.ctx, payload); err != nil {
			status, msgid = domain.StatusError, i18n.MsgBackendFailed
			if apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
				msgid = i18n.MsgBackendUnreachable
			}
			f.logger.Warn("Contribution not delivered", "quote_id", id, "error", err.Error())
		} else {
			f.logger.Info("Contribution delivered", "quote_id", id)
		}

		f.mu.Lock()
		if f.gen == gen {
			f.draft.Status = status
			f.draft.Message = f.catalog.T(msgid)
			f.stopTimer = f.afterFunc(f.delay, func() { f.autoClose(gen) })
		}
		f.mu.Unlock()

		done <- status
	}()

	return done, nil
}

func (f *ContributionFlow) autoClose(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen == gen {
		f.reset()
	}
}

// Wait blocks until in-flight deliveries finish. Do not hold mu.
func (f *ContributionFlow) Wait() {
	f.wg.Wait()
}

// Shutdown aborts in-flight deliveries and pending auto-closes. Do not hold mu.
func (f *ContributionFlow) Shutdown() {
	f.cancel()
	f.wg.Wait()
	f.mu.Lock()
	if f.stopTimer != nil {
		f.stopTimer()
		f.stopTimer = nil
	}
	f.mu.Unlock()
}
