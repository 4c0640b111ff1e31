package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"
	"veggiequote/pkg/phone"
	"veggiequote/pkg/walink"
)

// AutoSendState is the automated dispatch state of one quote instance.
//
// idle -> countdown -> dispatching -> sent | failed
// idle -> dispatching (instant send)
// idle | countdown -> cancelled
//
// sent, cancelled and failed are terminal for automated dispatch; explicit
// user sends remain possible in any state.
type AutoSendState string

const (
	AutoSendIdle        AutoSendState = "idle"
	AutoSendCountdown   AutoSendState = "countdown"
	AutoSendDispatching AutoSendState = "dispatching"
	AutoSendSent        AutoSendState = "sent"
	AutoSendCancelled   AutoSendState = "cancelled"
	AutoSendFailed      AutoSendState = "failed"
)

const popupBlockedWarning = "Pop-up blocked! Please allow pop-ups for this site to open WhatsApp automatically."

var ErrSendInProgress = errors.New("a send is already in progress for this quote")

// AutoSendSnapshot is a point-in-time view of an orchestrator, safe to hand
// to callers for display.
type AutoSendSnapshot struct {
	QuoteID            string
	State              AutoSendState
	CountdownRemaining int
	DeepLink           string
	LastError          string
	Warning            string
}

// ExplicitSendResult reports a user-initiated send.
type ExplicitSendResult struct {
	Quote    entities.Quote
	Channel  string
	DeepLink string
	Warning  string
}

// SendOrchestrator decides, times and executes at most one automated send
// for a single quote instance. The one-shot hasAutoSent field is set the
// moment eligibility is first confirmed, before any countdown starts, so
// the automated path fires at most once no matter how often the inputs
// change or Evaluate is re-run. Explicit sends bypass the state machine but
// share the in-flight guard so two dispatches never overlap.
type SendOrchestrator struct {
	quoteID string

	repo    interfaces.IQuoteRepository
	gateway interfaces.IMessageGateway
	opener  interfaces.ILinkOpener

	countdownFrom int
	tick          time.Duration

	mu            sync.Mutex
	state         AutoSendState
	hasAutoSent   bool
	inFlight      bool
	remaining     int
	stopCountdown chan struct{}
	deepLink      string
	lastError     string
	warning       string
}

func newSendOrchestrator(
	quoteID string,
	repo interfaces.IQuoteRepository,
	gateway interfaces.IMessageGateway,
	opener interfaces.ILinkOpener,
	countdownFrom int,
	tick time.Duration,
) *SendOrchestrator {
	return &SendOrchestrator{
		quoteID:       quoteID,
		repo:          repo,
		gateway:       gateway,
		opener:        opener,
		countdownFrom: countdownFrom,
		tick:          tick,
		state:         AutoSendIdle,
	}
}

// Evaluate runs the eligibility check against a snapshot of the quote and
// automation settings. Ineligible quotes stay idle and may be re-evaluated
// later; once eligibility is confirmed the one-shot flag is set and either
// the countdown starts or dispatch begins immediately.
func (o *SendOrchestrator) Evaluate(ctx context.Context, q entities.Quote, automation entities.AutomationSettings) {
	o.mu.Lock()
	if o.hasAutoSent || o.state != AutoSendIdle {
		o.mu.Unlock()
		return
	}
	if !automation.AutoRedirect || q.Status != entities.QuoteStatusDraft {
		o.mu.Unlock()
		return
	}
	if !phone.Eligible(q.CustomerPhoneNumber) {
		o.mu.Unlock()
		return
	}

	// Eligibility confirmed: from here this instance auto-sends at most once.
	o.hasAutoSent = true

	if automation.InstantSend {
		o.state = AutoSendDispatching
		o.inFlight = true
		o.mu.Unlock()
		log.Printf("[send][orchestrator] instant dispatch quote_id=%s", o.quoteID)
		o.dispatch(ctx, q, automation)
		return
	}

	o.state = AutoSendCountdown
	o.remaining = o.countdownFrom
	stop := make(chan struct{})
	o.stopCountdown = stop
	o.mu.Unlock()

	log.Printf("[send][orchestrator] countdown started quote_id=%s seconds=%d", o.quoteID, o.countdownFrom)
	go o.runCountdown(stop, q, automation)
}

// runCountdown ticks the countdown down and dispatches on expiry. The quote
// and settings snapshots taken at eligibility time are what gets sent;
// later input changes no longer matter.
func (o *SendOrchestrator) runCountdown(stop <-chan struct{}, q entities.Quote, automation entities.AutomationSettings) {
	ticker := time.NewTicker(o.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			o.mu.Lock()
			if o.state != AutoSendCountdown {
				o.mu.Unlock()
				return
			}
			o.remaining--
			if o.remaining > 0 {
				o.mu.Unlock()
				continue
			}
			o.state = AutoSendDispatching
			o.inFlight = true
			o.stopCountdown = nil
			o.mu.Unlock()

			log.Printf("[send][orchestrator] countdown expired quote_id=%s", o.quoteID)
			o.dispatch(context.Background(), q, automation)
			return
		}
	}
}

// Cancel stops a pending automated send. Terminal: the instance never
// auto-sends afterwards, even if eligibility is re-confirmed. A dispatch
// that already started cannot be aborted.
func (o *SendOrchestrator) Cancel() AutoSendSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case AutoSendIdle, AutoSendCountdown:
		if o.stopCountdown != nil {
			close(o.stopCountdown)
			o.stopCountdown = nil
		}
		o.state = AutoSendCancelled
		o.hasAutoSent = true
		o.remaining = 0
		log.Printf("[send][orchestrator] auto-send cancelled quote_id=%s", o.quoteID)
	}
	return o.snapshotLocked()
}

// dispatch performs the single automated send attempt. Caller has already
// moved the state to Dispatching and set the in-flight guard.
// The quote snapshot may be stale by now: an explicit send or an edit can
// land during the countdown. A quote that already left draft must not be
// sent again, so the current status is re-checked before anything goes out.
func (o *SendOrchestrator) dispatch(ctx context.Context, q entities.Quote, automation entities.AutomationSettings) {
	if current, err := o.repo.GetByID(ctx, o.quoteID); err == nil && current.ID != "" && current.Status != entities.QuoteStatusDraft {
		o.mu.Lock()
		o.inFlight = false
		o.state = AutoSendCancelled
		o.mu.Unlock()
		log.Printf("[send][orchestrator] automated dispatch skipped quote_id=%s status=%s", o.quoteID, current.Status)
		return
	}

	if automation.API.Enabled {
		err := o.gateway.SendText(ctx, automation.API, q.CustomerPhoneNumber, q.RawText)

		o.mu.Lock()
		o.inFlight = false
		if err != nil {
			// Status stays draft; the error is surfaced, never retried.
			o.state = AutoSendFailed
			o.lastError = err.Error()
			o.mu.Unlock()
			log.Printf("[send][orchestrator] api dispatch failed quote_id=%s err=%v", o.quoteID, err)
			return
		}
		o.state = AutoSendSent
		o.mu.Unlock()

		if _, err := o.repo.UpdateStatusByID(ctx, o.quoteID, entities.QuoteStatusSentAPI); err != nil {
			log.Printf("[send][orchestrator] status update failed quote_id=%s err=%v", o.quoteID, err)
		}
		log.Printf("[send][orchestrator] api dispatch success quote_id=%s", o.quoteID)
		return
	}

	// Manual channel is optimistic: the status flips before the open result
	// is known, and a failed open only surfaces a warning.
	link := walink.DeepLink(q.CustomerPhoneNumber, q.RawText)
	if _, err := o.repo.UpdateStatusByID(ctx, o.quoteID, entities.QuoteStatusSentManual); err != nil {
		log.Printf("[send][orchestrator] status update failed quote_id=%s err=%v", o.quoteID, err)
	}
	openErr := o.opener.Open(link)

	o.mu.Lock()
	o.inFlight = false
	o.state = AutoSendSent
	o.deepLink = link
	if openErr != nil {
		o.warning = popupBlockedWarning
	}
	o.mu.Unlock()
	log.Printf("[send][orchestrator] manual dispatch quote_id=%s popup_blocked=%t", o.quoteID, openErr != nil)
}

// ExplicitSend performs a user-initiated send through the chosen channel.
// It runs independently of the automated machine but cannot overlap an
// in-flight dispatch for the same quote.
func (o *SendOrchestrator) ExplicitSend(ctx context.Context, q entities.Quote, automation entities.AutomationSettings, channel string) (ExplicitSendResult, error) {
	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return ExplicitSendResult{}, ErrSendInProgress
	}
	// The user taking over supersedes a pending automated send.
	if o.state == AutoSendCountdown {
		if o.stopCountdown != nil {
			close(o.stopCountdown)
			o.stopCountdown = nil
		}
		o.state = AutoSendCancelled
		o.remaining = 0
		log.Printf("[send][orchestrator] pending auto-send superseded by explicit send quote_id=%s", o.quoteID)
	}
	o.inFlight = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.inFlight = false
		o.mu.Unlock()
	}()

	switch channel {
	case ChannelAPI:
		if err := o.gateway.SendText(ctx, automation.API, q.CustomerPhoneNumber, q.RawText); err != nil {
			log.Printf("[send][orchestrator] explicit api send failed quote_id=%s err=%v", o.quoteID, err)
			return ExplicitSendResult{}, err
		}
		updated, err := o.repo.UpdateStatusByID(ctx, o.quoteID, entities.QuoteStatusSentAPI)
		if err != nil {
			return ExplicitSendResult{}, err
		}
		log.Printf("[send][orchestrator] explicit api send success quote_id=%s", o.quoteID)
		return ExplicitSendResult{Quote: updated, Channel: ChannelAPI}, nil

	case ChannelManual:
		link := walink.DeepLink(q.CustomerPhoneNumber, q.RawText)
		updated, err := o.repo.UpdateStatusByID(ctx, o.quoteID, entities.QuoteStatusSentManual)
		if err != nil {
			return ExplicitSendResult{}, err
		}
		warning := ""
		if err := o.opener.Open(link); err != nil {
			warning = popupBlockedWarning
		}
		log.Printf("[send][orchestrator] explicit manual send quote_id=%s popup_blocked=%t", o.quoteID, warning != "")
		return ExplicitSendResult{Quote: updated, Channel: ChannelManual, DeepLink: link, Warning: warning}, nil

	default:
		return ExplicitSendResult{}, ErrInvalidChannel
	}
}

func (o *SendOrchestrator) Snapshot() AutoSendSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *SendOrchestrator) snapshotLocked() AutoSendSnapshot {
	return AutoSendSnapshot{
		QuoteID:            o.quoteID,
		State:              o.state,
		CountdownRemaining: o.remaining,
		DeepLink:           o.deepLink,
		LastError:          o.lastError,
		Warning:            o.warning,
	}
}
