package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"
)

const (
	ChannelAPI    = "api"
	ChannelManual = "manual"

	defaultCountdownSeconds = 2
)

var ErrInvalidChannel = errors.New("invalid send channel")

// IDispatchUseCase owns one send orchestrator per quote for the process
// lifetime and routes evaluation, cancellation and explicit sends to it.
type IDispatchUseCase interface {
	EvaluateAutoSend(ctx context.Context, quoteID string) (AutoSendSnapshot, error)
	CancelAutoSend(ctx context.Context, quoteID string) (AutoSendSnapshot, error)
	AutoSendState(ctx context.Context, quoteID string) (AutoSendSnapshot, error)
	ExplicitSend(ctx context.Context, quoteID, channel string) (ExplicitSendResult, error)
}

type DispatchUseCase struct {
	quotes   interfaces.IQuoteRepository
	settings interfaces.ISettingsRepository
	gateway  interfaces.IMessageGateway
	opener   interfaces.ILinkOpener

	countdownFrom int
	tick          time.Duration

	mu            sync.Mutex
	orchestrators map[string]*SendOrchestrator
}

var _ IDispatchUseCase = (*DispatchUseCase)(nil)

func NewDispatchUseCase(
	quotes interfaces.IQuoteRepository,
	settings interfaces.ISettingsRepository,
	gateway interfaces.IMessageGateway,
	opener interfaces.ILinkOpener,
) *DispatchUseCase {
	return NewDispatchUseCaseWithTimer(quotes, settings, gateway, opener, defaultCountdownSeconds, time.Second)
}

// NewDispatchUseCaseWithTimer exists so tests can shrink the countdown.
func NewDispatchUseCaseWithTimer(
	quotes interfaces.IQuoteRepository,
	settings interfaces.ISettingsRepository,
	gateway interfaces.IMessageGateway,
	opener interfaces.ILinkOpener,
	countdownSeconds int,
	tick time.Duration,
) *DispatchUseCase {
	return &DispatchUseCase{
		quotes:        quotes,
		settings:      settings,
		gateway:       gateway,
		opener:        opener,
		countdownFrom: countdownSeconds,
		tick:          tick,
		orchestrators: make(map[string]*SendOrchestrator),
	}
}

// orchestrator returns the per-quote orchestrator, creating it on first
// use. Orchestrators for different quotes never interact.
func (u *DispatchUseCase) orchestrator(quoteID string) *SendOrchestrator {
	u.mu.Lock()
	defer u.mu.Unlock()
	if o, ok := u.orchestrators[quoteID]; ok {
		return o
	}
	o := newSendOrchestrator(quoteID, u.quotes, u.gateway, u.opener, u.countdownFrom, u.tick)
	u.orchestrators[quoteID] = o
	return o
}

// EvaluateAutoSend re-runs the eligibility check for a quote against fresh
// snapshots. Called after compile and after every draft edit; harmless to
// call repeatedly thanks to the orchestrator's one-shot guard.
func (u *DispatchUseCase) EvaluateAutoSend(ctx context.Context, quoteID string) (AutoSendSnapshot, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return AutoSendSnapshot{}, err
	}
	s, err := u.settings.Get(ctx)
	if err != nil {
		return AutoSendSnapshot{}, err
	}

	o := u.orchestrator(quoteID)
	o.Evaluate(ctx, q, s.Automation)
	return o.Snapshot(), nil
}

func (u *DispatchUseCase) CancelAutoSend(ctx context.Context, quoteID string) (AutoSendSnapshot, error) {
	if _, err := u.loadQuote(ctx, quoteID); err != nil {
		return AutoSendSnapshot{}, err
	}
	return u.orchestrator(quoteID).Cancel(), nil
}

func (u *DispatchUseCase) AutoSendState(ctx context.Context, quoteID string) (AutoSendSnapshot, error) {
	if _, err := u.loadQuote(ctx, quoteID); err != nil {
		return AutoSendSnapshot{}, err
	}
	return u.orchestrator(quoteID).Snapshot(), nil
}

// ExplicitSend performs a user-initiated send. The channel choice is the
// user's; automation settings only contribute the API credentials.
func (u *DispatchUseCase) ExplicitSend(ctx context.Context, quoteID, channel string) (ExplicitSendResult, error) {
	if channel != ChannelAPI && channel != ChannelManual {
		return ExplicitSendResult{}, ErrInvalidChannel
	}

	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return ExplicitSendResult{}, err
	}
	s, err := u.settings.Get(ctx)
	if err != nil {
		return ExplicitSendResult{}, err
	}

	return u.orchestrator(quoteID).ExplicitSend(ctx, q, s.Automation, channel)
}

func (u *DispatchUseCase) loadQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
