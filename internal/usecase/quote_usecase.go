package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/domain/quoting"
	"veggiequote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrQuoteNotDraft          = errors.New("quote is not a draft")
	ErrQuoteNotConfirmable    = errors.New("only quotes sent via api can be confirmed")
	ErrRecognizerNotAvailable = errors.New("order recognizer not configured")
	ErrInvalidImage           = errors.New("invalid image payload")
)

// IQuoteUseCase exposes quote compilation and history operations.
//
//   - scan/compile => CompileFromImage() / CompileFromParsedOrder()
//   - inbox        => List() / GetByID()
//   - draft edits  => UpdateMessage()
//   - mark reply   => Confirm()
type IQuoteUseCase interface {
	CompileFromParsedOrder(ctx context.Context, parsed entities.ParsedOrder) (entities.Quote, error)
	CompileFromImage(ctx context.Context, imageBase64, mimeType string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateMessage(ctx context.Context, id, rawText, customerPhoneNumber string) (entities.Quote, error)
	Confirm(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	prices     interfaces.IPriceRepository
	settings   interfaces.ISettingsRepository
	recognizer interfaces.IOrderRecognizer
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the compiler's collaborators. recognizer may be nil
// when no recognition service is configured; CompileFromImage then fails
// with ErrRecognizerNotAvailable while everything else keeps working.
func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	prices interfaces.IPriceRepository,
	settings interfaces.ISettingsRepository,
	recognizer interfaces.IOrderRecognizer,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, prices: prices, settings: settings, recognizer: recognizer}
}

// CompileFromParsedOrder prices a recognized order against immutable
// snapshots of the catalog and settings, then persists the draft quote.
// Compilation itself is total; only collaborator I/O can fail.
func (u *QuoteUseCase) CompileFromParsedOrder(ctx context.Context, parsed entities.ParsedOrder) (entities.Quote, error) {
	catalog, err := u.prices.List(ctx)
	if err != nil {
		log.Printf("[quote][usecase] failed loading catalog err=%v", err)
		return entities.Quote{}, err
	}
	settings, err := u.settings.Get(ctx)
	if err != nil {
		log.Printf("[quote][usecase] failed loading settings err=%v", err)
		return entities.Quote{}, err
	}

	q := quoting.Compile(parsed, catalog, settings.Message, time.Now().UTC())
	q.ID = uuid.NewString()

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] quote create failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] compile success quote_id=%s items=%d total=%d", created.ID, len(created.Items), created.Total)
	return created, nil
}

// CompileFromImage runs the external recognizer first, steering it with the
// current catalog names, then compiles the result.
func (u *QuoteUseCase) CompileFromImage(ctx context.Context, imageBase64, mimeType string) (entities.Quote, error) {
	if u.recognizer == nil {
		return entities.Quote{}, ErrRecognizerNotAvailable
	}
	if strings.TrimSpace(imageBase64) == "" || strings.TrimSpace(mimeType) == "" {
		return entities.Quote{}, ErrInvalidImage
	}

	catalog, err := u.prices.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}

	parsed, err := u.recognizer.RecognizeOrder(ctx, imageBase64, mimeType, names)
	if err != nil {
		log.Printf("[quote][usecase] recognition failed err=%v", err)
		return entities.Quote{}, err
	}

	return u.CompileFromParsedOrder(ctx, parsed)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

// UpdateMessage edits the outgoing text and phone of a draft. Items and
// total are frozen at compile time, so the edit never reprices anything.
func (u *QuoteUseCase) UpdateMessage(ctx context.Context, id, rawText, customerPhoneNumber string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteNotDraft
	}

	updated, err := u.repo.UpdateMessageByID(ctx, id, rawText, customerPhoneNumber)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Confirm marks a reply received. Only sent_api quotes confirm; the manual
// channel has no delivery signal to confirm against.
func (u *QuoteUseCase) Confirm(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusSentAPI {
		return entities.Quote{}, ErrQuoteNotConfirmable
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.QuoteStatusConfirmed)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] confirm success quote_id=%s", id)
	return updated, nil
}
