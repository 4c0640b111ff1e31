package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"veggiequote/internal/domain/entities"
	mock_interfaces "veggiequote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type dispatchFixture struct {
	quotes   *mock_interfaces.MockIQuoteRepository
	settings *mock_interfaces.MockISettingsRepository
	gateway  *mock_interfaces.MockIMessageGateway
	opener   *mock_interfaces.MockILinkOpener
	uc       *DispatchUseCase
}

func newDispatchFixture(t *testing.T, countdownSeconds int) (*gomock.Controller, *dispatchFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &dispatchFixture{
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		settings: mock_interfaces.NewMockISettingsRepository(ctrl),
		gateway:  mock_interfaces.NewMockIMessageGateway(ctrl),
		opener:   mock_interfaces.NewMockILinkOpener(ctrl),
	}
	f.uc = NewDispatchUseCaseWithTimer(f.quotes, f.settings, f.gateway, f.opener, countdownSeconds, 2*time.Millisecond)
	return ctrl, f
}

func draftQuote() entities.Quote {
	return entities.Quote{
		ID:                  "q-1",
		Status:              entities.QuoteStatusDraft,
		RawText:             "order text",
		CustomerPhoneNumber: "9876543210",
	}
}

func autoSettings(autoRedirect, instant, apiEnabled bool) entities.Settings {
	s := entities.DefaultSettings()
	s.Automation.AutoRedirect = autoRedirect
	s.Automation.InstantSend = instant
	s.Automation.API = entities.APIConfig{Enabled: apiEnabled, AccessToken: "token", PhoneNumberID: "555000"}
	return s
}

// waitForState polls the orchestrator until it leaves countdown/dispatching,
// failing the test on timeout instead of hanging it.
func waitForState(t *testing.T, f *dispatchFixture, quoteID string, want AutoSendState) AutoSendSnapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := f.uc.AutoSendState(context.Background(), quoteID)
		if err != nil {
			t.Fatalf("state lookup failed: %v", err)
		}
		if snap.State == want {
			return snap
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for state %s", want)
	return AutoSendSnapshot{}
}

func TestDispatchUseCase_EvaluateAutoSend_Ineligible(t *testing.T) {
	cases := []struct {
		name     string
		quote    entities.Quote
		settings entities.Settings
	}{
		{
			name:     "auto redirect disabled",
			quote:    draftQuote(),
			settings: autoSettings(false, false, false),
		},
		{
			name: "quote already sent",
			quote: func() entities.Quote {
				q := draftQuote()
				q.Status = entities.QuoteStatusSentManual
				return q
			}(),
			settings: autoSettings(true, false, false),
		},
		{
			name: "phone too short",
			quote: func() entities.Quote {
				q := draftQuote()
				q.CustomerPhoneNumber = "12345"
				return q
			}(),
			settings: autoSettings(true, false, false),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, f := newDispatchFixture(t, 2)
			defer ctrl.Finish()

			f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(tc.quote, nil)
			f.settings.EXPECT().Get(gomock.Any()).Return(tc.settings, nil)

			snap, err := f.uc.EvaluateAutoSend(context.Background(), "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if snap.State != AutoSendIdle {
				t.Fatalf("expected idle, got %s", snap.State)
			}
		})
	}
}

func TestDispatchUseCase_InstantSendAPI(t *testing.T) {
	t.Run("sends exactly once even when re-evaluated", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		q := draftQuote()
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil).AnyTimes()
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(true, true, true), nil).AnyTimes()
		f.gateway.EXPECT().
			SendText(gomock.Any(), gomock.Any(), "9876543210", "order text").
			Return(nil).
			Times(1)
		f.quotes.EXPECT().
			UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusSentAPI).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSentAPI}, nil).
			Times(1)

		snap, err := f.uc.EvaluateAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendSent {
			t.Fatalf("expected sent, got %s", snap.State)
		}

		// Second evaluation must be a no-op thanks to the one-shot guard.
		snap, err = f.uc.EvaluateAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendSent {
			t.Fatalf("expected sent after re-evaluate, got %s", snap.State)
		}
	})

	t.Run("api failure keeps quote draft and surfaces error", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil).AnyTimes()
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(true, true, true), nil)
		f.gateway.EXPECT().
			SendText(gomock.Any(), gomock.Any(), "9876543210", "order text").
			Return(errors.New("Access token expired"))
		// No UpdateStatusByID expectation: a failed send must not touch status.

		snap, err := f.uc.EvaluateAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendFailed {
			t.Fatalf("expected failed, got %s", snap.State)
		}
		if snap.LastError != "Access token expired" {
			t.Fatalf("expected verbatim gateway error, got %q", snap.LastError)
		}
	})
}

func TestDispatchUseCase_CountdownManual(t *testing.T) {
	ctrl, f := newDispatchFixture(t, 1)
	defer ctrl.Finish()

	f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil).AnyTimes()
	f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(true, false, false), nil)
	f.quotes.EXPECT().
		UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusSentManual).
		Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSentManual}, nil)
	f.opener.EXPECT().Open(gomock.Any()).DoAndReturn(func(link string) error {
		if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
			t.Fatalf("unexpected deep link: %q", link)
		}
		return nil
	})

	snap, err := f.uc.EvaluateAutoSend(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State != AutoSendCountdown {
		t.Fatalf("expected countdown, got %s", snap.State)
	}

	snap = waitForState(t, f, "q-1", AutoSendSent)
	if snap.DeepLink == "" {
		t.Fatalf("expected deep link in snapshot")
	}
}

func TestDispatchUseCase_ExplicitSendDuringCountdown(t *testing.T) {
	ctrl, f := newDispatchFixture(t, 3)
	defer ctrl.Finish()

	f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil).AnyTimes()
	f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(true, false, false), nil).AnyTimes()
	// Exactly one status write and one open: the explicit send. The pending
	// automated dispatch must not fire a second one after its countdown.
	f.quotes.EXPECT().
		UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusSentManual).
		Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSentManual}, nil).
		Times(1)
	f.opener.EXPECT().Open(gomock.Any()).Return(nil).Times(1)

	snap, err := f.uc.EvaluateAutoSend(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State != AutoSendCountdown {
		t.Fatalf("expected countdown, got %s", snap.State)
	}

	res, err := f.uc.ExplicitSend(context.Background(), "q-1", ChannelManual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Quote.Status != entities.QuoteStatusSentManual {
		t.Fatalf("unexpected result: %+v", res)
	}

	// Let the original countdown expire; nothing further may dispatch.
	time.Sleep(30 * time.Millisecond)

	snap, err = f.uc.AutoSendState(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State != AutoSendCancelled {
		t.Fatalf("expected cancelled after explicit send, got %s", snap.State)
	}
}

func TestDispatchUseCase_CountdownAbortsWhenQuoteLeftDraft(t *testing.T) {
	ctrl, f := newDispatchFixture(t, 1)
	defer ctrl.Finish()

	// The quote is draft at evaluation time but leaves draft before the
	// countdown expires; the stale snapshot must not be dispatched.
	sent := draftQuote()
	sent.Status = entities.QuoteStatusSentManual
	f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil).Times(1)
	f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(sent, nil).AnyTimes()
	f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(true, false, false), nil)
	// No gateway, opener or status-write expectations: nothing may go out.

	snap, err := f.uc.EvaluateAutoSend(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State != AutoSendCountdown {
		t.Fatalf("expected countdown, got %s", snap.State)
	}

	snap = waitForState(t, f, "q-1", AutoSendCancelled)
	if snap.State != AutoSendCancelled {
		t.Fatalf("expected cancelled, got %s", snap.State)
	}
}

func TestDispatchUseCase_CancelAutoSend(t *testing.T) {
	t.Run("cancel during countdown is terminal", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 1000)
		defer ctrl.Finish()

		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil).AnyTimes()
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(true, false, false), nil).AnyTimes()
		// Gateway and opener have no expectations: nothing may dispatch.

		snap, err := f.uc.EvaluateAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendCountdown {
			t.Fatalf("expected countdown, got %s", snap.State)
		}

		snap, err = f.uc.CancelAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendCancelled {
			t.Fatalf("expected cancelled, got %s", snap.State)
		}

		// Re-evaluating an eligible quote after cancel must never restart.
		snap, err = f.uc.EvaluateAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendCancelled {
			t.Fatalf("expected cancelled after re-evaluate, got %s", snap.State)
		}
	})

	t.Run("cancel while idle is terminal too", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil).AnyTimes()
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(true, false, false), nil).AnyTimes()

		snap, err := f.uc.CancelAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendCancelled {
			t.Fatalf("expected cancelled, got %s", snap.State)
		}

		snap, err = f.uc.EvaluateAutoSend(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.State != AutoSendCancelled {
			t.Fatalf("expected cancelled, got %s", snap.State)
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		f.quotes.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Quote{}, nil)

		_, err := f.uc.CancelAutoSend(context.Background(), "nope")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestDispatchUseCase_ExplicitSend(t *testing.T) {
	t.Run("invalid channel", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		_, err := f.uc.ExplicitSend(context.Background(), "q-1", "pigeon")
		if !errors.Is(err, ErrInvalidChannel) {
			t.Fatalf("expected ErrInvalidChannel, got %v", err)
		}
	})

	t.Run("api channel", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(false, false, true), nil)
		f.gateway.EXPECT().SendText(gomock.Any(), gomock.Any(), "9876543210", "order text").Return(nil)
		f.quotes.EXPECT().
			UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusSentAPI).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSentAPI}, nil)

		res, err := f.uc.ExplicitSend(context.Background(), "q-1", ChannelAPI)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Channel != ChannelAPI || res.Quote.Status != entities.QuoteStatusSentAPI {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("api channel failure leaves status alone", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(false, false, true), nil)
		f.gateway.EXPECT().SendText(gomock.Any(), gomock.Any(), "9876543210", "order text").Return(errors.New("rate limited"))

		_, err := f.uc.ExplicitSend(context.Background(), "q-1", ChannelAPI)
		if err == nil || err.Error() != "rate limited" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("manual channel flips status before open", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		statusUpdated := false
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(false, false, false), nil)
		f.quotes.EXPECT().
			UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusSentManual).
			DoAndReturn(func(_ context.Context, id string, st entities.QuoteStatus) (entities.Quote, error) {
				statusUpdated = true
				return entities.Quote{ID: id, Status: st}, nil
			})
		f.opener.EXPECT().Open(gomock.Any()).DoAndReturn(func(string) error {
			if !statusUpdated {
				t.Fatalf("status must flip before the link opens")
			}
			return nil
		})

		res, err := f.uc.ExplicitSend(context.Background(), "q-1", ChannelManual)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.Status != entities.QuoteStatusSentManual || res.DeepLink == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Warning != "" {
			t.Fatalf("expected no warning, got %q", res.Warning)
		}
	})

	t.Run("manual channel popup blocked is a warning not an error", func(t *testing.T) {
		ctrl, f := newDispatchFixture(t, 2)
		defer ctrl.Finish()

		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
		f.settings.EXPECT().Get(gomock.Any()).Return(autoSettings(false, false, false), nil)
		f.quotes.EXPECT().
			UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusSentManual).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSentManual}, nil)
		f.opener.EXPECT().Open(gomock.Any()).Return(errors.New("blocked"))

		res, err := f.uc.ExplicitSend(context.Background(), "q-1", ChannelManual)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Warning == "" {
			t.Fatalf("expected popup warning")
		}
		if res.Quote.Status != entities.QuoteStatusSentManual {
			t.Fatalf("status must stay sent even when the popup is blocked: %+v", res)
		}
	})
}
