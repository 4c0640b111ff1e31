package response

import (
	"veggiequote/internal/usecase"
)

// AutoSendResponse mirrors one orchestrator snapshot for polling clients.
type AutoSendResponse struct {
	QuoteID            string `json:"quote_id"`
	State              string `json:"state"`
	CountdownRemaining int    `json:"countdown_remaining"`
	DeepLink           string `json:"deep_link,omitempty"`
	LastError          string `json:"last_error,omitempty"`
	Warning            string `json:"warning,omitempty"`
}

func FromAutoSendSnapshot(s usecase.AutoSendSnapshot) AutoSendResponse {
	return AutoSendResponse{
		QuoteID:            s.QuoteID,
		State:              string(s.State),
		CountdownRemaining: s.CountdownRemaining,
		DeepLink:           s.DeepLink,
		LastError:          s.LastError,
		Warning:            s.Warning,
	}
}

// QuoteWithAutoSendResponse pairs a quote with the automated-send state its
// creation or edit triggered.
type QuoteWithAutoSendResponse struct {
	Quote    QuoteResponse     `json:"quote"`
	AutoSend *AutoSendResponse `json:"auto_send,omitempty"`
}

// SendResultResponse reports an explicit user-initiated send.
type SendResultResponse struct {
	Quote    QuoteResponse `json:"quote"`
	Channel  string        `json:"channel"`
	DeepLink string        `json:"deep_link,omitempty"`
	Warning  string        `json:"warning,omitempty"`
}

func FromExplicitSendResult(r usecase.ExplicitSendResult) SendResultResponse {
	return SendResultResponse{
		Quote:    FromQuote(r.Quote),
		Channel:  r.Channel,
		DeepLink: r.DeepLink,
		Warning:  r.Warning,
	}
}
