package entities

import "time"

// QuoteStatus is the delivery lifecycle of a quote.
//
// Transitions: draft -> sent_manual | sent_api, and sent_api -> confirmed
// by explicit user action only. sent_manual, sent_api and confirmed are
// terminal for automated dispatch.
type QuoteStatus string

const (
	QuoteStatusDraft      QuoteStatus = "draft"
	QuoteStatusSentManual QuoteStatus = "sent_manual"
	QuoteStatusSentAPI    QuoteStatus = "sent_api"
	QuoteStatusConfirmed  QuoteStatus = "confirmed"
)

// Sent reports whether the quote left draft through either channel.
func (s QuoteStatus) Sent() bool {
	return s == QuoteStatusSentManual || s == QuoteStatusSentAPI
}

// OrderItem is one priced line of a quote, derived once per compile and
// never mutated afterwards. MatchedItemID is empty when no catalog entry
// matched; CalculatedPrice is 0 in that case.
type OrderItem struct {
	OriginalName    string  `json:"original_name"`
	MatchedItemID   string  `json:"matched_item_id,omitempty"`
	Quantity        float64 `json:"quantity"`
	Unit            Unit    `json:"unit"`
	CalculatedPrice float64 `json:"calculated_price"`
}

// Quote is the central aggregate: a priced, rendered order message plus its
// delivery state.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Items and Total are frozen at compile time; RawText and the phone number
// stay editable while the quote is a draft, and editing them never changes
// the computed total.
type Quote struct {
	ID                  string      `json:"id"`
	Timestamp           time.Time   `json:"timestamp"`
	Status              QuoteStatus `json:"status"`
	Items               []OrderItem `json:"items"`
	Total               int64       `json:"total"`
	RawText             string      `json:"raw_text"`
	CustomerName        string      `json:"customer_name,omitempty"`
	CustomerPhoneNumber string      `json:"customer_phone_number,omitempty"`
}
