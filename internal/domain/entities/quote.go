package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (Angebot).
//
// Domain notes:
//   - Transitions are driven by user actions and confirmation links, never
//     by the pricing engine.
//   - Once Price is written it is treated as immutable truth for invoicing;
//     it changes only through the explicit price-update operation.

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSent      QuoteStatus = "sent"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusDeclined  QuoteStatus = "declined"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusInvoiced  QuoteStatus = "invoiced"
)

// CanTransitionTo reports whether a status change is allowed.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft:
		return next == QuoteStatusSent
	case QuoteStatusSent:
		return next == QuoteStatusAccepted || next == QuoteStatusDeclined
	case QuoteStatusAccepted:
		return next == QuoteStatusConfirmed
	case QuoteStatusConfirmed:
		return next == QuoteStatusInvoiced
	default:
		return false
	}
}

// Quote is the persisted quote record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Price snapshots FinalPrice at save time together with the QuoteDetails
// that produced it; the record is never recomputed from the stored details.
type Quote struct {
	ID            string       `json:"id"`
	CustomerID    string       `json:"customer_id"`
	CustomerName  string       `json:"customer_name"`
	Price         float64      `json:"price"`
	Volume        float64      `json:"volume"`
	Distance      float64      `json:"distance"`
	Status        QuoteStatus  `json:"status"`
	Version       int          `json:"version"`
	ParentQuoteID string       `json:"parent_quote_id,omitempty"`
	Details       QuoteDetails `json:"details"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
