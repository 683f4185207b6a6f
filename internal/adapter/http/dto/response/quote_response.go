package response

import (
	"time"

	"umzug_backoffice/internal/domain/entities"
)

type QuoteResponse struct {
	ID            string                 `json:"id"`
	CustomerID    string                 `json:"customer_id"`
	CustomerName  string                 `json:"customer_name"`
	Price         float64                `json:"price"`
	Volume        float64                `json:"volume"`
	Distance      float64                `json:"distance"`
	Status        string                 `json:"status"`
	Version       int                    `json:"version"`
	ParentQuoteID string                 `json:"parent_quote_id,omitempty"`
	Details       entities.QuoteDetails  `json:"details"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		CustomerID:    q.CustomerID,
		CustomerName:  q.CustomerName,
		Price:         q.Price,
		Volume:        q.Volume,
		Distance:      q.Distance,
		Status:        string(q.Status),
		Version:       q.Version,
		ParentQuoteID: q.ParentQuoteID,
		Details:       q.Details,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// CreatedQuoteResponse pairs the persisted quote with the calculation that
// priced it, so the client can show the breakdown without a second call.
type CreatedQuoteResponse struct {
	Quote       QuoteResponse             `json:"quote"`
	Calculation entities.QuoteCalculation `json:"calculation"`
}

func FromCreatedQuote(q entities.Quote, calc entities.QuoteCalculation) CreatedQuoteResponse {
	return CreatedQuoteResponse{Quote: FromQuote(q), Calculation: calc}
}
