package interfaces

import (
	"context"

	"umzug_backoffice/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The service must be able to:
//   - snapshot a freshly calculated quote
//   - list a customer's quotes (customer_id GSI)
//   - update status on lifecycle actions (send/accept/decline)
//   - update the price through the explicit override operation

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	UpdatePriceByID(ctx context.Context, id string, newPrice float64) (entities.Quote, error)
}
