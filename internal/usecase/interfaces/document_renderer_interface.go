package interfaces

import "umzug_backoffice/internal/domain/entities"

// IDocumentRenderer produces the customer-facing documents. Every renderer
// must show each non-zero line item of the calculation's breakdown using
// the German currency convention.
type IDocumentRenderer interface {
	QuoteHTML(customer entities.Customer, calc entities.QuoteCalculation, details entities.QuoteDetails) (string, error)
	QuoteEmailText(customer entities.Customer, calc entities.QuoteCalculation) string
	QuotePDF(customer entities.Customer, calc entities.QuoteCalculation, details entities.QuoteDetails) ([]byte, error)
	WorkOrderPDF(customer entities.Customer, quote entities.Quote) ([]byte, error)
}
