package usecase

import (
	"context"
	"fmt"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/domain/pricing"
	"umzug_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IDocumentUseCase renders quote documents and sends them out.
//
// Rendering reconstructs the calculation from the snapshotted details (the
// engine is pure, so identical inputs reproduce the breakdown) and pins the
// final price to the stored quote price, which stays the invoicing truth.

type IDocumentUseCase interface {
	EmailQuote(ctx context.Context, quoteID string) error
	QuotePDF(ctx context.Context, quoteID string) ([]byte, error)
	WorkOrderPDF(ctx context.Context, quoteID string) ([]byte, error)
}

type DocumentUseCase struct {
	quoteRepo    interfaces.IQuoteRepository
	customerRepo interfaces.ICustomerRepository
	renderer     interfaces.IDocumentRenderer
	mailer       interfaces.IMailer
	log          *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	quoteRepo interfaces.IQuoteRepository,
	customerRepo interfaces.ICustomerRepository,
	renderer interfaces.IDocumentRenderer,
	mailer interfaces.IMailer,
	log *zap.Logger,
) *DocumentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentUseCase{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
		renderer:     renderer,
		mailer:       mailer,
		log:          log,
	}
}

func (u *DocumentUseCase) EmailQuote(ctx context.Context, quoteID string) error {
	quote, customer, calc, err := u.load(ctx, quoteID)
	if err != nil {
		return err
	}

	html, err := u.renderer.QuoteHTML(customer, calc, quote.Details)
	if err != nil {
		u.log.Error("quote html rendering failed", zap.String("quote_id", quote.ID), zap.Error(err))
		return err
	}
	pdf, err := u.renderer.QuotePDF(customer, calc, quote.Details)
	if err != nil {
		u.log.Error("quote pdf rendering failed", zap.String("quote_id", quote.ID), zap.Error(err))
		return err
	}

	msg := interfaces.MailMessage{
		To:      []string{customer.Email},
		Subject: fmt.Sprintf("Ihr Umzugsangebot (%s)", quote.ID),
		Text:    u.renderer.QuoteEmailText(customer, calc),
		HTML:    html,
		Attachments: []interfaces.Attachment{
			{Filename: fmt.Sprintf("Umzugsangebot-%s.pdf", quote.ID), Content: pdf},
		},
	}

	if err := u.mailer.Send(ctx, msg); err != nil {
		u.log.Error("quote mail send failed",
			zap.String("quote_id", quote.ID),
			zap.String("customer_id", customer.ID),
			zap.Error(err))
		return err
	}

	u.log.Info("quote mailed",
		zap.String("quote_id", quote.ID),
		zap.String("customer_id", customer.ID),
		zap.Float64("price", quote.Price))
	return nil
}

func (u *DocumentUseCase) QuotePDF(ctx context.Context, quoteID string) ([]byte, error) {
	quote, customer, calc, err := u.load(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return u.renderer.QuotePDF(customer, calc, quote.Details)
}

func (u *DocumentUseCase) WorkOrderPDF(ctx context.Context, quoteID string) ([]byte, error) {
	quote, customer, _, err := u.load(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return u.renderer.WorkOrderPDF(customer, quote)
}

func (u *DocumentUseCase) load(ctx context.Context, quoteID string) (entities.Quote, entities.Customer, entities.QuoteCalculation, error) {
	quote, err := u.getQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, entities.Customer{}, entities.QuoteCalculation{}, err
	}

	customer, err := u.customerRepo.GetByID(ctx, quote.CustomerID)
	if err != nil {
		return entities.Quote{}, entities.Customer{}, entities.QuoteCalculation{}, err
	}
	if customer.ID == "" {
		return entities.Quote{}, entities.Customer{}, entities.QuoteCalculation{}, ErrCustomerNotFound
	}

	// The stored price is binding even when the snapshot details would now
	// price differently (e.g. after an explicit price update).
	details := quote.Details
	details.ManualTotalPrice = quote.Price
	calc := pricing.CalculateQuote(customer, details)

	return quote, customer, calc, nil
}

func (u *DocumentUseCase) getQuote(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
