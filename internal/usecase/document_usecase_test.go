package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/usecase/interfaces"
	mock_interfaces "umzug_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func documentFixtures() (entities.Quote, entities.Customer) {
	quote := entities.Quote{
		ID:         "q-1",
		CustomerID: "cust-1",
		Price:      999,
		Volume:     20,
		Status:     entities.QuoteStatusSent,
		Details:    entities.QuoteDetails{Volume: 20, Distance: 30},
	}
	customer := entities.Customer{ID: "cust-1", Name: "Max Mustermann", Email: "max@example.de"}
	return quote, customer
}

func TestDocumentUseCase_EmailQuote(t *testing.T) {
	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewDocumentUseCase(quotes, nil, nil, nil, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		err := uc.EmailQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("sends rendered documents to the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewDocumentUseCase(quotes, customers, renderer, mailer, nil)

		quote, customer := documentFixtures()
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)

		renderer.EXPECT().QuoteHTML(customer, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ entities.Customer, calc entities.QuoteCalculation, _ entities.QuoteDetails) (string, error) {
				// The rendered total follows the stored quote price, not a
				// fresh run of the engine over the snapshot details.
				if calc.FinalPrice != quote.Price {
					t.Fatalf("expected final price %v, got %v", quote.Price, calc.FinalPrice)
				}
				return "<html/>", nil
			},
		)
		renderer.EXPECT().QuotePDF(customer, gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.7"), nil)
		renderer.EXPECT().QuoteEmailText(customer, gomock.Any()).Return("Sehr geehrter Herr Mustermann")

		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg interfaces.MailMessage) error {
				if len(msg.To) != 1 || msg.To[0] != "max@example.de" {
					t.Fatalf("unexpected recipients: %v", msg.To)
				}
				if !strings.Contains(msg.Subject, quote.ID) {
					t.Fatalf("subject should reference the quote: %q", msg.Subject)
				}
				if len(msg.Attachments) != 1 || !strings.HasSuffix(msg.Attachments[0].Filename, ".pdf") {
					t.Fatalf("expected one pdf attachment, got %+v", msg.Attachments)
				}
				return nil
			},
		)

		if err := uc.EmailQuote(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("send failure bubbles up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewDocumentUseCase(quotes, customers, renderer, mailer, nil)

		quote, customer := documentFixtures()
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
		renderer.EXPECT().QuoteHTML(customer, gomock.Any(), gomock.Any()).Return("<html/>", nil)
		renderer.EXPECT().QuotePDF(customer, gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.7"), nil)
		renderer.EXPECT().QuoteEmailText(customer, gomock.Any()).Return("text")
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		err := uc.EmailQuote(context.Background(), "q-1")
		if err == nil || err.Error() != "smtp down" {
			t.Fatalf("expected smtp error, got %v", err)
		}
	})
}

func TestDocumentUseCase_QuotePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	uc := NewDocumentUseCase(quotes, customers, renderer, nil, nil)

	quote, customer := documentFixtures()
	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
	customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
	renderer.EXPECT().QuotePDF(customer, gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.7"), nil)

	pdf, err := uc.QuotePDF(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF-") {
		t.Fatalf("expected pdf bytes, got %q", pdf)
	}
}

func TestDocumentUseCase_WorkOrderPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	uc := NewDocumentUseCase(quotes, customers, renderer, nil, nil)

	quote, customer := documentFixtures()
	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
	customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
	renderer.EXPECT().WorkOrderPDF(customer, quote).Return([]byte("%PDF-1.7"), nil)

	if _, err := uc.WorkOrderPDF(context.Background(), "q-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
