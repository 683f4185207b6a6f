package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/domain/pricing"
	"umzug_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidQuotePrice       = errors.New("invalid quote price")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// IQuoteUseCase exposes the quote operations.
//
// Preview runs the pricing engine without persisting anything; Create
// snapshots the calculation's final price together with the details that
// produced it. After that the stored price only changes through
// UpdateQuotePrice, never through recalculation.

type IQuoteUseCase interface {
	Preview(ctx context.Context, customerID string, details entities.QuoteDetails) (entities.QuoteCalculation, error)
	Create(ctx context.Context, customerID string, details entities.QuoteDetails) (entities.Quote, entities.QuoteCalculation, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	SendByID(ctx context.Context, id string) (entities.Quote, error)
	AcceptByID(ctx context.Context, id string) (entities.Quote, error)
	DeclineByID(ctx context.Context, id string) (entities.Quote, error)
	ConfirmByID(ctx context.Context, id string) (entities.Quote, error)
	InvoiceByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateQuotePrice(ctx context.Context, id string, newPrice float64) (entities.Quote, error)
	Revise(ctx context.Context, id string, details entities.QuoteDetails) (entities.Quote, entities.QuoteCalculation, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, customerRepo interfaces.ICustomerRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *QuoteUseCase) Preview(ctx context.Context, customerID string, details entities.QuoteDetails) (entities.QuoteCalculation, error) {
	customer, err := u.loadCustomer(ctx, customerID)
	if err != nil {
		return entities.QuoteCalculation{}, err
	}
	return pricing.CalculateQuote(customer, details), nil
}

func (u *QuoteUseCase) Create(ctx context.Context, customerID string, details entities.QuoteDetails) (entities.Quote, entities.QuoteCalculation, error) {
	customer, err := u.loadCustomer(ctx, customerID)
	if err != nil {
		return entities.Quote{}, entities.QuoteCalculation{}, err
	}

	calc := pricing.CalculateQuote(customer, details)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:           uuid.NewString(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Price:        calc.FinalPrice,
		Volume:       calc.VolumeBase,
		Distance:     details.Distance,
		Status:       entities.QuoteStatusDraft,
		Version:      1,
		Details:      details,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, entities.QuoteCalculation{}, err
	}
	return created, calc, nil
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

func (u *QuoteUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *QuoteUseCase) SendByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) AcceptByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) DeclineByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusDeclined)
}

func (u *QuoteUseCase) ConfirmByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusConfirmed)
}

func (u *QuoteUseCase) InvoiceByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusInvoiced)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, next entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Status.CanTransitionTo(next) {
		return entities.Quote{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, q.ID, next)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) UpdateQuotePrice(ctx context.Context, id string, newPrice float64) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if newPrice <= 0 {
		return entities.Quote{}, ErrInvalidQuotePrice
	}

	updated, err := u.repo.UpdatePriceByID(ctx, id, newPrice)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Revise creates a new quote version from fresh details, linked to its
// parent. The parent record stays untouched.
func (u *QuoteUseCase) Revise(ctx context.Context, id string, details entities.QuoteDetails) (entities.Quote, entities.QuoteCalculation, error) {
	parent, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, entities.QuoteCalculation{}, err
	}

	customer, err := u.loadCustomer(ctx, parent.CustomerID)
	if err != nil {
		return entities.Quote{}, entities.QuoteCalculation{}, err
	}

	calc := pricing.CalculateQuote(customer, details)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:            uuid.NewString(),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Price:         calc.FinalPrice,
		Volume:        calc.VolumeBase,
		Distance:      details.Distance,
		Status:        entities.QuoteStatusDraft,
		Version:       parent.Version + 1,
		ParentQuoteID: parent.ID,
		Details:       details,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, entities.QuoteCalculation{}, err
	}
	return created, calc, nil
}

func (u *QuoteUseCase) loadCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if customer.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return customer, nil
}
