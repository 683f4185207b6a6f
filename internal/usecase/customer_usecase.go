package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/infrastructure/cache"
	"umzug_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
)

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo      interfaces.ICustomerRepository
	listCache *cache.Cached[[]entities.Customer]
	clock     func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

// NewCustomerUseCase builds the customer operations. The list read path is
// served from a TTL cache; writes invalidate it.
func NewCustomerUseCase(repo interfaces.ICustomerRepository, listTTL time.Duration, clock func() time.Time) *CustomerUseCase {
	if clock == nil {
		clock = time.Now
	}
	u := &CustomerUseCase{repo: repo, clock: clock}
	u.listCache = cache.New(listTTL, func(ctx context.Context) ([]entities.Customer, error) {
		return repo.List(ctx)
	})
	return u
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.listCache.Invalidate()
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.listCache.GetOrRefresh(ctx, u.clock())
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.listCache.Invalidate()
	return updated, nil
}
