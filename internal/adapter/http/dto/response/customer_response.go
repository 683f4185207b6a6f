package response

import (
	"time"

	"umzug_backoffice/internal/domain/entities"
)

type CustomerResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	MovingDate  string             `json:"moving_date"`
	FromAddress entities.Address   `json:"from_address"`
	ToAddress   entities.Address   `json:"to_address"`
	Apartment   entities.Apartment `json:"apartment"`
	Notes       string             `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		MovingDate:  c.MovingDate,
		FromAddress: c.FromAddress,
		ToAddress:   c.ToAddress,
		Apartment:   c.Apartment,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
