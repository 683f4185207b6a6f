package request

import (
	"umzug_backoffice/internal/adapter/importer"
	"umzug_backoffice/internal/domain/entities"
)

// AddressRequest accepts either an explicit floor number or free text that
// mentions one ("3. Stock", "Etage 2", "EG"). An explicit floor always wins;
// otherwise the floor is extracted from the text once, here, so pricing never
// has to parse strings.
type AddressRequest struct {
	Text        string `json:"text"`
	Floor       int    `json:"floor"`
	HasElevator bool   `json:"has_elevator"`
}

func (r AddressRequest) ToAddress() entities.Address {
	floor := r.Floor
	if floor == 0 {
		if f, ok := importer.ExtractFloor(r.Text); ok {
			floor = f
		}
	}
	return entities.Address{
		Text:        r.Text,
		Floor:       floor,
		HasElevator: r.HasElevator,
	}
}

type ApartmentRequest struct {
	Rooms       int     `json:"rooms"`
	Area        float64 `json:"area"`
	Floor       int     `json:"floor"`
	HasElevator bool    `json:"has_elevator"`
}

type CustomerRequest struct {
	Name        string           `json:"name" binding:"required"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	MovingDate  string           `json:"moving_date"`
	FromAddress AddressRequest   `json:"from_address"`
	ToAddress   AddressRequest   `json:"to_address"`
	Apartment   ApartmentRequest `json:"apartment"`
	Notes       string           `json:"notes"`
}

func (r CustomerRequest) ToCustomer() entities.Customer {
	return entities.Customer{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		MovingDate:  r.MovingDate,
		FromAddress: r.FromAddress.ToAddress(),
		ToAddress:   r.ToAddress.ToAddress(),
		Apartment: entities.Apartment{
			Rooms:       r.Apartment.Rooms,
			Area:        r.Apartment.Area,
			Floor:       r.Apartment.Floor,
			HasElevator: r.Apartment.HasElevator,
		},
		Notes: r.Notes,
	}
}
