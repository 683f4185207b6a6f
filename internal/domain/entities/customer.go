package entities

import "time"

// Address is a move leg (pickup or delivery).
//
// Floor uses the convention ground floor = 1; 0 means "unknown", in which
// case pricing falls back to the apartment floor (pickup) or ground
// (delivery). Free-text floor hints ("Etage 3", "2. Stock") are resolved at
// import time by the importer package, never during pricing.
type Address struct {
	Text        string `json:"text"`
	Floor       int    `json:"floor,omitempty"`
	HasElevator bool   `json:"has_elevator,omitempty"`
}

// Apartment describes the customer's current home. Area feeds the volume
// estimation fallback when no explicit volume was surveyed.
type Apartment struct {
	Rooms       int     `json:"rooms"`
	Area        float64 `json:"area"`
	Floor       int     `json:"floor"`
	HasElevator bool    `json:"has_elevator"`
}

// Customer is the customer record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing reads only FromAddress, ToAddress and Apartment; the contact
// fields pass through untouched to the document renderers.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	MovingDate  string    `json:"moving_date"`
	FromAddress Address   `json:"from_address"`
	ToAddress   Address   `json:"to_address"`
	Apartment   Apartment `json:"apartment"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
