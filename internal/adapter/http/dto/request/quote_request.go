package request

import (
	"errors"

	"umzug_backoffice/internal/domain/entities"
)

var (
	ErrInvalidQuotePrice = errors.New("invalid quote price")
)

// QuoteDetailsRequest carries the survey answers that feed the pricing
// engine. Zero values are meaningful (no boxes, no services), so nothing
// here is binding-required; the engine handles missing volume via the
// apartment-area fallback.
type QuoteDetailsRequest struct {
	Volume             float64  `json:"volume"`
	Distance           float64  `json:"distance"`
	PackingRequested   bool     `json:"packing_requested"`
	AdditionalServices []string `json:"additional_services"`
	Notes              string   `json:"notes"`
	BoxCount           int      `json:"box_count"`

	ParkingZonePrice          float64 `json:"parking_zone_price"`
	StoragePrice              float64 `json:"storage_price"`
	FurnitureAssemblyPrice    float64 `json:"furniture_assembly_price"`
	FurnitureDisassemblyPrice float64 `json:"furniture_disassembly_price"`

	CleaningService   bool    `json:"cleaning_service"`
	CleaningHours     float64 `json:"cleaning_hours"`
	ClearanceService  bool    `json:"clearance_service"`
	ClearanceVolume   float64 `json:"clearance_volume"`
	RenovationService bool    `json:"renovation_service"`
	RenovationHours   float64 `json:"renovation_hours"`
	PianoTransport    bool    `json:"piano_transport"`
	HeavyItemsCount   int     `json:"heavy_items_count"`
	PackingMaterials  bool    `json:"packing_materials"`

	ManualBasePrice  float64 `json:"manual_base_price"`
	ManualTotalPrice float64 `json:"manual_total_price"`
}

func (r QuoteDetailsRequest) ToDetails() entities.QuoteDetails {
	return entities.QuoteDetails{
		Volume:             r.Volume,
		Distance:           r.Distance,
		PackingRequested:   r.PackingRequested,
		AdditionalServices: r.AdditionalServices,
		Notes:              r.Notes,
		BoxCount:           r.BoxCount,

		ParkingZonePrice:          r.ParkingZonePrice,
		StoragePrice:              r.StoragePrice,
		FurnitureAssemblyPrice:    r.FurnitureAssemblyPrice,
		FurnitureDisassemblyPrice: r.FurnitureDisassemblyPrice,

		CleaningService:   r.CleaningService,
		CleaningHours:     r.CleaningHours,
		ClearanceService:  r.ClearanceService,
		ClearanceVolume:   r.ClearanceVolume,
		RenovationService: r.RenovationService,
		RenovationHours:   r.RenovationHours,
		PianoTransport:    r.PianoTransport,
		HeavyItemsCount:   r.HeavyItemsCount,
		PackingMaterials:  r.PackingMaterials,

		ManualBasePrice:  r.ManualBasePrice,
		ManualTotalPrice: r.ManualTotalPrice,
	}
}

// QuoteRequest is the payload for both price previews and quote creation.
type QuoteRequest struct {
	CustomerID string              `json:"customer_id" binding:"required"`
	Details    QuoteDetailsRequest `json:"details"`
}

// ReviseQuoteRequest replaces the survey details for a new quote version.
type ReviseQuoteRequest struct {
	Details QuoteDetailsRequest `json:"details"`
}

type UpdateQuotePriceRequest struct {
	Price float64 `json:"price" binding:"required"`
}

func (r UpdateQuotePriceRequest) ResolvePrice() (float64, error) {
	if r.Price <= 0 {
		return 0, ErrInvalidQuotePrice
	}
	return r.Price, nil
}
