package entities

// QuoteDetails is the pricing input gathered from the customer survey.
//
// The flat service amounts (parking zone, storage, furniture assembly and
// disassembly) act as request flags: any positive value books the service at
// its catalog price. ManualBasePrice replaces the bracket lookup for the
// loading/unloading base and suppresses the distance surcharge;
// ManualTotalPrice replaces the final price only, leaving the organic total
// intact for the audit breakdown.
type QuoteDetails struct {
	Volume             float64  `json:"volume"`
	Distance           float64  `json:"distance"`
	PackingRequested   bool     `json:"packing_requested"`
	AdditionalServices []string `json:"additional_services,omitempty"`
	Notes              string   `json:"notes,omitempty"`
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

	ManualBasePrice  float64 `json:"manual_base_price,omitempty"`
	ManualTotalPrice float64 `json:"manual_total_price,omitempty"`
}

// PriceBreakdown lists every line item of a calculation. All fields are
// populated by the pricing engine; renderers show the non-zero ones.
type PriceBreakdown struct {
	Base                 float64 `json:"base"`
	Floors               float64 `json:"floors"`
	Distance             float64 `json:"distance"`
	Packing              float64 `json:"packing"`
	Boxes                float64 `json:"boxes"`
	ParkingZone          float64 `json:"parking_zone"`
	Storage              float64 `json:"storage"`
	FurnitureAssembly    float64 `json:"furniture_assembly"`
	FurnitureDisassembly float64 `json:"furniture_disassembly"`
	Cleaning             float64 `json:"cleaning"`
	Clearance            float64 `json:"clearance"`
	Renovation           float64 `json:"renovation"`
	Piano                float64 `json:"piano"`
	HeavyItems           float64 `json:"heavy_items"`
	PackingMaterials     float64 `json:"packing_materials"`
}

// QuoteCalculation is the pricing engine output. TotalPrice is always the
// organic sum of every line item; FinalPrice equals ManualPrice when a
// manual total override is set, TotalPrice otherwise.
type QuoteCalculation struct {
	VolumeBase  float64 `json:"volume_base"`
	VolumeRange string  `json:"volume_range"`

	BasePrice                 float64 `json:"base_price"`
	FloorSurcharge            float64 `json:"floor_surcharge"`
	DistanceSurcharge         float64 `json:"distance_surcharge"`
	PackingService            float64 `json:"packing_service"`
	BoxesPrice                float64 `json:"boxes_price"`
	ParkingZonePrice          float64 `json:"parking_zone_price"`
	StoragePrice              float64 `json:"storage_price"`
	FurnitureAssemblyPrice    float64 `json:"furniture_assembly_price"`
	FurnitureDisassemblyPrice float64 `json:"furniture_disassembly_price"`
	CleaningPrice             float64 `json:"cleaning_price"`
	ClearancePrice            float64 `json:"clearance_price"`
	RenovationPrice           float64 `json:"renovation_price"`
	PianoPrice                float64 `json:"piano_price"`
	HeavyItemsPrice           float64 `json:"heavy_items_price"`
	PackingMaterialsPrice     float64 `json:"packing_materials_price"`

	TotalPrice  float64 `json:"total_price"`
	ManualPrice float64 `json:"manual_price,omitempty"`
	FinalPrice  float64 `json:"final_price"`

	PriceBreakdown PriceBreakdown `json:"price_breakdown"`
}
