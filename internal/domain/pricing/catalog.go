package pricing

// PriceType tells the UI how a catalog service is priced.
type PriceType string

const (
	PriceTypeCalculated PriceType = "calculated"
	PriceTypePerItem    PriceType = "per_item"
	PriceTypePerHour    PriceType = "per_hour"
	PriceTypeByVolume   PriceType = "by_volume"
	PriceTypeFixed      PriceType = "fixed"
)

// CatalogService is one bookable service with its pricing basis.
type CatalogService struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"`
	PriceType   PriceType `json:"price_type"`
}

// AvailableServices returns the static catalog of bookable services.
func AvailableServices() []CatalogService {
	return []CatalogService{
		{ID: "packing", Name: "Verpackungsservice", Description: "Professionelles Ein- und Auspacken", BasePrice: 0, PriceType: PriceTypeCalculated},
		{ID: "boxes", Name: "Umzugskartons", Description: "Bereitstellung von Kartons", BasePrice: perBoxPrice, PriceType: PriceTypePerItem},
		{ID: "cleaning", Name: "Reinigungsservice", Description: "Endreinigung der alten Wohnung", BasePrice: cleaningHourlyRate, PriceType: PriceTypePerHour},
		{ID: "clearance", Name: "Entrümpelung", Description: "Entsorgung von Hausrat", BasePrice: 0, PriceType: PriceTypeByVolume},
		{ID: "renovation", Name: "Renovierungsarbeiten", Description: "Kleine Renovierungen", BasePrice: renovationHourlyRate, PriceType: PriceTypePerHour},
		{ID: "piano", Name: "Klaviertransport", Description: "Spezialtransport für Klavier/Flügel", BasePrice: pianoFlatPrice, PriceType: PriceTypeFixed},
		{ID: "heavy", Name: "Schwertransport", Description: "Transport schwerer Gegenstände", BasePrice: perHeavyItemPrice, PriceType: PriceTypePerItem},
		{ID: "materials", Name: "Verpackungsmaterial", Description: "Luftpolsterfolie, Decken, etc.", BasePrice: packingMaterialsFlat, PriceType: PriceTypeFixed},
		{ID: "parking", Name: "Halteverbotszone", Description: "Parkplatz-Reservierung", BasePrice: parkingZoneFlat, PriceType: PriceTypeFixed},
		{ID: "storage", Name: "Zwischenlagerung", Description: "Temporäre Lagerung", BasePrice: storageFlat, PriceType: PriceTypeFixed},
		{ID: "assembly", Name: "Möbelmontage", Description: "Aufbau von Möbeln", BasePrice: furnitureAssemblyFlat, PriceType: PriceTypeFixed},
		{ID: "disassembly", Name: "Möbeldemontage", Description: "Abbau von Möbeln", BasePrice: furnitureDisassemblyFlat, PriceType: PriceTypeFixed},
	}
}
