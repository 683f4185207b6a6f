// Package documents renders the customer-facing quote documents: the HTML
// mail body, its plain-text alternative and the PDF variants.
package documents

import (
	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/usecase/interfaces"
	"umzug_backoffice/pkg/currency"
)

type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

// lineItem is one priced row of a quote document.
type lineItem struct {
	Label  string
	Amount float64
}

func (li lineItem) Formatted() string {
	return currency.FormatEUR(li.Amount)
}

// lineItems flattens the calculation into display rows, skipping everything
// the customer did not book.
func lineItems(calc entities.QuoteCalculation) []lineItem {
	candidates := []lineItem{
		{Label: "Be- und Entladen (" + calc.VolumeRange + ")", Amount: calc.BasePrice},
		{Label: "Etagenzuschlag", Amount: calc.FloorSurcharge},
		{Label: "Entfernungszuschlag", Amount: calc.DistanceSurcharge},
		{Label: "Verpackungsservice", Amount: calc.PackingService},
		{Label: "Umzugskartons", Amount: calc.BoxesPrice},
		{Label: "Halteverbotszone", Amount: calc.ParkingZonePrice},
		{Label: "Zwischenlagerung", Amount: calc.StoragePrice},
		{Label: "Möbelmontage", Amount: calc.FurnitureAssemblyPrice},
		{Label: "Möbeldemontage", Amount: calc.FurnitureDisassemblyPrice},
		{Label: "Endreinigung", Amount: calc.CleaningPrice},
		{Label: "Entrümpelung", Amount: calc.ClearancePrice},
		{Label: "Renovierungsarbeiten", Amount: calc.RenovationPrice},
		{Label: "Klaviertransport", Amount: calc.PianoPrice},
		{Label: "Schwertransport", Amount: calc.HeavyItemsPrice},
		{Label: "Verpackungsmaterial", Amount: calc.PackingMaterialsPrice},
	}

	items := make([]lineItem, 0, len(candidates))
	for _, c := range candidates {
		if c.Amount != 0 {
			items = append(items, c)
		}
	}
	return items
}
