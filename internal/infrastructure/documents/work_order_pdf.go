package documents

import (
	"fmt"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/pkg/currency"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// WorkOrderPDF renders the internal crew document for an accepted quote.
// Unlike the customer quote it lists the logistics (floors, elevators,
// volume, distance) and the booked services without individual prices.
func (r *Renderer) WorkOrderPDF(customer entities.Customer, quote entities.Quote) ([]byte, error) {
	m := newDocumentBuilder()

	addDocumentTitle(m, "Arbeitsauftrag")

	line := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(3).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(9).Add(text.New(value, props.Text{Size: 9})),
		)
	}

	m.AddRows(
		line("Auftrag", quote.ID),
		line("Kunde", customer.Name),
		line("Telefon", customer.Phone),
	)
	if customer.MovingDate != "" {
		m.AddRows(line("Umzugstermin", customer.MovingDate))
	}
	m.AddRows(
		line("Beladung", formatAddress(customer.FromAddress)),
		line("Entladung", formatAddress(customer.ToAddress)),
		line("Volumen", fmt.Sprintf("%g m³", quote.Volume)),
		line("Entfernung", fmt.Sprintf("%g km", quote.Distance)),
		line("Auftragswert", currency.FormatEUR(quote.Price)),
		row.New(6),
	)

	services := bookedServices(quote.Details)
	if len(services) > 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New("Gebuchte Leistungen", props.Text{Size: 10, Style: fontstyle.Bold})),
			),
		)
		for _, s := range services {
			m.AddRows(
				row.New(6).Add(
					col.New(12).Add(text.New("[ ] "+s, props.Text{Size: 9})),
				),
			)
		}
	}

	if quote.Details.Notes != "" {
		m.AddRows(
			row.New(6),
			row.New(6).Add(
				col.New(12).Add(text.New("Anmerkungen: "+quote.Details.Notes, props.Text{Size: 8, Color: mutedColor})),
			),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating work order pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func bookedServices(d entities.QuoteDetails) []string {
	var services []string
	if d.PackingRequested {
		services = append(services, "Verpackungsservice")
	}
	if d.BoxCount > 0 {
		services = append(services, fmt.Sprintf("Umzugskartons (%d Stück)", d.BoxCount))
	}
	if d.ParkingZonePrice > 0 {
		services = append(services, "Halteverbotszone einrichten")
	}
	if d.StoragePrice > 0 {
		services = append(services, "Zwischenlagerung")
	}
	if d.FurnitureDisassemblyPrice > 0 {
		services = append(services, "Möbeldemontage")
	}
	if d.FurnitureAssemblyPrice > 0 {
		services = append(services, "Möbelmontage")
	}
	if d.CleaningService {
		services = append(services, fmt.Sprintf("Endreinigung (%g Std.)", d.CleaningHours))
	}
	if d.ClearanceService {
		services = append(services, fmt.Sprintf("Entrümpelung (%g m³)", d.ClearanceVolume))
	}
	if d.RenovationService {
		services = append(services, fmt.Sprintf("Renovierungsarbeiten (%g Std.)", d.RenovationHours))
	}
	if d.PianoTransport {
		services = append(services, "Klaviertransport")
	}
	if d.HeavyItemsCount > 0 {
		services = append(services, fmt.Sprintf("Schwertransport (%d Gegenstände)", d.HeavyItemsCount))
	}
	if d.PackingMaterials {
		services = append(services, "Verpackungsmaterial")
	}
	return services
}
