package documents

import (
	"fmt"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/pkg/currency"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 108, Green: 117, Blue: 125}
	headerColor = &props.Color{Red: 33, Green: 37, Blue: 41}
	whiteColor  = &props.Color{Red: 255, Green: 255, Blue: 255}
)

func newDocumentBuilder() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	return maroto.New(cfg)
}

// QuotePDF renders the printable quote sent to the customer.
func (r *Renderer) QuotePDF(customer entities.Customer, calc entities.QuoteCalculation, details entities.QuoteDetails) ([]byte, error) {
	m := newDocumentBuilder()

	addDocumentTitle(m, "Umzugsangebot")
	addCustomerBlock(m, customer)
	addItemsTable(m, calc)

	if details.Notes != "" {
		m.AddRows(
			row.New(4),
			row.New(6).Add(
				col.New(12).Add(
					text.New("Anmerkungen: "+details.Notes, props.Text{Size: 8, Color: mutedColor}),
				),
			),
		)
	}

	m.AddRows(
		row.New(8),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Dieses Angebot ist 14 Tage gültig. Alle Preise inklusive Mehrwertsteuer.", props.Text{
					Size:  8,
					Color: mutedColor,
				}),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating quote pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addDocumentTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(4),
	)
}

func addCustomerBlock(m core.Maroto, customer entities.Customer) {
	line := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(3).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(9).Add(text.New(value, props.Text{Size: 9})),
		)
	}

	m.AddRows(line("Kunde", customer.Name))
	if customer.MovingDate != "" {
		m.AddRows(line("Umzugstermin", customer.MovingDate))
	}
	m.AddRows(
		line("Von", formatAddress(customer.FromAddress)),
		line("Nach", formatAddress(customer.ToAddress)),
		row.New(6),
	)
}

func formatAddress(a entities.Address) string {
	s := a.Text
	if a.Floor > 1 {
		s += fmt.Sprintf(", %d. Etage", a.Floor-1)
	}
	if a.HasElevator {
		s += " (Aufzug vorhanden)"
	}
	return s
}

func addItemsTable(m core.Maroto, calc entities.QuoteCalculation) {
	headerText := props.Text{Size: 9, Style: fontstyle.Bold, Color: whiteColor}
	headerCell := props.Cell{BackgroundColor: headerColor}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Leistung", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Preis", alignRight(headerText))).WithStyle(&headerCell),
		),
	)

	for _, item := range lineItems(calc) {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(item.Label, props.Text{Size: 9})),
				col.New(4).Add(text.New(item.Formatted(), alignRight(props.Text{Size: 9}))),
			),
		)
	}

	totalText := props.Text{Size: 10, Style: fontstyle.Bold}
	if calc.ManualPrice > 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New("Zwischensumme", props.Text{Size: 9})),
				col.New(4).Add(text.New(currency.FormatEUR(calc.TotalPrice), alignRight(props.Text{Size: 9}))),
			),
			row.New(9).Add(
				col.New(8).Add(text.New("Sonderpreis", totalText)),
				col.New(4).Add(text.New(currency.FormatEUR(calc.FinalPrice), alignRight(totalText))),
			),
		)
		return
	}

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Gesamtpreis", totalText)),
			col.New(4).Add(text.New(currency.FormatEUR(calc.FinalPrice), alignRight(totalText))),
		),
	)
}

func alignRight(t props.Text) props.Text {
	t.Align = align.Right
	return t
}
