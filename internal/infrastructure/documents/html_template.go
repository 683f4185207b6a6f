package documents

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/pkg/currency"
)

var quoteTemplate = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #212529; }
  h1 { font-size: 20px; }
  table { border-collapse: collapse; width: 100%; max-width: 640px; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #dee2e6; }
  td.amount, th.amount { text-align: right; }
  tr.total td { font-weight: bold; border-top: 2px solid #212529; }
  .meta { color: #6c757d; font-size: 13px; }
</style>
</head>
<body>
<h1>Umzugsangebot</h1>
<p>Sehr geehrte(r) {{.CustomerName}},</p>
<p>vielen Dank für Ihre Anfrage. Gerne unterbreiten wir Ihnen folgendes Angebot für Ihren Umzug:</p>
<p class="meta">
  Von: {{.FromAddress}}<br>
  Nach: {{.ToAddress}}<br>
  {{if .MovingDate}}Umzugstermin: {{.MovingDate}}<br>{{end}}
  Umzugsvolumen: {{.Volume}}
</p>
<table>
  <tr><th>Leistung</th><th class="amount">Preis</th></tr>
  {{range .Items}}<tr><td>{{.Label}}</td><td class="amount">{{.Formatted}}</td></tr>
  {{end}}{{if .ManualPrice}}<tr><td>Zwischensumme</td><td class="amount">{{.TotalFormatted}}</td></tr>
  <tr class="total"><td>Sonderpreis</td><td class="amount">{{.FinalFormatted}}</td></tr>
  {{else}}<tr class="total"><td>Gesamtpreis</td><td class="amount">{{.FinalFormatted}}</td></tr>
  {{end}}
</table>
{{if .Notes}}<p class="meta">Anmerkungen: {{.Notes}}</p>{{end}}
<p>Dieses Angebot ist 14 Tage gültig. Alle Preise verstehen sich inklusive Mehrwertsteuer.</p>
<p>Mit freundlichen Grüßen<br>Ihr Umzugsteam</p>
</body>
</html>
`))

type quoteTemplateData struct {
	CustomerName   string
	FromAddress    string
	ToAddress      string
	MovingDate     string
	Volume         string
	Items          []lineItem
	ManualPrice    bool
	TotalFormatted string
	FinalFormatted string
	Notes          string
}

func (r *Renderer) QuoteHTML(customer entities.Customer, calc entities.QuoteCalculation, details entities.QuoteDetails) (string, error) {
	data := quoteTemplateData{
		CustomerName:   customer.Name,
		FromAddress:    customer.FromAddress.Text,
		ToAddress:      customer.ToAddress.Text,
		MovingDate:     customer.MovingDate,
		Volume:         calc.VolumeRange,
		Items:          lineItems(calc),
		ManualPrice:    calc.ManualPrice > 0,
		TotalFormatted: currency.FormatEUR(calc.TotalPrice),
		FinalFormatted: currency.FormatEUR(calc.FinalPrice),
		Notes:          details.Notes,
	}

	var buf bytes.Buffer
	if err := quoteTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering quote html: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) QuoteEmailText(customer entities.Customer, calc entities.QuoteCalculation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sehr geehrte(r) %s,\n\n", customer.Name)
	b.WriteString("vielen Dank für Ihre Anfrage. Unser Angebot für Ihren Umzug:\n\n")
	for _, item := range lineItems(calc) {
		fmt.Fprintf(&b, "  %-40s %s\n", item.Label, item.Formatted())
	}
	b.WriteString("\n")
	if calc.ManualPrice > 0 {
		fmt.Fprintf(&b, "  %-40s %s\n", "Zwischensumme", currency.FormatEUR(calc.TotalPrice))
		fmt.Fprintf(&b, "  %-40s %s\n", "Sonderpreis", currency.FormatEUR(calc.FinalPrice))
	} else {
		fmt.Fprintf(&b, "  %-40s %s\n", "Gesamtpreis", currency.FormatEUR(calc.FinalPrice))
	}
	b.WriteString("\nDieses Angebot ist 14 Tage gültig. Alle Preise inklusive Mehrwertsteuer.\n\n")
	b.WriteString("Mit freundlichen Grüßen\nIhr Umzugsteam\n")
	return b.String()
}
