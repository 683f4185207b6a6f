package response

import (
	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/pkg/currency"
)

// CalculationResponse is the preview payload. The engine output already
// carries JSON tags; the response adds display-ready price strings.
type CalculationResponse struct {
	entities.QuoteCalculation

	FormattedTotalPrice string `json:"formatted_total_price"`
	FormattedFinalPrice string `json:"formatted_final_price"`
}

func FromCalculation(calc entities.QuoteCalculation) CalculationResponse {
	return CalculationResponse{
		QuoteCalculation:    calc,
		FormattedTotalPrice: currency.FormatEUR(calc.TotalPrice),
		FormattedFinalPrice: currency.FormatEUR(calc.FinalPrice),
	}
}
