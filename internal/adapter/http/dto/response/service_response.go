package response

import (
	"umzug_backoffice/internal/domain/pricing"
	"umzug_backoffice/pkg/currency"
)

type ServiceResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	BasePrice      float64 `json:"base_price"`
	FormattedPrice string  `json:"formatted_price,omitempty"`
	PriceType      string  `json:"price_type"`
}

func FromCatalogService(s pricing.CatalogService) ServiceResponse {
	r := ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		PriceType:   string(s.PriceType),
	}
	if s.BasePrice > 0 {
		r.FormattedPrice = currency.FormatEUR(s.BasePrice)
	}
	return r
}

func FromCatalog(services []pricing.CatalogService) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromCatalogService(s))
	}
	return out
}
