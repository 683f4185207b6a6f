package request

import (
	"errors"
	"testing"
)

func TestQuoteDetailsRequest_ToDetails(t *testing.T) {
	r := QuoteDetailsRequest{
		Volume:           12,
		Distance:         120,
		PackingRequested: true,
		BoxCount:         10,
		CleaningService:  true,
		CleaningHours:    4,
		ManualBasePrice:  500,
	}
	d := r.ToDetails()
	if d.Volume != 12 || d.Distance != 120 || !d.PackingRequested || d.BoxCount != 10 {
		t.Fatalf("unexpected details: %+v", d)
	}
	if !d.CleaningService || d.CleaningHours != 4 || d.ManualBasePrice != 500 {
		t.Fatalf("unexpected details: %+v", d)
	}
}

func TestUpdateQuotePriceRequest_ResolvePrice(t *testing.T) {
	price, err := UpdateQuotePriceRequest{Price: 1200}.ResolvePrice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 1200 {
		t.Fatalf("expected 1200, got %v", price)
	}

	_, err = UpdateQuotePriceRequest{Price: -5}.ResolvePrice()
	if !errors.Is(err, ErrInvalidQuotePrice) {
		t.Fatalf("expected ErrInvalidQuotePrice, got %v", err)
	}
}
