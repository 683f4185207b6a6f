package pricing

import (
	"reflect"
	"testing"

	"umzug_backoffice/internal/domain/entities"
)

func elevatorCustomer() entities.Customer {
	return entities.Customer{
		ID:   "cust-1",
		Name: "Max Mustermann",
		FromAddress: entities.Address{
			Text: "Musterstraße 1, Bielefeld", Floor: 3, HasElevator: true,
		},
		ToAddress: entities.Address{
			Text: "Beispielweg 2, Gütersloh", Floor: 2, HasElevator: true,
		},
		Apartment: entities.Apartment{Rooms: 3, Area: 75, Floor: 3, HasElevator: true},
	}
}

func TestCalculateQuote_BaseOnly(t *testing.T) {
	// Scenario: 20 m³, short distance, elevators everywhere, nothing extra.
	details := entities.QuoteDetails{Volume: 20, Distance: 30}

	calc := CalculateQuote(elevatorCustomer(), details)

	if calc.BasePrice != 899 {
		t.Fatalf("BasePrice = %v, want 899 (15-20 bracket)", calc.BasePrice)
	}
	if calc.FloorSurcharge != 0 {
		t.Fatalf("FloorSurcharge = %v, want 0", calc.FloorSurcharge)
	}
	if calc.DistanceSurcharge != 0 {
		t.Fatalf("DistanceSurcharge = %v, want 0", calc.DistanceSurcharge)
	}
	if calc.FinalPrice != calc.BasePrice {
		t.Fatalf("FinalPrice = %v, want base price %v", calc.FinalPrice, calc.BasePrice)
	}
}

func TestCalculateQuote_SurchargeComposition(t *testing.T) {
	// Scenario: 12 m³, 120 km, 10 boxes, packing requested.
	details := entities.QuoteDetails{
		Volume:           12,
		Distance:         120,
		BoxCount:         10,
		PackingRequested: true,
	}

	calc := CalculateQuote(elevatorCustomer(), details)

	if calc.BasePrice != 749 {
		t.Fatalf("BasePrice = %v, want 749 (10-15 bracket)", calc.BasePrice)
	}
	if calc.DistanceSurcharge != 300 {
		t.Fatalf("DistanceSurcharge = %v, want 300 (100-200 km tier)", calc.DistanceSurcharge)
	}
	if calc.BoxesPrice != 25 {
		t.Fatalf("BoxesPrice = %v, want 25", calc.BoxesPrice)
	}
	// 12 * 15 = 180 beats the 150 minimum.
	if calc.PackingService != 180 {
		t.Fatalf("PackingService = %v, want 180", calc.PackingService)
	}
	want := 749.0 + 300 + 25 + 180
	if calc.TotalPrice != want {
		t.Fatalf("TotalPrice = %v, want %v", calc.TotalPrice, want)
	}
	if calc.FinalPrice != want {
		t.Fatalf("FinalPrice = %v, want %v (no override)", calc.FinalPrice, want)
	}
}

func TestCalculateQuote_ManualTotalOverride(t *testing.T) {
	details := entities.QuoteDetails{
		Volume:           30,
		Distance:         250,
		BoxCount:         20,
		PackingRequested: true,
		PianoTransport:   true,
		ManualTotalPrice: 999,
	}

	calc := CalculateQuote(elevatorCustomer(), details)

	if calc.FinalPrice != 999 {
		t.Fatalf("FinalPrice = %v, want 999", calc.FinalPrice)
	}
	if calc.ManualPrice != 999 {
		t.Fatalf("ManualPrice = %v, want 999", calc.ManualPrice)
	}
	// The organic sum stays intact for the audit breakdown.
	organic := 1299.0 + 450 + 20*2.5 + 30*15 + 150
	if calc.TotalPrice != organic {
		t.Fatalf("TotalPrice = %v, want organic sum %v", calc.TotalPrice, organic)
	}
}

func TestCalculateQuote_ManualBasePrice(t *testing.T) {
	details := entities.QuoteDetails{
		Volume:          20,
		Distance:        120,
		ManualBasePrice: 1200,
	}

	calc := CalculateQuote(elevatorCustomer(), details)

	if calc.BasePrice != 1200 {
		t.Fatalf("BasePrice = %v, want manual 1200", calc.BasePrice)
	}
	// A manual loading/unloading price suppresses the distance banding.
	if calc.DistanceSurcharge != 0 {
		t.Fatalf("DistanceSurcharge = %v, want 0 with manual base", calc.DistanceSurcharge)
	}
	if calc.TotalPrice != 1200 {
		t.Fatalf("TotalPrice = %v, want 1200", calc.TotalPrice)
	}
}

func TestCalculateQuote_FloorResolution(t *testing.T) {
	t.Run("apartment fallback for pickup, ground for delivery", func(t *testing.T) {
		c := entities.Customer{
			Apartment: entities.Apartment{Area: 60, Floor: 4, HasElevator: false},
		}
		calc := CalculateQuote(c, entities.QuoteDetails{Volume: 20})
		// Pickup (4-1)*50, delivery assumed ground.
		if calc.FloorSurcharge != 150 {
			t.Fatalf("FloorSurcharge = %v, want 150", calc.FloorSurcharge)
		}
	})

	t.Run("address floors win over apartment data", func(t *testing.T) {
		c := entities.Customer{
			FromAddress: entities.Address{Floor: 2, HasElevator: false},
			ToAddress:   entities.Address{Floor: 3, HasElevator: false},
			Apartment:   entities.Apartment{Floor: 9, HasElevator: true},
		}
		calc := CalculateQuote(c, entities.QuoteDetails{Volume: 20})
		// (2-1)*50 + (3-1)*50.
		if calc.FloorSurcharge != 150 {
			t.Fatalf("FloorSurcharge = %v, want 150", calc.FloorSurcharge)
		}
	})

	t.Run("elevator zeroes the leg regardless of floor", func(t *testing.T) {
		c := entities.Customer{
			FromAddress: entities.Address{Floor: 12, HasElevator: true},
			ToAddress:   entities.Address{Floor: 8, HasElevator: true},
		}
		calc := CalculateQuote(c, entities.QuoteDetails{Volume: 20})
		if calc.FloorSurcharge != 0 {
			t.Fatalf("FloorSurcharge = %v, want 0", calc.FloorSurcharge)
		}
	})
}

func TestCalculateQuote_VolumeFallbackFromArea(t *testing.T) {
	c := elevatorCustomer()
	c.Apartment.Area = 90

	calc := CalculateQuote(c, entities.QuoteDetails{Distance: 10})

	if calc.VolumeBase != 30 {
		t.Fatalf("VolumeBase = %v, want 30 (90 m² / 3)", calc.VolumeBase)
	}
	if calc.BasePrice != 1299 {
		t.Fatalf("BasePrice = %v, want 1299 (25-30 bracket)", calc.BasePrice)
	}
}

func TestCalculateQuote_AllAddOnsFoldIntoTotal(t *testing.T) {
	details := entities.QuoteDetails{
		Volume:            20,
		Distance:          30,
		ParkingZonePrice:  1, // flag semantics: any positive amount books it
		StoragePrice:      1,
		CleaningService:   true,
		CleaningHours:     4,
		ClearanceService:  true,
		ClearanceVolume:   10,
		RenovationService: true,
		RenovationHours:   2,
		PianoTransport:    true,
		HeavyItemsCount:   3,
		PackingMaterials:  true,

		FurnitureAssemblyPrice:    1,
		FurnitureDisassemblyPrice: 1,
	}

	calc := CalculateQuote(elevatorCustomer(), details)

	if calc.ParkingZonePrice != 80 || calc.StoragePrice != 100 {
		t.Fatalf("flat services: parking=%v storage=%v", calc.ParkingZonePrice, calc.StoragePrice)
	}
	if calc.FurnitureAssemblyPrice != 50 || calc.FurnitureDisassemblyPrice != 50 {
		t.Fatalf("furniture services: assembly=%v disassembly=%v", calc.FurnitureAssemblyPrice, calc.FurnitureDisassemblyPrice)
	}
	if calc.CleaningPrice != 140 || calc.RenovationPrice != 90 {
		t.Fatalf("hourly services: cleaning=%v renovation=%v", calc.CleaningPrice, calc.RenovationPrice)
	}
	if calc.ClearancePrice != 280 || calc.PianoPrice != 150 {
		t.Fatalf("clearance=%v piano=%v", calc.ClearancePrice, calc.PianoPrice)
	}
	if calc.HeavyItemsPrice != 75 || calc.PackingMaterialsPrice != 50 {
		t.Fatalf("heavy=%v materials=%v", calc.HeavyItemsPrice, calc.PackingMaterialsPrice)
	}

	want := 899.0 + 80 + 100 + 50 + 50 + 140 + 280 + 90 + 150 + 75 + 50
	if calc.TotalPrice != want {
		t.Fatalf("TotalPrice = %v, want %v (every add-on folded in)", calc.TotalPrice, want)
	}
}

func TestCalculateQuote_BreakdownMirrorsLineItems(t *testing.T) {
	details := entities.QuoteDetails{
		Volume:           12,
		Distance:         120,
		BoxCount:         10,
		PackingRequested: true,
		CleaningService:  true,
		CleaningHours:    2,
		PianoTransport:   true,
	}
	calc := CalculateQuote(elevatorCustomer(), details)

	b := calc.PriceBreakdown
	sum := b.Base + b.Floors + b.Distance + b.Packing + b.Boxes + b.ParkingZone +
		b.Storage + b.FurnitureAssembly + b.FurnitureDisassembly + b.Cleaning +
		b.Clearance + b.Renovation + b.Piano + b.HeavyItems + b.PackingMaterials
	if sum != calc.TotalPrice {
		t.Fatalf("breakdown sum %v != TotalPrice %v", sum, calc.TotalPrice)
	}
	if b.Cleaning != calc.CleaningPrice || b.Piano != calc.PianoPrice || b.Base != calc.BasePrice {
		t.Fatalf("breakdown does not mirror line items: %+v", b)
	}
}

func TestCalculateQuote_Deterministic(t *testing.T) {
	customer := elevatorCustomer()
	details := entities.QuoteDetails{
		Volume:           33,
		Distance:         180,
		BoxCount:         15,
		PackingRequested: true,
		ClearanceService: true,
		ClearanceVolume:  12,
	}

	first := CalculateQuote(customer, details)
	for i := 0; i < 10; i++ {
		if got := CalculateQuote(customer, details); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d diverged: %+v != %+v", i, got, first)
		}
	}
}

func TestCalculateQuote_NegativeInputsDoNotPanic(t *testing.T) {
	details := entities.QuoteDetails{
		Volume:   -5,
		Distance: -100,
		BoxCount: -3,
	}
	calc := CalculateQuote(entities.Customer{}, details)
	// Negative volume falls back to the area estimator minimum.
	if calc.VolumeBase != 15 {
		t.Fatalf("VolumeBase = %v, want 15", calc.VolumeBase)
	}
	if calc.DistanceSurcharge != 0 {
		t.Fatalf("DistanceSurcharge = %v, want 0", calc.DistanceSurcharge)
	}
}
