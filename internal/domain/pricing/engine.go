package pricing

import "umzug_backoffice/internal/domain/entities"

// CalculateQuote composes the base price, the surcharges and every priced
// add-on into a QuoteCalculation.
//
// The function is pure and cannot fail: missing numeric inputs behave as 0
// and no validation happens here. It is safe to call concurrently and on
// every input change.
//
// Override semantics:
//   - ManualBasePrice > 0 replaces the bracket lookup and suppresses the
//     distance surcharge (manually priced loading/unloading already covers
//     the transport leg).
//   - ManualTotalPrice > 0 replaces FinalPrice only; TotalPrice remains the
//     organically computed sum for the audit breakdown.
func CalculateQuote(customer entities.Customer, details entities.QuoteDetails) entities.QuoteCalculation {
	volume := details.Volume
	if volume <= 0 {
		volume = EstimateVolumeFromArea(customer.Apartment.Area)
	}

	baseInfo := BasePriceFor(volume)
	manualBase := details.ManualBasePrice > 0

	basePrice := baseInfo.Price
	if manualBase {
		basePrice = details.ManualBasePrice
	}

	fromFloor, fromElevator := pickupLeg(customer)
	toFloor, toElevator := deliveryLeg(customer)
	floorSurcharge := FloorSurcharge(fromFloor, fromElevator) + FloorSurcharge(toFloor, toElevator)

	distanceSurcharge := 0.0
	if !manualBase {
		distanceSurcharge = DistanceSurcharge(details.Distance)
	}

	packingService := PackingSurcharge(volume, details.PackingRequested)
	boxesPrice := BoxesPrice(details.BoxCount)

	parkingZone := flagPrice(details.ParkingZonePrice, parkingZoneFlat)
	storage := flagPrice(details.StoragePrice, storageFlat)
	assembly := flagPrice(details.FurnitureAssemblyPrice, furnitureAssemblyFlat)
	disassembly := flagPrice(details.FurnitureDisassemblyPrice, furnitureDisassemblyFlat)

	cleaning := 0.0
	if details.CleaningService {
		cleaning = details.CleaningHours * cleaningHourlyRate
	}
	clearance := 0.0
	if details.ClearanceService {
		clearance = ClearancePrice(details.ClearanceVolume)
	}
	renovation := 0.0
	if details.RenovationService {
		renovation = details.RenovationHours * renovationHourlyRate
	}
	piano := 0.0
	if details.PianoTransport {
		piano = pianoFlatPrice
	}
	heavyItems := float64(details.HeavyItemsCount) * perHeavyItemPrice
	materials := 0.0
	if details.PackingMaterials {
		materials = packingMaterialsFlat
	}

	totalPrice := basePrice + floorSurcharge + distanceSurcharge + packingService + boxesPrice +
		parkingZone + storage + assembly + disassembly +
		cleaning + clearance + renovation + piano + heavyItems + materials

	finalPrice := totalPrice
	if details.ManualTotalPrice > 0 {
		finalPrice = details.ManualTotalPrice
	}

	return entities.QuoteCalculation{
		VolumeBase:  volume,
		VolumeRange: baseInfo.Range,

		BasePrice:                 basePrice,
		FloorSurcharge:            floorSurcharge,
		DistanceSurcharge:         distanceSurcharge,
		PackingService:            packingService,
		BoxesPrice:                boxesPrice,
		ParkingZonePrice:          parkingZone,
		StoragePrice:              storage,
		FurnitureAssemblyPrice:    assembly,
		FurnitureDisassemblyPrice: disassembly,
		CleaningPrice:             cleaning,
		ClearancePrice:            clearance,
		RenovationPrice:           renovation,
		PianoPrice:                piano,
		HeavyItemsPrice:           heavyItems,
		PackingMaterialsPrice:     materials,

		TotalPrice:  totalPrice,
		ManualPrice: details.ManualTotalPrice,
		FinalPrice:  finalPrice,

		PriceBreakdown: entities.PriceBreakdown{
			Base:                 basePrice,
			Floors:               floorSurcharge,
			Distance:             distanceSurcharge,
			Packing:              packingService,
			Boxes:                boxesPrice,
			ParkingZone:          parkingZone,
			Storage:              storage,
			FurnitureAssembly:    assembly,
			FurnitureDisassembly: disassembly,
			Cleaning:             cleaning,
			Clearance:            clearance,
			Renovation:           renovation,
			Piano:                piano,
			HeavyItems:           heavyItems,
			PackingMaterials:     materials,
		},
	}
}

// pickupLeg resolves floor and elevator for the origin. An explicit address
// floor wins over the apartment data.
func pickupLeg(c entities.Customer) (floor int, hasElevator bool) {
	if c.FromAddress.Floor > 0 {
		return c.FromAddress.Floor, c.FromAddress.HasElevator
	}
	floor = c.Apartment.Floor
	if floor <= 0 {
		floor = 1
	}
	return floor, c.Apartment.HasElevator
}

// deliveryLeg resolves floor and elevator for the destination. Without
// explicit address data the destination is assumed ground floor without an
// elevator, the conservative default.
func deliveryLeg(c entities.Customer) (floor int, hasElevator bool) {
	if c.ToAddress.Floor > 0 {
		return c.ToAddress.Floor, c.ToAddress.HasElevator
	}
	return 1, false
}

// flagPrice books a flat-priced service: any positive requested amount
// books it at the catalog price.
func flagPrice(requested, catalog float64) float64 {
	if requested > 0 {
		return catalog
	}
	return 0
}
