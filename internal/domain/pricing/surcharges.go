package pricing

import "math"

const (
	perFloorRate = 50

	distanceTierA = 150 // 50 < km <= 100
	distanceTierB = 300 // 100 < km <= 200
	distanceTierC = 450 // 200 < km <= 300
	distanceTierD = 600 // > 300 km

	packingRatePerCbm = 15
	packingMinimumFee = 150

	perBoxPrice = 2.50

	cleaningHourlyRate   = 35
	renovationHourlyRate = 45
	pianoFlatPrice       = 150
	perHeavyItemPrice    = 25
	packingMaterialsFlat = 50

	parkingZoneFlat          = 80
	storageFlat              = 100
	furnitureAssemblyFlat    = 50
	furnitureDisassemblyFlat = 50
)

// FloorSurcharge prices one leg of the move. Ground floor is 1; legs with
// an elevator carry no surcharge regardless of floor.
func FloorSurcharge(floor int, hasElevator bool) float64 {
	if hasElevator || floor <= 1 {
		return 0
	}
	return float64(floor-1) * perFloorRate
}

// DistanceSurcharge is a step function on the one-way distance in km.
// Distances beyond 300 km stay at the flat top tier.
func DistanceSurcharge(distanceKm float64) float64 {
	switch {
	case distanceKm <= 50:
		return 0
	case distanceKm <= 100:
		return distanceTierA
	case distanceKm <= 200:
		return distanceTierB
	case distanceKm <= 300:
		return distanceTierC
	default:
		return distanceTierD
	}
}

// PackingSurcharge prices the packing service by volume with a minimum fee.
func PackingSurcharge(volume float64, requested bool) float64 {
	if !requested {
		return 0
	}
	return math.Max(volume*packingRatePerCbm, packingMinimumFee)
}

// BoxesPrice is linear in the box count, no cap.
func BoxesPrice(boxCount int) float64 {
	return float64(boxCount) * perBoxPrice
}

// ClearancePrice prices the clearance (Entrümpelung) service by volume.
func ClearancePrice(volume float64) float64 {
	switch {
	case volume <= 0:
		return 0
	case volume <= 5:
		return 150
	case volume <= 10:
		return 280
	case volume <= 15:
		return 420
	case volume <= 20:
		return 560
	default:
		return 560 + (volume-20)*25
	}
}
