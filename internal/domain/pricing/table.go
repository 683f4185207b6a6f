package pricing

import (
	"fmt"
	"math"
)

// VolumeBracket is one tier of the static base-price table. Bounds are
// inclusive on both ends; brackets are contiguous and strictly increasing
// in volume and price.
type VolumeBracket struct {
	MinVolume float64
	MaxVolume float64
	Price     float64
}

var priceTable = []VolumeBracket{
	{MinVolume: 5, MaxVolume: 10, Price: 599},
	{MinVolume: 10, MaxVolume: 15, Price: 749},
	{MinVolume: 15, MaxVolume: 20, Price: 899},
	{MinVolume: 20, MaxVolume: 25, Price: 1099},
	{MinVolume: 25, MaxVolume: 30, Price: 1299},
	{MinVolume: 30, MaxVolume: 35, Price: 1499},
	{MinVolume: 35, MaxVolume: 40, Price: 1699},
	{MinVolume: 40, MaxVolume: 45, Price: 1899},
	{MinVolume: 45, MaxVolume: 50, Price: 2099},
	{MinVolume: 50, MaxVolume: 60, Price: 2299},
	{MinVolume: 60, MaxVolume: 70, Price: 2699},
	{MinVolume: 70, MaxVolume: 80, Price: 3099},
	{MinVolume: 80, MaxVolume: 100, Price: 3499},
}

// overflowStep is charged per additional started 10 m³ above the table.
const overflowStep = 300

// BasePrice is the resolved base price for a volume, with the human-readable
// range label used on quotes.
type BasePrice struct {
	Price float64
	Range string
}

// BasePriceFor looks up the base price for a volume.
//
// Volumes below the first bracket clamp to it; volumes above the last
// bracket are charged the last price plus overflowStep per started 10 m³
// and labeled as Sondervolumen.
func BasePriceFor(volume float64) BasePrice {
	first := priceTable[0]
	if volume < first.MinVolume {
		return BasePrice{Price: first.Price, Range: bracketRange(first)}
	}

	for _, b := range priceTable {
		if volume >= b.MinVolume && volume <= b.MaxVolume {
			return BasePrice{Price: b.Price, Range: bracketRange(b)}
		}
	}

	last := priceTable[len(priceTable)-1]
	extra := math.Ceil((volume-last.MaxVolume)/10) * overflowStep
	return BasePrice{
		Price: last.Price + extra,
		Range: fmt.Sprintf("%g m³ (Sondervolumen)", volume),
	}
}

func bracketRange(b VolumeBracket) string {
	return fmt.Sprintf("%g-%g m³", b.MinVolume, b.MaxVolume)
}

// StandardVolume is the default survey volume covering the majority of moves.
func StandardVolume() float64 {
	return 20
}

// EstimateVolumeFromArea derives a volume from the apartment floor area when
// no explicit volume was surveyed. Orientation only, never used when the
// caller supplies a volume.
func EstimateVolumeFromArea(area float64) float64 {
	return math.Max(math.Round(area/3), 15)
}
