package domain

import "math"

// Pricing constants: the first 50 km are free, every km beyond adds a flat
// per-km surcharge on top of the weekend price times quantity.
const (
	FreeKmAllowance = 50.0
	PerKmSurcharge  = 3.0
)

// ComputeTotal derives a rental total from the material's weekend price, the
// rented quantity, and the distance traveled. Negative distances count as
// zero surcharge. The result is a pure function of its inputs; missing
// request values are coerced to zero before they reach here.
func ComputeTotal(weekendPrice, quantity, km float64) float64 {
	base := weekendPrice * quantity
	extra := math.Max(0, km-FreeKmAllowance) * PerKmSurcharge
	return base + extra
}
