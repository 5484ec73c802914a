package domain

import "sort"

// RentalLine is the slice of an order availability cares about: which
// material, how many units, and whether it came back.
type RentalLine struct {
	MaterialID int64
	Quantity   int64
	Returned   bool
}

// Availability is the derived per-material occupancy view. It is computed
// fresh on every query and never stored.
type Availability struct {
	MaterialID int64
	Name       string
	StockTotal int64
	Occupied   int64
	Available  int64
	LowStock   bool
}

// ComputeAvailability derives occupancy from the not-yet-returned rental
// lines. Available is not clamped: overbooking surfaces as a negative number
// so operators can see the overcommitment. Materials with no rentals appear
// with zero occupancy. Output is sorted by material name ascending.
func ComputeAvailability(materials []Material, rentals []RentalLine) []Availability {
	occupied := make(map[int64]int64, len(materials))
	for _, line := range rentals {
		if line.Returned {
			continue
		}
		occupied[line.MaterialID] += line.Quantity
	}
	rows := make([]Availability, 0, len(materials))
	for _, m := range materials {
		occ := occupied[m.ID]
		available := m.StockTotal - occ
		rows = append(rows, Availability{
			MaterialID: m.ID,
			Name:       m.Name,
			StockTotal: m.StockTotal,
			Occupied:   occ,
			Available:  available,
			LowStock:   available <= lowStockThreshold(m.StockTotal),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// lowStockThreshold is floor(stockTotal * 0.1), never below one unit, so the
// low-stock flag stays reachable for small inventories.
func lowStockThreshold(stockTotal int64) int64 {
	threshold := stockTotal / 10
	if threshold < 1 {
		threshold = 1
	}
	return threshold
}
