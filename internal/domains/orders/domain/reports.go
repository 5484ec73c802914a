package domain

import (
	"sort"
	"time"
)

// MonthlyRevenue is one row of the paid-revenue rollup: a sortable YYYY-MM
// key, a localized month label, and the sum of totals over paid orders.
type MonthlyRevenue struct {
	YearMonth string
	Label     string
	TotalPaid float64
}

// MaterialOrderCount is one row of the per-material order-count rollup.
type MaterialOrderCount struct {
	Name   string
	Orders int64
}

var monthLabels = [...]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

// MonthlyPaidRevenue groups orders by calendar month of the delivery date and
// sums totals over paid orders only. A month appears as soon as any order
// exists in it, so unpaid-only months report zero. Rows are chronological.
func MonthlyPaidRevenue(orders []*Order) []MonthlyRevenue {
	byMonth := map[string]float64{}
	for _, o := range orders {
		key := o.DeliveryDate.Format("2006-01")
		total := byMonth[key]
		if o.Paid {
			total += o.Total
		}
		byMonth[key] = total
	}
	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	rows := make([]MonthlyRevenue, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, MonthlyRevenue{YearMonth: key, Label: monthLabel(key), TotalPaid: byMonth[key]})
	}
	return rows
}

// monthLabel resolves the Italian month name, falling back to the raw key
// when it does not parse.
func monthLabel(yearMonth string) string {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return monthLabels[t.Month()-1]
}

// CountByMaterial counts orders per material, regardless of status. Every
// material in the catalog appears, including those with zero orders. Rows
// are sorted by count descending, then by name for stable output.
func CountByMaterial(materialNames map[int64]string, orders []*Order) []MaterialOrderCount {
	counts := make(map[int64]int64, len(materialNames))
	for id := range materialNames {
		counts[id] = 0
	}
	for _, o := range orders {
		if _, ok := materialNames[o.MaterialID]; ok {
			counts[o.MaterialID]++
		}
	}
	rows := make([]MaterialOrderCount, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, MaterialOrderCount{Name: materialNames[id], Orders: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Orders != rows[j].Orders {
			return rows[i].Orders > rows[j].Orders
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
