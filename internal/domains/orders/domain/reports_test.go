package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthlyPaidRevenue_SumsOnlyPaidOrders(t *testing.T) {
	orders := []*Order{
		{ID: 1, DeliveryDate: day("2026-03-07"), Total: 100, Paid: true},
		{ID: 2, DeliveryDate: day("2026-03-14"), Total: 50, Paid: false},
	}

	rows := MonthlyPaidRevenue(orders)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03", rows[0].YearMonth)
	assert.Equal(t, "Marzo", rows[0].Label)
	assert.Equal(t, 100.0, rows[0].TotalPaid)
}

func TestMonthlyPaidRevenue_UnpaidOnlyMonthReportsZero(t *testing.T) {
	orders := []*Order{
		{ID: 1, DeliveryDate: day("2026-05-02"), Total: 80, Paid: false},
	}

	rows := MonthlyPaidRevenue(orders)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-05", rows[0].YearMonth)
	assert.Equal(t, 0.0, rows[0].TotalPaid)
}

func TestMonthlyPaidRevenue_Chronological(t *testing.T) {
	orders := []*Order{
		{ID: 1, DeliveryDate: day("2026-11-01"), Total: 10, Paid: true},
		{ID: 2, DeliveryDate: day("2026-01-15"), Total: 20, Paid: true},
		{ID: 3, DeliveryDate: day("2025-12-31"), Total: 30, Paid: true},
	}

	rows := MonthlyPaidRevenue(orders)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2025-12", "2026-01", "2026-11"}, []string{rows[0].YearMonth, rows[1].YearMonth, rows[2].YearMonth})
	assert.Equal(t, "Dicembre", rows[0].Label)
	assert.Equal(t, "Gennaio", rows[1].Label)
	assert.Equal(t, "Novembre", rows[2].Label)
}

func TestMonthlyPaidRevenue_Empty(t *testing.T) {
	assert.Empty(t, MonthlyPaidRevenue(nil))
}

func TestCountByMaterial_IncludesZeroCountMaterials(t *testing.T) {
	names := map[int64]string{1: "Sedie", 2: "Tavoli", 3: "Gazebo"}
	orders := []*Order{
		{ID: 1, MaterialID: 2},
		{ID: 2, MaterialID: 2},
		{ID: 3, MaterialID: 1},
	}

	rows := CountByMaterial(names, orders)
	require.Len(t, rows, 3)
	assert.Equal(t, MaterialOrderCount{Name: "Tavoli", Orders: 2}, rows[0])
	assert.Equal(t, MaterialOrderCount{Name: "Sedie", Orders: 1}, rows[1])
	assert.Equal(t, MaterialOrderCount{Name: "Gazebo", Orders: 0}, rows[2])
}

func TestCountByMaterial_TiesBrokenByName(t *testing.T) {
	names := map[int64]string{1: "Sedie", 2: "Gazebo"}
	orders := []*Order{
		{ID: 1, MaterialID: 1},
		{ID: 2, MaterialID: 2},
	}

	rows := CountByMaterial(names, orders)
	require.Len(t, rows, 2)
	assert.Equal(t, "Gazebo", rows[0].Name)
	assert.Equal(t, "Sedie", rows[1].Name)
}
