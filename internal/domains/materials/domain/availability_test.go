package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAvailability_OpenRentalsReduceAvailable(t *testing.T) {
	materials := []Material{{ID: 1, Name: "Sedie", StockTotal: 20}}
	rentals := []RentalLine{
		{MaterialID: 1, Quantity: 10},
		{MaterialID: 1, Quantity: 8},
	}

	rows := ComputeAvailability(materials, rentals)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(18), rows[0].Occupied)
	assert.Equal(t, int64(2), rows[0].Available)
	assert.True(t, rows[0].LowStock)
}

func TestComputeAvailability_ReturnedLinesFreeStock(t *testing.T) {
	materials := []Material{{ID: 1, Name: "Tavoli", StockTotal: 10}}
	rentals := []RentalLine{
		{MaterialID: 1, Quantity: 6, Returned: true},
		{MaterialID: 1, Quantity: 2},
	}

	rows := ComputeAvailability(materials, rentals)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].Occupied)
	assert.Equal(t, int64(8), rows[0].Available)
	assert.False(t, rows[0].LowStock)
}

func TestComputeAvailability_NoRentals(t *testing.T) {
	materials := []Material{{ID: 1, Name: "Gazebo", StockTotal: 4}}

	rows := ComputeAvailability(materials, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(0), rows[0].Occupied)
	assert.Equal(t, int64(4), rows[0].Available)
	assert.False(t, rows[0].LowStock)
}

func TestComputeAvailability_OverbookingGoesNegative(t *testing.T) {
	materials := []Material{{ID: 1, Name: "Sedie", StockTotal: 5}}
	rentals := []RentalLine{{MaterialID: 1, Quantity: 8}}

	rows := ComputeAvailability(materials, rentals)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(-3), rows[0].Available)
	assert.True(t, rows[0].LowStock)
}

func TestComputeAvailability_SortedByName(t *testing.T) {
	materials := []Material{
		{ID: 2, Name: "Tavoli", StockTotal: 5},
		{ID: 1, Name: "Gazebo", StockTotal: 5},
	}

	rows := ComputeAvailability(materials, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Gazebo", rows[0].Name)
	assert.Equal(t, "Tavoli", rows[1].Name)
}

func TestLowStockThreshold_NeverBelowOne(t *testing.T) {
	assert.Equal(t, int64(1), lowStockThreshold(5))
	assert.Equal(t, int64(1), lowStockThreshold(10))
	assert.Equal(t, int64(2), lowStockThreshold(25))
	assert.Equal(t, int64(1), lowStockThreshold(0))
}
