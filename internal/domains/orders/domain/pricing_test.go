package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal_WithinFreeAllowance(t *testing.T) {
	assert.Equal(t, 200.0, ComputeTotal(100, 2, 50))
	assert.Equal(t, 200.0, ComputeTotal(100, 2, 0))
}

func TestComputeTotal_SurchargeBeyondAllowance(t *testing.T) {
	// 50 free km, then 3 per km: 100*2 + 10*3
	assert.Equal(t, 230.0, ComputeTotal(100, 2, 60))
}

func TestComputeTotal_ZeroQuantity(t *testing.T) {
	// distance surcharge applies even when the line rents nothing
	assert.Equal(t, 30.0, ComputeTotal(100, 0, 60))
}

func TestComputeTotal_NegativeKmClampedToBase(t *testing.T) {
	assert.Equal(t, 100.0, ComputeTotal(100, 1, -20))
}
