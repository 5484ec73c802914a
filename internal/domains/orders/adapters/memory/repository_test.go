package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
	"github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

func validOrder(materialID int64) *domain.Order {
	return &domain.Order{
		CustomerID:   1,
		MaterialID:   materialID,
		Quantity:     2,
		DeliveryDate: time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		PickupDate:   time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
		Km:           30,
		Total:        40,
	}
}

func TestCreateBatch_AssignsSequentialIDs(t *testing.T) {
	repo := NewRepository()

	created, err := repo.CreateBatch(context.Background(), []*domain.Order{validOrder(1), validOrder(2)})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(2), created[1].ID)
}

func TestCreateBatch_InvalidLineLeavesNothingBehind(t *testing.T) {
	repo := NewRepository()

	bad := validOrder(2)
	bad.CustomerID = 0
	_, err := repo.CreateBatch(context.Background(), []*domain.Order{validOrder(1), bad})
	require.ErrorIs(t, err, domain.ErrInvalidCustomerID)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_PreservesStatusFlags(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.CreateBatch(ctx, []*domain.Order{validOrder(1)})
	require.NoError(t, err)
	id := created[0].ID

	_, err = repo.UpdateFlags(ctx, id, true, false, true)
	require.NoError(t, err)

	replacement := validOrder(3)
	replacement.ID = id
	replacement.Total = 99
	updated, err := repo.Update(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, 99.0, updated.Total)
	assert.True(t, updated.Delivered)
	assert.True(t, updated.Paid)
	assert.False(t, updated.Returned)
}

func TestUpdate_UnknownOrder(t *testing.T) {
	repo := NewRepository()

	missing := validOrder(1)
	missing.ID = 42
	_, err := repo.Update(context.Background(), missing)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_MissingIDIsNotAnError(t *testing.T) {
	repo := NewRepository()
	assert.NoError(t, repo.Delete(context.Background(), 42))
}

func TestExistsForCustomerAndMaterial(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.CreateBatch(ctx, []*domain.Order{validOrder(5)})
	require.NoError(t, err)

	usedCustomer, err := repo.ExistsForCustomer(ctx, 1)
	require.NoError(t, err)
	assert.True(t, usedCustomer)

	usedMaterial, err := repo.ExistsForMaterial(ctx, 5)
	require.NoError(t, err)
	assert.True(t, usedMaterial)

	unused, err := repo.ExistsForMaterial(ctx, 99)
	require.NoError(t, err)
	assert.False(t, unused)
}
