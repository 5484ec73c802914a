package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantinota/noleggio-api/internal/domains/materials/domain"
	"github.com/cantinota/noleggio-api/internal/domains/materials/ports"
)

type fakeMaterialRepo struct {
	materials map[int64]*domain.Material
	nextID    int64
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: map[int64]*domain.Material{}}
}

func (f *fakeMaterialRepo) Save(_ context.Context, material *domain.Material) (*domain.Material, error) {
	copy := *material
	if copy.ID == 0 {
		f.nextID++
		copy.ID = f.nextID
	}
	f.materials[copy.ID] = &copy
	result := copy
	return &result, nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id int64) (*domain.Material, error) {
	if m, ok := f.materials[id]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id int64) error {
	delete(f.materials, id)
	return nil
}

func (f *fakeMaterialRepo) List(_ context.Context) ([]domain.Material, error) {
	list := make([]domain.Material, 0, len(f.materials))
	for _, m := range f.materials {
		list = append(list, *m)
	}
	return list, nil
}

type fakeRentalBook struct {
	usedMaterials map[int64]bool
	lines         []domain.RentalLine
}

func (f *fakeRentalBook) HasOrdersForMaterial(_ context.Context, materialID int64) (bool, error) {
	return f.usedMaterials[materialID], nil
}

func (f *fakeRentalBook) Lines(_ context.Context) ([]domain.RentalLine, error) {
	return f.lines, nil
}

func TestCreate_AssignsIDAndValidates(t *testing.T) {
	repo := newFakeMaterialRepo()
	svc := NewService(repo, &fakeRentalBook{})

	created, err := svc.Create(context.Background(), &domain.Material{Name: "Sedie", StockTotal: 50, WeekendPrice: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = svc.Create(context.Background(), &domain.Material{Name: "", StockTotal: 1, WeekendPrice: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestUpdate_UnknownMaterial(t *testing.T) {
	svc := NewService(newFakeMaterialRepo(), &fakeRentalBook{})

	_, err := svc.Update(context.Background(), 42, &domain.Material{Name: "Sedie"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_BlockedWhileReferencedByOrders(t *testing.T) {
	repo := newFakeMaterialRepo()
	book := &fakeRentalBook{usedMaterials: map[int64]bool{1: true}}
	svc := NewService(repo, book)

	created, err := svc.Create(context.Background(), &domain.Material{Name: "Sedie", StockTotal: 50, WeekendPrice: 2})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrHasOrders)

	book.usedMaterials[created.ID] = false
	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAvailability_ComposesStockAndOpenRentals(t *testing.T) {
	repo := newFakeMaterialRepo()
	book := &fakeRentalBook{}
	svc := NewService(repo, book)

	created, err := svc.Create(context.Background(), &domain.Material{Name: "Sedie", StockTotal: 20, WeekendPrice: 2})
	require.NoError(t, err)
	book.lines = []domain.RentalLine{
		{MaterialID: created.ID, Quantity: 18},
		{MaterialID: created.ID, Quantity: 5, Returned: true},
	}

	rows, err := svc.Availability(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(18), rows[0].Occupied)
	assert.Equal(t, int64(2), rows[0].Available)
	assert.True(t, rows[0].LowStock)
}
