package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantinota/noleggio-api/internal/domains/customers/domain"
	"github.com/cantinota/noleggio-api/internal/domains/customers/ports"
)

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]*domain.Customer{}}
}

func (f *fakeCustomerRepo) Save(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	copy := *customer
	if copy.ID == 0 {
		f.nextID++
		copy.ID = f.nextID
	}
	f.customers[copy.ID] = &copy
	result := copy
	return &result, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if c, ok := f.customers[id]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	list := make([]domain.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		list = append(list, *c)
	}
	return list, nil
}

type fakeCustomerRentals struct {
	withOrders map[int64]bool
}

func (f *fakeCustomerRentals) HasOrdersForCustomer(_ context.Context, customerID int64) (bool, error) {
	return f.withOrders[customerID], nil
}

func TestCreate_RequiresName(t *testing.T) {
	svc := NewService(newFakeCustomerRepo(), &fakeCustomerRentals{})

	created, err := svc.Create(context.Background(), &domain.Customer{Name: "Mario Rossi", Phone: "333"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = svc.Create(context.Background(), &domain.Customer{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestUpdate_UnknownCustomer(t *testing.T) {
	svc := NewService(newFakeCustomerRepo(), &fakeCustomerRentals{})

	_, err := svc.Update(context.Background(), 42, &domain.Customer{Name: "Mario"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_BlockedWhileReferencedByOrders(t *testing.T) {
	repo := newFakeCustomerRepo()
	rentals := &fakeCustomerRentals{withOrders: map[int64]bool{}}
	svc := NewService(repo, rentals)

	created, err := svc.Create(context.Background(), &domain.Customer{Name: "Mario Rossi"})
	require.NoError(t, err)
	rentals.withOrders[created.ID] = true

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrHasOrders)

	rentals.withOrders[created.ID] = false
	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
