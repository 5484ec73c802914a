package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cantinota/noleggio-api/internal/domains/customers/domain"
	"github.com/cantinota/noleggio-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists customers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&customerRecord{})
	}
	return repo
}

// customerRecord maps the customer aggregate to the clienti table.
type customerRecord struct {
	ID              int64  `gorm:"primaryKey;column:id"`
	Name            string `gorm:"column:nome"`
	ShippingAddress string `gorm:"column:indirizzo_spedizione"`
	Phone           string `gorm:"column:telefono"`
}

func (customerRecord) TableName() string { return "clienti" }

// Save inserts or updates a customer.
func (r *Repository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New("cliente is nil")
	}
	record := customerRecord{
		ID:              customer.ID,
		Name:            customer.Name,
		ShippingAddress: customer.ShippingAddress,
		Phone:           customer.Phone,
	}
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a customer by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a customer by identifier. A missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&customerRecord{}, id).Error
}

// List returns all customers ordered by id.
func (r *Repository) List(ctx context.Context) ([]domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []customerRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(records))
	for i := range records {
		customers = append(customers, *records[i].toDomain())
	}
	return customers, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres customer repository not configured")
	}
	return nil
}

func (r customerRecord) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:              r.ID,
		Name:            r.Name,
		ShippingAddress: r.ShippingAddress,
		Phone:           r.Phone,
	}
}
