package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
	"github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to the ordini table.
type orderRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	CustomerID   int64     `gorm:"column:cliente_id;index"`
	MaterialID   int64     `gorm:"column:materiale_id;index"`
	Quantity     int64     `gorm:"column:quantita"`
	DeliveryDate time.Time `gorm:"column:data_consegna;type:date;index"`
	PickupDate   time.Time `gorm:"column:data_ritiro;type:date"`
	Km           float64   `gorm:"column:km"`
	Total        float64   `gorm:"column:totale"`
	Delivered    bool      `gorm:"column:consegnato"`
	Returned     bool      `gorm:"column:ritirato;index"`
	Paid         bool      `gorm:"column:pagato"`
	Note         *string   `gorm:"column:note"`
}

func (orderRecord) TableName() string { return "ordini" }

// CreateBatch inserts every line inside one transaction; a failed line rolls
// back its siblings.
func (r *Repository) CreateBatch(ctx context.Context, orders []*domain.Order) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	records := make([]orderRecord, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			return nil, errors.New("ordine is nil")
		}
		records = append(records, toRecord(order))
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	created := make([]*domain.Order, 0, len(records))
	for i := range records {
		created = append(created, records[i].toDomain())
	}
	return created, nil
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Update overwrites the rental columns, leaving the status flags alone.
func (r *Repository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("ordine is nil")
	}
	record := toRecord(order)
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"cliente_id":    record.CustomerID,
			"materiale_id":  record.MaterialID,
			"quantita":      record.Quantity,
			"data_consegna": record.DeliveryDate,
			"data_ritiro":   record.PickupDate,
			"km":            record.Km,
			"totale":        record.Total,
			"note":          record.Note,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, order.ID)
}

// UpdateFlags overwrites only the three status flags.
func (r *Repository) UpdateFlags(ctx context.Context, id int64, delivered, returned, paid bool) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"consegnato": delivered,
			"ritirato":   returned,
			"pagato":     paid,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an order by identifier. A missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&orderRecord{}, id).Error
}

// List returns all orders.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// ExistsForCustomer reports whether any order references the customer.
func (r *Repository) ExistsForCustomer(ctx context.Context, customerID int64) (bool, error) {
	return r.exists(ctx, "cliente_id = ?", customerID)
}

// ExistsForMaterial reports whether any order references the material.
func (r *Repository) ExistsForMaterial(ctx context.Context, materialID int64) (bool, error) {
	return r.exists(ctx, "materiale_id = ?", materialID)
}

func (r *Repository) exists(ctx context.Context, query string, arg any) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Where(query, arg).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	rec := orderRecord{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		MaterialID:   order.MaterialID,
		Quantity:     order.Quantity,
		DeliveryDate: order.DeliveryDate,
		PickupDate:   order.PickupDate,
		Km:           order.Km,
		Total:        order.Total,
		Delivered:    order.Delivered,
		Returned:     order.Returned,
		Paid:         order.Paid,
	}
	if order.Note != "" {
		note := order.Note
		rec.Note = &note
	}
	return rec
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		MaterialID:   r.MaterialID,
		Quantity:     r.Quantity,
		DeliveryDate: r.DeliveryDate,
		PickupDate:   r.PickupDate,
		Km:           r.Km,
		Total:        r.Total,
		Delivered:    r.Delivered,
		Returned:     r.Returned,
		Paid:         r.Paid,
	}
	if r.Note != nil {
		order.Note = *r.Note
	}
	return order
}
