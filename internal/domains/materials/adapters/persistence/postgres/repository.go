package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cantinota/noleggio-api/internal/domains/materials/domain"
	"github.com/cantinota/noleggio-api/internal/domains/materials/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists materials in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&materialRecord{})
	}
	return repo
}

// materialRecord maps the material aggregate to the materiali table.
type materialRecord struct {
	ID           int64   `gorm:"primaryKey;column:id"`
	Name         string  `gorm:"column:nome;index"`
	StockTotal   int64   `gorm:"column:quantita_disponibile"`
	WeekendPrice float64 `gorm:"column:prezzo_weekend"`
}

func (materialRecord) TableName() string { return "materiali" }

// Save inserts or updates a material.
func (r *Repository) Save(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if material == nil {
		return nil, errors.New("materiale is nil")
	}
	record := materialRecord{
		ID:           material.ID,
		Name:         material.Name,
		StockTotal:   material.StockTotal,
		WeekendPrice: material.WeekendPrice,
	}
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a material by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Material, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record materialRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a material by identifier. A missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&materialRecord{}, id).Error
}

// List returns all materials ordered by name.
func (r *Repository) List(ctx context.Context) ([]domain.Material, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []materialRecord
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	materials := make([]domain.Material, 0, len(records))
	for i := range records {
		materials = append(materials, *records[i].toDomain())
	}
	return materials, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres material repository not configured")
	}
	return nil
}

func (r materialRecord) toDomain() *domain.Material {
	return &domain.Material{
		ID:           r.ID,
		Name:         r.Name,
		StockTotal:   r.StockTotal,
		WeekendPrice: r.WeekendPrice,
	}
}
