package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cantinota/noleggio-api/internal/domains/auth/domain"
	"github.com/cantinota/noleggio-api/internal/domains/auth/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists admin accounts in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&adminRecord{})
	}
	return repo
}

type adminRecord struct {
	ID       int64  `gorm:"primaryKey;column:id"`
	Username string `gorm:"column:username;uniqueIndex"`
	Password string `gorm:"column:password"`
}

func (adminRecord) TableName() string { return "admin" }

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record adminRecord
	if err := r.db.WithContext(ctx).First(&record, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &domain.Admin{ID: record.ID, Username: record.Username, Password: record.Password}, nil
}

func (r *Repository) Save(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errors.New("admin is nil")
	}
	record := adminRecord{ID: admin.ID, Username: admin.Username, Password: admin.Password}
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &domain.Admin{ID: record.ID, Username: record.Username, Password: record.Password}, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres admin repository not configured")
	}
	return nil
}
