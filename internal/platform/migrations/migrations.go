package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the rental schema. Intended to replace adapter-level automigrate
// when run through cmd/migrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&adminRecord{},
		&customerRecord{},
		&materialRecord{},
		&orderRecord{},
	)
}

// Admin schema mirrors the auth Postgres adapter.
type adminRecord struct {
	ID       int64  `gorm:"primaryKey;column:id"`
	Username string `gorm:"column:username;uniqueIndex"`
	Password string `gorm:"column:password"`
}

func (adminRecord) TableName() string { return "admin" }

// Customer schema mirrors the customers Postgres adapter.
type customerRecord struct {
	ID              int64  `gorm:"primaryKey;column:id"`
	Name            string `gorm:"column:nome"`
	ShippingAddress string `gorm:"column:indirizzo_spedizione"`
	Phone           string `gorm:"column:telefono"`
}

func (customerRecord) TableName() string { return "clienti" }

// Material schema mirrors the materials Postgres adapter.
type materialRecord struct {
	ID           int64   `gorm:"primaryKey;column:id"`
	Name         string  `gorm:"column:nome;index"`
	StockTotal   int64   `gorm:"column:quantita_disponibile"`
	WeekendPrice float64 `gorm:"column:prezzo_weekend"`
}

func (materialRecord) TableName() string { return "materiali" }

// Order schema mirrors the orders Postgres adapter.
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
