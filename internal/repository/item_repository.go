package repository

import (
	"context"
	"time"

	"github.com/felalfaro/sellers-meli/database"

	"gorm.io/gorm"
)

// ItemSnapshot stores the analytic subset of a flattened search result.
type ItemSnapshot struct {
	ID                uint    `gorm:"primaryKey"`
	ItemID            string  `gorm:"index;not null"`
	SiteID            string  `gorm:"index;size:8;not null"`
	CategoryID        string  `gorm:"index;not null"`
	Title             string  `gorm:"not null"`
	Condition         string  `gorm:"size:32"`
	Price             float64 `gorm:"not null"`
	OriginalPrice     *float64
	SoldQuantity      int
	AvailableQuantity int
	SellerID          int64
	SellerNickname    string `gorm:"size:128"`
	BrandName         *string
	ModelName         *string
	FreeShipping      bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		db: database.DB,
	}
}

// AutoMigrate ensures DB schema is up to date for this repository.
func AutoMigrate() error {
	return database.DB.AutoMigrate(&ItemSnapshot{})
}

// SaveItemSnapshots persists a batch of flattened item records.
func (r *ItemRepository) SaveItemSnapshots(ctx context.Context, items []ItemSnapshot) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
