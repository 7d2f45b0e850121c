package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultPath is the store location when STORE_PATH is unset.
const DefaultPath = "./stockman.db"

// Open opens the SQLite store at path. The handle is meant to be opened once
// at startup and passed explicitly to every repository; the connection pool
// is pinned to a single connection since the system is single-user and
// ":memory:" stores exist per connection.
func Open(path string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// Initialize idempotently ensures every relation exists (create-if-absent,
// never drops or alters) and seeds the category, supplier and customer
// tables when, and only when, the table is currently empty.
func Initialize(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Category{}, &model.StockItem{}, &model.StockLevel{}); err != nil {
		return apperr.Persistence(err)
	}

	// Supplier/customer and the two order families share one Go struct
	// each, so their tables are migrated with an explicit table override.
	for _, kind := range []model.PartyKind{model.KindSupplier, model.KindCustomer} {
		if err := db.Table(kind.Table()).AutoMigrate(&model.Party{}); err != nil {
			return apperr.Persistence(err)
		}
	}
	for _, kind := range []model.OrderKind{model.KindPurchase, model.KindSales} {
		if err := db.Table(kind.Table()).AutoMigrate(&model.Order{}); err != nil {
			return apperr.Persistence(err)
		}
		if err := db.Table(kind.LineTable()).AutoMigrate(&model.OrderLine{}); err != nil {
			return apperr.Persistence(err)
		}
	}

	return seedDefaults(db)
}

func seedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return apperr.Persistence(err)
	}
	if count == 0 {
		categories := []model.Category{
			{Name: "Timber/Wood"},
			{Name: "Construction"},
			{Name: "Hardware"},
			{Name: "Packaging"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return apperr.Persistence(err)
		}
	}

	defaults := map[model.PartyKind]string{
		model.KindSupplier: "Walk-in Supplier",
		model.KindCustomer: "Walk-in Customer",
	}
	for kind, name := range defaults {
		if err := db.Table(kind.Table()).Count(&count).Error; err != nil {
			return apperr.Persistence(err)
		}
		if count == 0 {
			if err := db.Table(kind.Table()).Create(&model.Party{Name: name}).Error; err != nil {
				return apperr.Persistence(err)
			}
		}
	}
	return nil
}
