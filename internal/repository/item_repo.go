package repository

import (
	"stocktrack/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	// Create and SaveLevel take the caller's handle so the item insert and
	// the paired level write can share one transaction.
	Create(tx *gorm.DB, item *model.StockItem) error
	Update(tx *gorm.DB, item *model.StockItem) error
	Delete(tx *gorm.DB, id uint) error
	SaveLevel(tx *gorm.DB, level *model.StockLevel) error
	DeleteLevel(tx *gorm.DB, itemID uint) error
	FindAll() ([]model.StockItem, error)
	FindByID(id uint) (*model.StockItem, error)
	FindLowStock(threshold int) ([]LowStockEntry, error)
}

// LowStockEntry is one row of the low-stock report join.
type LowStockEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(tx *gorm.DB, item *model.StockItem) error {
	return tx.Omit("Category", "Level").Create(item).Error
}

func (r *itemRepo) Update(tx *gorm.DB, item *model.StockItem) error {
	return tx.Omit("Category", "Level").Save(item).Error
}

func (r *itemRepo) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.StockItem{}, id).Error
}

// SaveLevel upserts so create and full-record update share one code path.
func (r *itemRepo) SaveLevel(tx *gorm.DB, level *model.StockLevel) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(level).Error
}

func (r *itemRepo) DeleteLevel(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&model.StockLevel{}, "item_id = ?", itemID).Error
}

func (r *itemRepo) FindAll() ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.Preload("Category").Preload("Level").Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uint) (*model.StockItem, error) {
	var item model.StockItem
	err := r.db.Preload("Category").Preload("Level").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindLowStock joins items with their levels and keeps quantities strictly
// below the threshold.
func (r *itemRepo) FindLowStock(threshold int) ([]LowStockEntry, error) {
	var entries []LowStockEntry
	err := r.db.Model(&model.StockItem{}).
		Select("stock_items.name, stock_levels.quantity").
		Joins("JOIN stock_levels ON stock_levels.item_id = stock_items.id").
		Where("stock_levels.quantity < ?", threshold).
		Scan(&entries).Error
	return entries, err
}
