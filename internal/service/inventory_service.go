package service

import (
	"errors"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"
	"stocktrack/internal/repository"
	"stocktrack/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemInput is the full record a caller supplies for create and update.
// Updates are full-record replaces, not partial patches.
type ItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	CategoryID  *uint           `json:"category_id"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
}

type InventoryService interface {
	CreateItem(in *ItemInput) (uint, error)
	UpdateItem(id uint, in *ItemInput) error
	DeleteItem(id uint) error
	GetItem(id uint) (*model.StockItem, error)
	ListItems() ([]model.StockItem, error)

	CreateCategory(category *model.Category) (uint, error)
	UpdateCategory(id uint, category *model.Category) error
	DeleteCategory(id uint) error
	ListCategories() ([]model.Category, error)
}

type inventoryService struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	db         *gorm.DB
}

func NewInventoryService(items repository.ItemRepository, categories repository.CategoryRepository, db *gorm.DB) InventoryService {
	return &inventoryService{
		items:      items,
		categories: categories,
		db:         db,
	}
}

func (s *inventoryService) validateItem(in *ItemInput) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return apperr.Validation(errs[0].FailedField, "failed on tag '"+errs[0].Tag+"'")
	}
	if in.UnitPrice.IsNegative() {
		return apperr.Validation("UnitPrice", "must not be negative")
	}
	return nil
}

// CreateItem inserts the stock item and its paired stock level inside one
// transaction. A stock item must never exist without a matching level row,
// so any write failure rolls the whole operation back.
func (s *inventoryService) CreateItem(in *ItemInput) (uint, error) {
	if err := s.validateItem(in); err != nil {
		return 0, err
	}

	item := &model.StockItem{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		UnitPrice:   in.UnitPrice,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.items.Create(tx, item); err != nil {
			return err
		}
		return s.items.SaveLevel(tx, &model.StockLevel{ItemID: item.ID, Quantity: in.Quantity})
	})
	if err != nil {
		return 0, apperr.Persistence(err)
	}
	return item.ID, nil
}

func (s *inventoryService) UpdateItem(id uint, in *ItemInput) error {
	if err := s.validateItem(in); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.StockItem
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}

		existing.Name = in.Name
		existing.Description = in.Description
		existing.CategoryID = in.CategoryID
		existing.UnitPrice = in.UnitPrice

		if err := s.items.Update(tx, &existing); err != nil {
			return err
		}
		return s.items.SaveLevel(tx, &model.StockLevel{ItemID: existing.ID, Quantity: in.Quantity})
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		return apperr.Persistence(err)
	}
	return nil
}

// DeleteItem removes the item and its level together, keeping the pairing
// invariant on the delete path as well.
func (s *inventoryService) DeleteItem(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.StockItem
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}
		if err := s.items.DeleteLevel(tx, id); err != nil {
			return err
		}
		return s.items.Delete(tx, id)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		return apperr.Persistence(err)
	}
	return nil
}

func (s *inventoryService) GetItem(id uint) (*model.StockItem, error) {
	item, err := s.items.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}
	return item, nil
}

func (s *inventoryService) ListItems() ([]model.StockItem, error) {
	items, err := s.items.FindAll()
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return items, nil
}

func (s *inventoryService) CreateCategory(category *model.Category) (uint, error) {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return 0, apperr.Validation(errs[0].FailedField, "failed on tag '"+errs[0].Tag+"'")
	}
	if err := s.categories.Create(category); err != nil {
		return 0, apperr.Persistence(err)
	}
	return category.ID, nil
}

func (s *inventoryService) UpdateCategory(id uint, category *model.Category) error {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return apperr.Validation(errs[0].FailedField, "failed on tag '"+errs[0].Tag+"'")
	}
	existing, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Persistence(err)
	}
	existing.Name = category.Name
	if err := s.categories.Update(existing); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (s *inventoryService) DeleteCategory(id uint) error {
	affected, err := s.categories.Delete(id)
	if err != nil {
		return apperr.Persistence(err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *inventoryService) ListCategories() ([]model.Category, error) {
	categories, err := s.categories.FindAll()
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return categories, nil
}
