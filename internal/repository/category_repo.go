package repository

import (
	"stocktrack/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(id uint) (int64, error)
	FindAll() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Category{}, id)
	return res.RowsAffected, res.Error
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
