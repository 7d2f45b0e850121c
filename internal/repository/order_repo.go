package repository

import (
	"stocktrack/internal/model"

	"gorm.io/gorm"
)

// OrderRepository serves both order families. Purchase and sales orders live
// in parallel tables, so line queries are always scoped by the owning kind's
// relation and never leak across families even when header ids collide.
type OrderRepository interface {
	Create(kind model.OrderKind, order *model.Order) error
	Update(kind model.OrderKind, order *model.Order) error
	Delete(tx *gorm.DB, kind model.OrderKind, id uint) error
	FindAll(kind model.OrderKind) ([]model.Order, error)
	FindByID(kind model.OrderKind, id uint) (*model.Order, error)

	AddLine(kind model.OrderKind, line *model.OrderLine) error
	DeleteLine(kind model.OrderKind, lineID uint) (int64, error)
	FindLines(kind model.OrderKind, orderID uint) ([]model.OrderLine, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(kind model.OrderKind, order *model.Order) error {
	return r.db.Table(kind.Table()).Create(order).Error
}

func (r *orderRepo) Update(kind model.OrderKind, order *model.Order) error {
	return r.db.Table(kind.Table()).Save(order).Error
}

// Delete removes the header and its lines; callers pass a transaction handle
// so both deletes commit or roll back together.
func (r *orderRepo) Delete(tx *gorm.DB, kind model.OrderKind, id uint) error {
	if err := tx.Table(kind.LineTable()).Where("order_id = ?", id).Delete(&model.OrderLine{}).Error; err != nil {
		return err
	}
	return tx.Table(kind.Table()).Where("id = ?", id).Delete(&model.Order{}).Error
}

func (r *orderRepo) FindAll(kind model.OrderKind) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Table(kind.Table()).Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(kind model.OrderKind, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.Table(kind.Table()).First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) AddLine(kind model.OrderKind, line *model.OrderLine) error {
	return r.db.Table(kind.LineTable()).Create(line).Error
}

func (r *orderRepo) DeleteLine(kind model.OrderKind, lineID uint) (int64, error) {
	res := r.db.Table(kind.LineTable()).Where("id = ?", lineID).Delete(&model.OrderLine{})
	return res.RowsAffected, res.Error
}

func (r *orderRepo) FindLines(kind model.OrderKind, orderID uint) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := r.db.Table(kind.LineTable()).Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}
