package service

import (
	"errors"
	"time"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"
	"stocktrack/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderInput is an order header as supplied by the caller.
type OrderInput struct {
	PartyID   *uint     `json:"party_id"`
	OrderDate time.Time `json:"order_date"`
	Status    string    `json:"status"`
}

// LineInput is one line to attach to an order. Price is a snapshot taken at
// order time; it does not track the item's current unit price afterwards.
type LineInput struct {
	ItemID   uint            `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderService interface {
	CreateOrder(kind model.OrderKind, in *OrderInput) (uint, error)
	UpdateOrder(kind model.OrderKind, id uint, in *OrderInput) error
	DeleteOrder(kind model.OrderKind, id uint) error
	GetOrder(kind model.OrderKind, id uint) (*model.Order, error)
	ListOrders(kind model.OrderKind) ([]model.Order, error)

	AddLine(kind model.OrderKind, orderID uint, in *LineInput) (uint, error)
	RemoveLine(kind model.OrderKind, lineID uint) error
	ListLines(kind model.OrderKind, orderID uint) ([]model.OrderLine, error)
}

type orderService struct {
	orders repository.OrderRepository
	db     *gorm.DB
}

func NewOrderService(orders repository.OrderRepository, db *gorm.DB) OrderService {
	return &orderService{orders: orders, db: db}
}

// validateOrder checks the header against the kind's rules. Sales orders
// require a customer; purchase orders accept a missing supplier.
func validateOrder(kind model.OrderKind, in *OrderInput) error {
	if !kind.Valid() {
		return apperr.Validation("kind", "must be purchase or sales")
	}
	if !kind.ValidStatus(in.Status) {
		return apperr.Validation("Status", "must be one of the "+string(kind)+" statuses")
	}
	if kind == model.KindSales && (in.PartyID == nil || *in.PartyID == 0) {
		return apperr.Validation("PartyID", "customer is required for sales orders")
	}
	if in.OrderDate.IsZero() {
		return apperr.Validation("OrderDate", "is required")
	}
	return nil
}

func (s *orderService) CreateOrder(kind model.OrderKind, in *OrderInput) (uint, error) {
	if err := validateOrder(kind, in); err != nil {
		return 0, err
	}
	order := &model.Order{
		PartyID:   in.PartyID,
		OrderDate: in.OrderDate,
		Status:    in.Status,
	}
	if err := s.orders.Create(kind, order); err != nil {
		return 0, apperr.Persistence(err)
	}
	return order.ID, nil
}

func (s *orderService) UpdateOrder(kind model.OrderKind, id uint, in *OrderInput) error {
	if err := validateOrder(kind, in); err != nil {
		return err
	}
	existing, err := s.orders.FindByID(kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Persistence(err)
	}

	existing.PartyID = in.PartyID
	existing.OrderDate = in.OrderDate
	existing.Status = in.Status

	if err := s.orders.Update(kind, existing); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

// DeleteOrder removes the header together with its lines in one transaction.
func (s *orderService) DeleteOrder(kind model.OrderKind, id uint) error {
	if !kind.Valid() {
		return apperr.Validation("kind", "must be purchase or sales")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(kind.Table()).First(&model.Order{}, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}
		return s.orders.Delete(tx, kind, id)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		return apperr.Persistence(err)
	}
	return nil
}

func (s *orderService) GetOrder(kind model.OrderKind, id uint) (*model.Order, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("kind", "must be purchase or sales")
	}
	order, err := s.orders.FindByID(kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}
	return order, nil
}

func (s *orderService) ListOrders(kind model.OrderKind) ([]model.Order, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("kind", "must be purchase or sales")
	}
	orders, err := s.orders.FindAll(kind)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return orders, nil
}

// AddLine attaches a line to an existing order. Stock levels are never
// adjusted by order activity.
func (s *orderService) AddLine(kind model.OrderKind, orderID uint, in *LineInput) (uint, error) {
	if !kind.Valid() {
		return 0, apperr.Validation("kind", "must be purchase or sales")
	}
	if in.Quantity < 1 {
		return 0, apperr.Validation("Quantity", "must be at least 1")
	}
	if in.Price.IsNegative() {
		return 0, apperr.Validation("Price", "must not be negative")
	}
	if in.ItemID == 0 {
		return 0, apperr.Validation("ItemID", "is required")
	}

	if _, err := s.orders.FindByID(kind, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.ErrNotFound
		}
		return 0, apperr.Persistence(err)
	}

	line := &model.OrderLine{
		OrderID:  orderID,
		ItemID:   in.ItemID,
		Quantity: in.Quantity,
		Price:    in.Price,
	}
	if err := s.orders.AddLine(kind, line); err != nil {
		return 0, apperr.Persistence(err)
	}
	return line.ID, nil
}

// RemoveLine deletes and persists in one call; there is no separate flush
// step for the caller to forget.
func (s *orderService) RemoveLine(kind model.OrderKind, lineID uint) error {
	if !kind.Valid() {
		return apperr.Validation("kind", "must be purchase or sales")
	}
	affected, err := s.orders.DeleteLine(kind, lineID)
	if err != nil {
		return apperr.Persistence(err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *orderService) ListLines(kind model.OrderKind, orderID uint) ([]model.OrderLine, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("kind", "must be purchase or sales")
	}
	lines, err := s.orders.FindLines(kind, orderID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return lines, nil
}
