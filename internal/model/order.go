package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderKind selects between the purchase and sales order families. The two
// families live in parallel tables, so every repository call dispatches on
// the kind to pick the header and line tables.
type OrderKind string

const (
	KindPurchase OrderKind = "purchase"
	KindSales    OrderKind = "sales"
)

// Order statuses per kind.
const (
	StatusPending   = "Pending"
	StatusReceived  = "Received"
	StatusCancelled = "Cancelled"
	StatusShipped   = "Shipped"
	StatusCompleted = "Completed"
)

func (k OrderKind) Valid() bool {
	return k == KindPurchase || k == KindSales
}

func (k OrderKind) Table() string {
	if k == KindPurchase {
		return "purchase_orders"
	}
	return "sales_orders"
}

func (k OrderKind) LineTable() string {
	if k == KindPurchase {
		return "purchase_order_items"
	}
	return "sales_order_items"
}

// PartyKind returns the contact table an order of this kind references.
func (k OrderKind) PartyKind() PartyKind {
	if k == KindPurchase {
		return KindSupplier
	}
	return KindCustomer
}

func (k OrderKind) Statuses() []string {
	if k == KindPurchase {
		return []string{StatusPending, StatusReceived, StatusCancelled}
	}
	return []string{StatusPending, StatusShipped, StatusCompleted}
}

func (k OrderKind) ValidStatus(status string) bool {
	for _, s := range k.Statuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Order is the shared header shape of purchase and sales orders.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PartyID   *uint     `json:"party_id,omitempty"`
	OrderDate time.Time `gorm:"type:date;not null" json:"order_date"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status" validate:"required"`
}

// OrderLine snapshots the unit price at the time the line was added; it is
// independent of the stock item's current price.
type OrderLine struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	OrderID  uint            `gorm:"index;not null" json:"order_id"`
	ItemID   uint            `gorm:"not null" json:"item_id" validate:"required"`
	Quantity int             `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	Price    decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
}

// LineTotal is always derived, never stored.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
