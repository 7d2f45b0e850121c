package model

import "github.com/shopspring/decimal"

// StockItem always owns exactly one StockLevel row; the two are written
// together inside a single transaction.
type StockItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string          `gorm:"type:text" json:"description"`
	CategoryID  *uint           `json:"category_id,omitempty"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`

	Level *StockLevel `gorm:"foreignKey:ItemID" json:"level,omitempty" validate:"-"`
}

type StockLevel struct {
	ItemID   uint `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	Quantity int  `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
}
