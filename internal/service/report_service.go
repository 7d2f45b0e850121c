package service

import (
	"errors"
	"fmt"
	"time"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"
	"stocktrack/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLowStockThreshold is the quantity boundary below which an item
// appears in the shortage report.
const DefaultLowStockThreshold = 10

// Placeholders used when an invoice's references no longer resolve. Invoice
// assembly stays lenient here rather than failing the whole document.
const (
	unknownCustomer = "Unknown Customer"
	unknownItem     = "Unknown Item"
)

// InvoiceData is the assembled record handed to the invoice formatter. All
// amounts are derived at assembly time; nothing here is persisted.
type InvoiceData struct {
	OrderID         uint            `json:"order_id"`
	InvoiceNumber   string          `json:"invoice_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	OrderDate       time.Time       `json:"order_date"`
	Lines           []InvoiceLine   `json:"lines"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

type InvoiceLine struct {
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type ReportService interface {
	LowStockReport(threshold int) ([]repository.LowStockEntry, error)
	AssembleInvoice(salesOrderID uint) (*InvoiceData, error)
}

type reportService struct {
	items   repository.ItemRepository
	parties repository.PartyRepository
	orders  repository.OrderRepository
}

func NewReportService(items repository.ItemRepository, parties repository.PartyRepository, orders repository.OrderRepository) ReportService {
	return &reportService{
		items:   items,
		parties: parties,
		orders:  orders,
	}
}

func (s *reportService) LowStockReport(threshold int) ([]repository.LowStockEntry, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	entries, err := s.items.FindLowStock(threshold)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return entries, nil
}

// AssembleInvoice resolves a sales order into a printable invoice record.
// A missing order is NotFound; a dangling customer or item reference falls
// back to placeholder text instead.
func (s *reportService) AssembleInvoice(salesOrderID uint) (*InvoiceData, error) {
	order, err := s.orders.FindByID(model.KindSales, salesOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}

	data := &InvoiceData{
		OrderID:       order.ID,
		InvoiceNumber: invoiceNumber(order),
		CustomerName:  unknownCustomer,
		OrderDate:     order.OrderDate,
		TotalAmount:   decimal.Zero,
	}

	if order.PartyID != nil {
		if customer, err := s.parties.FindByID(model.KindCustomer, *order.PartyID); err == nil {
			data.CustomerName = customer.Name
			data.CustomerAddress = customer.Address
		}
	}

	lines, err := s.orders.FindLines(model.KindSales, salesOrderID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	for _, line := range lines {
		name := unknownItem
		if item, err := s.items.FindByID(line.ItemID); err == nil {
			name = item.Name
		}
		total := line.LineTotal()
		data.Lines = append(data.Lines, InvoiceLine{
			ItemName:  name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			LineTotal: total,
		})
		data.TotalAmount = data.TotalAmount.Add(total)
	}
	return data, nil
}

// invoiceNumber derives a stable INV-YYYYMM-NNN number from the order; it is
// never stored, so assembly remains a pure read.
func invoiceNumber(order *model.Order) string {
	return fmt.Sprintf("INV-%s-%03d", order.OrderDate.Format("200601"), order.ID)
}
