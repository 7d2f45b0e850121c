package handler

import (
	"time"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"
	"stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// OrderHandler serves one order family; instantiated once for purchase
// orders and once for sales orders.
type OrderHandler struct {
	service service.OrderService
	kind    model.OrderKind
}

func NewOrderHandler(s service.OrderService, kind model.OrderKind) *OrderHandler {
	return &OrderHandler{service: s, kind: kind}
}

type orderRequest struct {
	PartyID   *uint  `json:"party_id"`
	OrderDate string `json:"order_date"`
	Status    string `json:"status"`
}

func (r *orderRequest) toInput() (*service.OrderInput, error) {
	date, err := time.Parse(dateLayout, r.OrderDate)
	if err != nil {
		return nil, apperr.Validation("order_date", "must be formatted as "+dateLayout)
	}
	return &service.OrderInput{
		PartyID:   r.PartyID,
		OrderDate: date,
		Status:    r.Status,
	}, nil
}

type lineRequest struct {
	ItemID   uint            `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	in, err := req.toInput()
	if err != nil {
		return writeError(c, err)
	}
	id, err := h.service.CreateOrder(h.kind, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order created", "id": id})
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	in, err := req.toInput()
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.UpdateOrder(h.kind, id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order updated"})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteOrder(h.kind, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	order, err := h.service.GetOrder(h.kind, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(h.kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) AddLine(c *fiber.Ctx) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req lineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	id, err := h.service.AddLine(h.kind, orderID, &service.LineInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Line added", "id": id})
}

func (h *OrderHandler) RemoveLine(c *fiber.Ctx) error {
	lineID, err := parseID(c, "lineID")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.RemoveLine(h.kind, lineID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Line removed"})
}

func (h *OrderHandler) GetLines(c *fiber.Ctx) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	lines, err := h.service.ListLines(h.kind, orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(lines)
}
