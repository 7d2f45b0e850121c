package handler

import (
	"bytes"
	"strconv"

	"stocktrack/internal/invoice"
	"stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GetLowStock(c *fiber.Ctx) error {
	threshold := service.DefaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "threshold must be an integer"})
		}
		threshold = parsed
	}
	entries, err := h.service.LowStockReport(threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entries)
}

func (h *ReportHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	data, err := h.service.AssembleInvoice(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(data)
}

// GetInvoiceDocument returns the rendered fixed-layout document instead of
// the raw invoice data.
func (h *ReportHandler) GetInvoiceDocument(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	data, err := h.service.AssembleInvoice(id)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := invoice.Render(&buf, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render invoice"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(buf.String())
}
