package handler

import "github.com/gofiber/fiber/v2"

// Register mounts the full operation surface under /api/v1. Handlers are the
// only boundary the UI layer gets; nothing here touches the store directly.
func Register(app *fiber.App, inv *InventoryHandler, suppliers, customers *PartyHandler, purchase, sales *OrderHandler, reports *ReportHandler) {
	api := app.Group("/api/v1")

	api.Get("/categories", inv.GetCategories)
	api.Post("/categories", inv.CreateCategory)
	api.Put("/categories/:id", inv.UpdateCategory)
	api.Delete("/categories/:id", inv.DeleteCategory)

	api.Get("/items", inv.GetItems)
	api.Post("/items", inv.CreateItem)
	api.Get("/items/:id", inv.GetItem)
	api.Put("/items/:id", inv.UpdateItem)
	api.Delete("/items/:id", inv.DeleteItem)

	registerParty(api.Group("/suppliers"), suppliers)
	registerParty(api.Group("/customers"), customers)

	registerOrders(api.Group("/purchase-orders"), purchase)
	registerOrders(api.Group("/sales-orders"), sales)

	api.Get("/reports/low-stock", reports.GetLowStock)
	api.Get("/sales-orders/:id/invoice", reports.GetInvoice)
	api.Get("/sales-orders/:id/invoice/document", reports.GetInvoiceDocument)
}

func registerParty(g fiber.Router, h *PartyHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Get)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func registerOrders(g fiber.Router, h *OrderHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Get)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)

	g.Get("/:id/lines", h.GetLines)
	g.Post("/:id/lines", h.AddLine)
	g.Delete("/:id/lines/:lineID", h.RemoveLine)
}
