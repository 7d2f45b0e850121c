package handler

import (
	"stocktrack/internal/model"
	"stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in service.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	id, err := h.service.CreateItem(&in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Item created", "id": id})
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var in service.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateItem(id, &in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated"})
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteItem(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	item, err := h.service.GetItem(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *InventoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	id, err := h.service.CreateCategory(&category)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Category created", "id": id})
}

func (h *InventoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.UpdateCategory(id, &category); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated"})
}

func (h *InventoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func (h *InventoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(categories)
}
