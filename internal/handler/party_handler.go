package handler

import (
	"stocktrack/internal/model"
	"stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PartyHandler serves one contact kind; it is instantiated once for
// suppliers and once for customers over the same service.
type PartyHandler struct {
	service service.PartyService
	kind    model.PartyKind
}

func NewPartyHandler(s service.PartyService, kind model.PartyKind) *PartyHandler {
	return &PartyHandler{service: s, kind: kind}
}

func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var party model.Party
	if err := c.BodyParser(&party); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	id, err := h.service.CreateParty(h.kind, &party)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Created", "id": id})
}

func (h *PartyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var party model.Party
	if err := c.BodyParser(&party); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.UpdateParty(h.kind, id, &party); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Updated"})
}

func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.service.DeleteParty(h.kind, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}

func (h *PartyHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	party, err := h.service.GetParty(h.kind, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(party)
}

func (h *PartyHandler) List(c *fiber.Ctx) error {
	parties, err := h.service.ListParties(h.kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(parties)
}
