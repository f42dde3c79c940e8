package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lockwoodcarter/agency-api/internal/service"
	"github.com/lockwoodcarter/agency-api/internal/transfer"
)

type SettingsHandler struct {
	s service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{s: service}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	userId := GetUserID(c)

	settings, err := h.s.GetSettingsInfo(c.Context(), userId)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	userId := GetUserID(c)

	req := new(transfer.SettingsUpdate)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	err := h.s.UpdateSettings(c.Context(), userId, req.ImagePrompt, req.VideoPrompt, req.TextPrompt)
	if err != nil {
		return fail(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
