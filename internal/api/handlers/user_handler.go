package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lockwoodcarter/agency-api/internal/service"
)

type UserHandler struct {
	s service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{s: service}
}

func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	userId := GetUserID(c)

	userInfo, err := h.s.GetUserInfo(c.Context(), userId)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(userInfo)
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	callerRole := GetUserRole(c)

	req := struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.s.SetRole(c.Context(), callerRole, req.UserID, req.Role); err != nil {
		return fail(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
