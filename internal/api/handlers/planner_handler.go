package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lockwoodcarter/agency-api/internal/planner"
	"github.com/lockwoodcarter/agency-api/internal/service"
)

type PlannerHandler struct {
	s service.PlannerService
}

func NewPlannerHandler(service service.PlannerService) *PlannerHandler {
	return &PlannerHandler{s: service}
}

// Window serves the planner grid. mode=rolling gives the 28-day view from
// today; mode=month gives the padded month containing ref (default: today).
// Month navigation is plain ref arithmetic on the client: the endpoints for
// next and previous month are the same call with a shifted ref.
func (h *PlannerHandler) Window(c *fiber.Ctx) error {
	role := GetUserRole(c)

	mode := planner.Mode(c.Query("mode", string(planner.ModeRolling)))

	ref := time.Now()
	if refParam := c.Query("ref"); refParam != "" {
		parsed, err := time.ParseInLocation("2006-01-02", refParam, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid ref date, expected YYYY-MM-DD",
			})
		}
		ref = parsed
	}

	days, err := h.s.Window(c.Context(), mode, ref, c.Query("project_id"), role)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mode": mode,
		"days": days,
	})
}
