package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lockwoodcarter/agency-api/internal/service"
	"github.com/lockwoodcarter/agency-api/internal/transfer"
)

type PostHandler struct {
	posts  service.PostService
	wizard service.WizardService
}

func NewPostHandler(posts service.PostService, wizard service.WizardService) *PostHandler {
	return &PostHandler{posts: posts, wizard: wizard}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var draft transfer.PostDraft
	if err := c.BodyParser(&draft); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.wizard.Submit(c.Context(), userID, &draft)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var patch transfer.PostPatch
	if err := c.BodyParser(&patch); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.wizard.Edit(c.Context(), userID, &patch)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) ApprovePost(c *fiber.Ctx) error {
	userID := GetUserID(c)
	role := GetUserRole(c)

	var req transfer.ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.posts.Approve(c.Context(), req.PostID, userID, role)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	postID := c.Query("id")
	if postID != "" {
		post, err := h.posts.PostInfo(c.Context(), postID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}

	posts, err := h.posts.List(c.Context(), c.Query("project_id"))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}
