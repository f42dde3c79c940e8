package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/queue"
	"github.com/lockwoodcarter/agency-api/internal/service"
	"github.com/lockwoodcarter/agency-api/internal/transfer"
)

type GenerateHandler struct {
	gen         service.GenerationService
	posts       service.PostService
	asynqClient *asynq.Client
}

func NewGenerateHandler(gen service.GenerationService, posts service.PostService, asynqClient *asynq.Client) *GenerateHandler {
	return &GenerateHandler{gen: gen, posts: posts, asynqClient: asynqClient}
}

func (h *GenerateHandler) GenerateCopy(c *fiber.Ctx) error {
	userID := GetUserID(c)

	req := new(transfer.CopyRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	text, err := h.gen.GenerateCopy(c.Context(), userID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post_text": text,
	})
}

func (h *GenerateHandler) EnhanceImage(c *fiber.Ctx) error {
	req := new(transfer.ImageRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	asset, err := h.gen.EnhanceImage(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(asset)
}

// GenerateVideo only queues the render. Rendering takes minutes, so the
// worker handles it and writes the resulting URL back onto the post; the
// client polls the post until the video URL changes.
func (h *GenerateHandler) GenerateVideo(c *fiber.Ctx) error {
	req := new(transfer.VideoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post, err := h.posts.PostInfo(c.Context(), req.PostID)
	if err != nil {
		return fail(c, err)
	}
	if post.PostType != models.PostTypeVideo {
		return fail(c, fmt.Errorf("%w: post %s is not a video post", service.ErrValidation, post.ID))
	}
	if !post.IsEditable() {
		return fail(c, fmt.Errorf("%w: post %s is already published", service.ErrInvalidState, post.ID))
	}

	err = queue.EnqueueVideoGeneration(h.asynqClient, queue.GenerateVideoPayload{
		PostID: req.PostID,
		Prompt: req.Prompt,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue video generation",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Video generation queued",
		"post_id": req.PostID,
	})
}
