package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lockwoodcarter/agency-api/internal/service"
)

type ProjectHandler struct {
	projects service.ProjectService
	assets   *service.AssetService
	drive    service.DriveService
}

func NewProjectHandler(projects service.ProjectService, assets *service.AssetService, drive service.DriveService) *ProjectHandler {
	return &ProjectHandler{projects: projects, assets: assets, drive: drive}
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projects.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(projects)
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	req := struct {
		Name      string `json:"name"`
		Developer string `json:"developer"`
	}{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	project, err := h.projects.Create(c.Context(), req.Name, req.Developer)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) ListAssets(c *fiber.Ctx) error {
	assets, err := h.projects.Assets(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(assets)
}

func (h *ProjectHandler) UploadAsset(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	asset, err := h.assets.Upload(c.Context(), c.Params("id"), file)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(asset)
}

// ImportDriveAssets pulls every usable file out of a shared Drive folder and
// registers it in the project's asset library.
func (h *ProjectHandler) ImportDriveAssets(c *fiber.Ctx) error {
	req := struct {
		FolderID string `json:"folder_id"`
	}{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	count, err := h.drive.ImportAssets(c.Context(), c.Params("id"), req.FolderID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"imported": count,
	})
}
