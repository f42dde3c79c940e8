package service

import (
	"context"
	"fmt"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, error)
	Create(ctx context.Context, name, developer string) (*models.Project, error)
	Assets(ctx context.Context, projectID string) ([]*models.ProjectAsset, error)
}

type projectService struct {
	pj repository.ProjectRepository
}

func NewProjectService(pj repository.ProjectRepository) ProjectService {
	return &projectService{pj: pj}
}

func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.pj.List(ctx)
}

func (s *projectService) Create(ctx context.Context, name, developer string) (*models.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:        id,
		Name:      name,
		Developer: developer,
	}
	if err := s.pj.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}
	return project, nil
}

func (s *projectService) Assets(ctx context.Context, projectID string) ([]*models.ProjectAsset, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", ErrValidation)
	}

	project, err := s.pj.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, repository.ErrNotFound
	}
	return s.pj.ListAssets(ctx, projectID)
}
