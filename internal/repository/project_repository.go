package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lockwoodcarter/agency-api/internal/models"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	ListAssets(ctx context.Context, projectID string) ([]*models.ProjectAsset, error)
	GetAssetByID(ctx context.Context, id string) (*models.ProjectAsset, error)
	CreateAsset(ctx context.Context, asset *models.ProjectAsset) error
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT id, name, developer, created_at, updated_at FROM projects ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Developer, &p.CreatedAt, &p.UpdatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT id, name, developer, created_at, updated_at FROM projects WHERE id = $1`

	var p models.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Developer, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `INSERT INTO projects (id, name, developer) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, project.ID, project.Name, project.Developer)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *projectRepository) ListAssets(ctx context.Context, projectID string) ([]*models.ProjectAsset, error) {
	query := `
		SELECT id, project_id, name, asset_type, file_url, content, created_at
		FROM project_assets
		WHERE project_id = $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var assets []*models.ProjectAsset
	for rows.Next() {
		var a models.ProjectAsset
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Name, &a.AssetType, &a.FileURL, &a.Content, &a.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		assets = append(assets, &a)
	}
	return assets, rows.Err()
}

func (r *projectRepository) GetAssetByID(ctx context.Context, id string) (*models.ProjectAsset, error) {
	query := `
		SELECT id, project_id, name, asset_type, file_url, content, created_at
		FROM project_assets
		WHERE id = $1
	`

	var a models.ProjectAsset
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.ProjectID, &a.Name, &a.AssetType, &a.FileURL, &a.Content, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &a, nil
}

func (r *projectRepository) CreateAsset(ctx context.Context, asset *models.ProjectAsset) error {
	query := `
		INSERT INTO project_assets (id, project_id, name, asset_type, file_url, content)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, asset.ID, asset.ProjectID, asset.Name, asset.AssetType, asset.FileURL, asset.Content)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
