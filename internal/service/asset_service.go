package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var allowedExtensions = map[string]string{
	"jpg":  models.AssetTypeImage,
	"jpeg": models.AssetTypeImage,
	"png":  models.AssetTypeImage,
	"mp4":  models.AssetTypeVideo,
	"mov":  models.AssetTypeVideo,
}

// AssetService stores uploaded and generated asset files in R2 and registers
// them in the project library.
type AssetService struct {
	pj repository.ProjectRepository
	r2 *R2Service
}

func NewAssetService(pj repository.ProjectRepository, r2 *R2Service) *AssetService {
	return &AssetService{pj: pj, r2: r2}
}

// Upload sniffs the uploaded file's real type, rejects anything that is not
// an image or video, and stores it under the given project.
func (s *AssetService) Upload(ctx context.Context, projectID string, file *multipart.FileHeader) (*models.ProjectAsset, error) {
	project, err := s.pj.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %q does not exist", ErrValidation, projectID)
	}

	content, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer content.Close()

	fileBytes, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	kind, err := filetype.Match(fileBytes)
	if err != nil || kind == types.Unknown {
		return nil, fmt.Errorf("%w: unsupported file type", ErrValidation)
	}
	assetType, ok := allowedExtensions[kind.Extension]
	if !ok {
		return nil, fmt.Errorf("%w: file type %s is not allowed", ErrValidation, kind.Extension)
	}

	return s.save(ctx, projectID, file.Filename, assetType, fileBytes, kind.MIME.Value)
}

// SaveGenerated stores generator output (already validated bytes) in the
// library.
func (s *AssetService) SaveGenerated(ctx context.Context, projectID, name, assetType string, file []byte, contentType string) (*models.ProjectAsset, error) {
	return s.save(ctx, projectID, name, assetType, file, contentType)
}

func (s *AssetService) save(ctx context.Context, projectID, name, assetType string, file []byte, contentType string) (*models.ProjectAsset, error) {
	key, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	if err := s.r2.Upload(ctx, key, file, contentType); err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	asset := &models.ProjectAsset{
		ID:        key,
		ProjectID: projectID,
		Name:      name,
		AssetType: assetType,
		FileURL:   s.r2.PublicURL(key),
	}
	if err := s.pj.CreateAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("error saving asset: %w", err)
	}
	return asset, nil
}
