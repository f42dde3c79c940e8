package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	cfg "github.com/lockwoodcarter/agency-api/configs"
	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService imports a project's marketing assets from a shared Google
// Drive folder into the library. This runs server-side; the client never
// touches Drive credentials.
type DriveService interface {
	ImportAssets(ctx context.Context, projectID, folderID string) (int, error)
}

type driveService struct {
	cfg cfg.Config
	pj  repository.ProjectRepository
}

func NewDriveService(cfg cfg.Config, pj repository.ProjectRepository) DriveService {
	return &driveService{cfg: cfg, pj: pj}
}

func (s *driveService) ImportAssets(ctx context.Context, projectID, folderID string) (int, error) {
	if folderID == "" {
		folderID = s.cfg.DriveFolderID
	}
	if folderID == "" {
		return 0, fmt.Errorf("%w: drive folder id is required", ErrValidation)
	}

	project, err := s.pj.GetByID(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if project == nil {
		return 0, fmt.Errorf("%w: project %q does not exist", ErrValidation, projectID)
	}

	srv, err := drive.NewService(ctx, option.WithAPIKey(s.cfg.DriveAPIKey))
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	imported := 0
	pageToken := ""
	for {
		call := srv.Files.List().Q(query).Fields("nextPageToken, files(id, name, mimeType)").PageSize(100)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		list, err := call.Context(ctx).Do()
		if err != nil {
			slog.Info(err.Error())
			return imported, err
		}

		for _, f := range list.Files {
			assetType := classifyMimeType(f.MimeType)
			if assetType == "" {
				continue
			}
			asset := &models.ProjectAsset{
				ID:        f.Id,
				ProjectID: projectID,
				Name:      f.Name,
				AssetType: assetType,
				FileURL:   fmt.Sprintf("https://drive.google.com/uc?id=%s", f.Id),
			}
			if err := s.pj.CreateAsset(ctx, asset); err != nil {
				slog.Info(fmt.Sprintf("skipping drive file %s: %v", f.Id, err))
				continue
			}
			imported++
		}

		pageToken = list.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return imported, nil
}

func classifyMimeType(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.AssetTypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return models.AssetTypeVideo
	case mimeType == "application/pdf":
		return models.AssetTypeBrochure
	case strings.HasPrefix(mimeType, "text/"):
		return models.AssetTypeFactsheet
	default:
		return ""
	}
}
