package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/ai"
	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	"github.com/lockwoodcarter/agency-api/internal/transfer"
)

// GenerationService orchestrates the generator calls for the wizard: copy
// generation grounded in the project factsheet, and image enhancement which
// stores its result back into the project library. Video generation is not
// here; it runs through the task queue because renders take minutes.
type GenerationService interface {
	GenerateCopy(ctx context.Context, userID int64, req *transfer.CopyRequest) (string, error)
	EnhanceImage(ctx context.Context, req *transfer.ImageRequest) (*models.ProjectAsset, error)
}

type generationService struct {
	gen    ai.ContentGenerator
	pj     repository.ProjectRepository
	ss     SettingsService
	assets *AssetService
	client *http.Client
}

func NewGenerationService(gen ai.ContentGenerator, pj repository.ProjectRepository, ss SettingsService, assets *AssetService) GenerationService {
	return &generationService{
		gen:    gen,
		pj:     pj,
		ss:     ss,
		assets: assets,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *generationService) GenerateCopy(ctx context.Context, userID int64, req *transfer.CopyRequest) (string, error) {
	if req.Prompt == "" {
		return "", fmt.Errorf("%w: keywords are required to generate copy", ErrValidation)
	}
	if !models.IsValidPlatform(req.Platform) {
		return "", fmt.Errorf("%w: unknown platform %q", ErrValidation, req.Platform)
	}

	factsheet := ""
	if req.ProjectID != "" {
		assets, err := s.pj.ListAssets(ctx, req.ProjectID)
		if err != nil {
			return "", err
		}
		for _, asset := range assets {
			if asset.AssetType == models.AssetTypeFactsheet {
				factsheet = asset.Content
				break
			}
		}
	}

	prompt := req.Prompt
	if settings, err := s.ss.GetSettingsInfo(ctx, userID); err == nil && settings.TextPrompt != DefaultTextPrompt {
		prompt = settings.TextPrompt + "\n" + prompt
	}

	text, err := s.gen.GenerateCopy(ctx, prompt, req.Platform, factsheet)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return text, nil
}

// EnhanceImage downloads the source asset, runs the enhancement instruction
// through the generator, and saves the result as a new asset next to the
// original. The source asset is left untouched.
func (s *generationService) EnhanceImage(ctx context.Context, req *transfer.ImageRequest) (*models.ProjectAsset, error) {
	if req.AssetID == "" {
		return nil, fmt.Errorf("%w: a source image is required", ErrValidation)
	}
	if req.Instruction == "" {
		return nil, fmt.Errorf("%w: an enhancement instruction is required", ErrValidation)
	}

	asset, err := s.pj.GetAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset %q does not exist", ErrValidation, req.AssetID)
	}
	if asset.AssetType != models.AssetTypeImage {
		return nil, fmt.Errorf("%w: only image assets can be enhanced", ErrValidation)
	}

	source, mimeType, err := s.download(ctx, asset.FileURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch source image: %v", ai.ErrGeneration, err)
	}

	enhanced, contentType, err := s.gen.EnhanceImage(ctx, source, mimeType, req.Instruction)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s.assets.SaveGenerated(ctx, asset.ProjectID, "enhanced-"+asset.Name, models.AssetTypeImage, enhanced, contentType)
}

func (s *generationService) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return body, mimeType, nil
}
