package service

import (
	"context"
	"fmt"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
)

// Built-in master prompts, used whenever a user has not customised their own.
const (
	DefaultTextPrompt = `You are an expert real estate marketing copywriter. Write the post body only, in the voice of a luxury agency.`

	DefaultImagePrompt = `You are an expert real estate marketing content designer.
Create a promotional image for a real estate campaign, optimized for social media.
Use a premium aesthetic: elegant lighting, realistic architecture, professional layout.
Display the developer name, project name, key selling points and a clear call-to-action.
Format: square (1:1), high resolution, clear text hierarchy.`

	DefaultVideoPrompt = `You are a professional real estate video director creating a high-conversion marketing video.
Produce a 30-60 second promotional clip: cinematic intro with project name and location,
amenity and lifestyle footage, a property walkthrough with unit details overlaid,
floor plan and payment summary, and a strong call-to-action outro.
Aspect ratio 9:16, premium tone, modern transitions.`
)

type SettingsService interface {
	GetSettingsInfo(ctx context.Context, userID int64) (*models.PromptSettings, error)
	UpdateSettings(ctx context.Context, userID int64, imagePrompt, videoPrompt, textPrompt string) error
}

type settingsService struct {
	sr repository.SettingsRepository
}

func NewSettingsService(sr repository.SettingsRepository) SettingsService {
	return &settingsService{sr: sr}
}

// GetSettingsInfo returns the user's prompt templates with defaults filled in
// for anything left blank. Users without a settings row get pure defaults.
func (s *settingsService) GetSettingsInfo(ctx context.Context, userID int64) (*models.PromptSettings, error) {
	settings, exists, err := s.sr.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting prompt settings: %w", err)
	}
	if !exists {
		settings = &models.PromptSettings{UserID: userID}
	}
	if settings.TextPrompt == "" {
		settings.TextPrompt = DefaultTextPrompt
	}
	if settings.ImagePrompt == "" {
		settings.ImagePrompt = DefaultImagePrompt
	}
	if settings.VideoPrompt == "" {
		settings.VideoPrompt = DefaultVideoPrompt
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID int64, imagePrompt, videoPrompt, textPrompt string) error {
	settings := &models.PromptSettings{
		UserID:      userID,
		ImagePrompt: imagePrompt,
		VideoPrompt: videoPrompt,
		TextPrompt:  textPrompt,
	}

	_, exists, err := s.sr.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		_, err = s.sr.Create(ctx, settings)
		return err
	}
	return s.sr.Update(ctx, settings, userID)
}
