package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lockwoodcarter/agency-api/internal/ai"
	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/transfer"
)

type stubSettings struct {
	textPrompt string
}

func (s stubSettings) GetSettingsInfo(ctx context.Context, userID int64) (*models.PromptSettings, error) {
	return &models.PromptSettings{
		TextPrompt:  s.textPrompt,
		ImagePrompt: DefaultImagePrompt,
		VideoPrompt: DefaultVideoPrompt,
	}, nil
}

func (s stubSettings) UpdateSettings(ctx context.Context, userID int64, imagePrompt, videoPrompt, textPrompt string) error {
	return nil
}

func copyReq(prompt, platform, projectID string) *transfer.CopyRequest {
	return &transfer.CopyRequest{ProjectID: projectID, Platform: platform, Prompt: prompt}
}

func TestGenerateCopy(t *testing.T) {
	ctx := context.Background()
	gen := &ai.Mock{Copy: "Luxury living, redefined."}
	s := NewGenerationService(gen, newFakeProjectRepo(), stubSettings{textPrompt: DefaultTextPrompt}, nil)

	text, err := s.GenerateCopy(ctx, 7, copyReq("sea view penthouse", models.PlatformInstagram, "proj-1"))
	if err != nil {
		t.Fatalf("GenerateCopy() error: %v", err)
	}
	if text != "Luxury living, redefined." {
		t.Errorf("text = %q", text)
	}
	if gen.CopyCalls != 1 {
		t.Errorf("generator called %d times, want 1", gen.CopyCalls)
	}
}

func TestGenerateCopyValidation(t *testing.T) {
	ctx := context.Background()
	gen := &ai.Mock{Copy: "text"}
	s := NewGenerationService(gen, newFakeProjectRepo(), stubSettings{textPrompt: DefaultTextPrompt}, nil)

	if _, err := s.GenerateCopy(ctx, 7, copyReq("", models.PlatformInstagram, "proj-1")); !errors.Is(err, ErrValidation) {
		t.Errorf("empty prompt: error = %v, want ErrValidation", err)
	}
	if _, err := s.GenerateCopy(ctx, 7, copyReq("keywords", "myspace", "proj-1")); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown platform: error = %v, want ErrValidation", err)
	}
	if gen.CopyCalls != 0 {
		t.Errorf("generator ran %d times on invalid requests", gen.CopyCalls)
	}
}

func TestGenerateCopyPropagatesGeneratorError(t *testing.T) {
	ctx := context.Background()
	gen := &ai.Mock{Err: ai.ErrGeneration}
	s := NewGenerationService(gen, newFakeProjectRepo(), stubSettings{textPrompt: DefaultTextPrompt}, nil)

	_, err := s.GenerateCopy(ctx, 7, copyReq("keywords", models.PlatformFacebook, ""))
	if !errors.Is(err, ai.ErrGeneration) {
		t.Fatalf("error = %v, want ErrGeneration", err)
	}
}
