package queue

import (
	"context"
	"testing"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/ai"
	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	"github.com/lockwoodcarter/agency-api/internal/service"
)

type fakeSettings struct{}

func (fakeSettings) GetSettingsInfo(ctx context.Context, userID int64) (*models.PromptSettings, error) {
	return &models.PromptSettings{VideoPrompt: "Cinematic real estate footage."}, nil
}

func (fakeSettings) UpdateSettings(ctx context.Context, userID int64, imagePrompt, videoPrompt, textPrompt string) error {
	return nil
}

var _ service.SettingsService = fakeSettings{}

func seedVideoPost(t *testing.T, pr *repository.MemoryPostRepository, id, status string) {
	t.Helper()
	err := pr.Create(context.Background(), &models.ContentPost{
		ID:            id,
		ProjectID:     "proj-1",
		Platform:      models.PlatformYouTube,
		PostType:      models.PostTypeVideo,
		Status:        status,
		ScheduledDate: time.Date(2026, time.September, 3, 10, 0, 0, 0, time.Local),
		CreatedBy:     7,
		PostText:      "Tour the penthouse",
		VideoURL:      "https://cdn.example.com/source.mp4",
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGenerateVideoPatchesPost(t *testing.T) {
	ctx := context.Background()
	pr := repository.NewMemoryPostRepository()
	gen := &ai.Mock{VideoURL: "https://cdn.example.com/render.mp4"}
	seedVideoPost(t, pr, "p1", models.PostStatusDraft)

	q := NewQueue(pr, fakeSettings{}, gen)
	if err := q.GenerateVideo(ctx, GenerateVideoPayload{PostID: "p1", Prompt: "sunset flyover"}); err != nil {
		t.Fatalf("GenerateVideo() error: %v", err)
	}

	post, _ := pr.GetByID(ctx, "p1")
	if post.VideoURL != "https://cdn.example.com/render.mp4" {
		t.Errorf("video URL = %q, want the rendered URL", post.VideoURL)
	}
	if gen.VideoCalls != 1 {
		t.Errorf("generator called %d times, want 1", gen.VideoCalls)
	}
}

func TestGenerateVideoDropsStaleWork(t *testing.T) {
	ctx := context.Background()

	t.Run("post deleted", func(t *testing.T) {
		pr := repository.NewMemoryPostRepository()
		gen := &ai.Mock{VideoURL: "https://cdn.example.com/render.mp4"}

		q := NewQueue(pr, fakeSettings{}, gen)
		if err := q.GenerateVideo(ctx, GenerateVideoPayload{PostID: "gone"}); err != nil {
			t.Fatalf("stale task should be dropped, not retried: %v", err)
		}
		if gen.VideoCalls != 0 {
			t.Error("generator should not run for a missing post")
		}
	})

	t.Run("post already published", func(t *testing.T) {
		pr := repository.NewMemoryPostRepository()
		gen := &ai.Mock{VideoURL: "https://cdn.example.com/render.mp4"}
		seedVideoPost(t, pr, "p1", models.PostStatusPublished)

		q := NewQueue(pr, fakeSettings{}, gen)
		if err := q.GenerateVideo(ctx, GenerateVideoPayload{PostID: "p1"}); err != nil {
			t.Fatalf("stale task should be dropped, not retried: %v", err)
		}

		post, _ := pr.GetByID(ctx, "p1")
		if post.VideoURL != "https://cdn.example.com/source.mp4" {
			t.Errorf("published post was patched: %q", post.VideoURL)
		}
	})

	t.Run("not a video post", func(t *testing.T) {
		pr := repository.NewMemoryPostRepository()
		gen := &ai.Mock{VideoURL: "https://cdn.example.com/render.mp4"}
		err := pr.Create(ctx, &models.ContentPost{
			ID:       "p1",
			PostType: models.PostTypeText,
			Status:   models.PostStatusDraft,
		})
		if err != nil {
			t.Fatal(err)
		}

		q := NewQueue(pr, fakeSettings{}, gen)
		if err := q.GenerateVideo(ctx, GenerateVideoPayload{PostID: "p1"}); err != nil {
			t.Fatalf("mismatched task should be dropped: %v", err)
		}
		if gen.VideoCalls != 0 {
			t.Error("generator should not run for a text post")
		}
	})
}

func TestGenerateVideoErrorIsRetryable(t *testing.T) {
	ctx := context.Background()
	pr := repository.NewMemoryPostRepository()
	gen := &ai.Mock{Err: ai.ErrGeneration}
	seedVideoPost(t, pr, "p1", models.PostStatusDraft)

	q := NewQueue(pr, fakeSettings{}, gen)
	if err := q.GenerateVideo(ctx, GenerateVideoPayload{PostID: "p1"}); err == nil {
		t.Fatal("generation failure should propagate so the task is retried")
	}

	post, _ := pr.GetByID(ctx, "p1")
	if post.VideoURL != "https://cdn.example.com/source.mp4" {
		t.Errorf("failed render should leave the post untouched, got %q", post.VideoURL)
	}
}
