package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
)

type fakeHistoryRepo struct {
	rows []*models.PublishHistory
}

func (f *fakeHistoryRepo) Create(ctx context.Context, h *models.PublishHistory) (int64, error) {
	f.rows = append(f.rows, h)
	return int64(len(f.rows)), nil
}

func (f *fakeHistoryRepo) ListByPostID(ctx context.Context, postID string) ([]*models.PublishHistory, error) {
	var rows []*models.PublishHistory
	for _, h := range f.rows {
		if h.PostID == postID {
			rows = append(rows, h)
		}
	}
	return rows, nil
}

// flakyPostRepo fails Update for one post id until cleared.
type flakyPostRepo struct {
	*repository.MemoryPostRepository
	failID string
}

func (r *flakyPostRepo) Update(ctx context.Context, post *models.ContentPost) error {
	if post.ID == r.failID {
		return errors.New("connection reset")
	}
	return r.MemoryPostRepository.Update(ctx, post)
}

func seed(t *testing.T, pr *repository.MemoryPostRepository, id, status string, scheduled time.Time) {
	t.Helper()
	err := pr.Create(context.Background(), &models.ContentPost{
		ID:            id,
		ProjectID:     "proj-1",
		Platform:      models.PlatformFacebook,
		PostType:      models.PostTypeText,
		Status:        status,
		ScheduledDate: scheduled,
		CreatedBy:     7,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSweepPublishesDuePosts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)

	pr := repository.NewMemoryPostRepository()
	history := &fakeHistoryRepo{}
	seed(t, pr, "due", models.PostStatusApproved, now.Add(-time.Hour))
	seed(t, pr, "exact", models.PostStatusApproved, now)
	seed(t, pr, "future", models.PostStatusApproved, now.Add(time.Hour))
	seed(t, pr, "pending", models.PostStatusPendingApproval, now.Add(-time.Hour))
	seed(t, pr, "draft", models.PostStatusDraft, now.Add(-time.Hour))

	job := NewAutoPublishJob(pr, history)
	published := job.Sweep(ctx, now)

	if published != 2 {
		t.Errorf("Sweep() published %d posts, want 2", published)
	}

	wantStatus := map[string]string{
		"due":     models.PostStatusPublished,
		"exact":   models.PostStatusPublished,
		"future":  models.PostStatusApproved,
		"pending": models.PostStatusPendingApproval,
		"draft":   models.PostStatusDraft,
	}
	for id, want := range wantStatus {
		post, _ := pr.GetByID(ctx, id)
		if post.Status != want {
			t.Errorf("post %s is %s, want %s", id, post.Status, want)
		}
	}

	if len(history.rows) != 2 {
		t.Errorf("recorded %d history rows, want 2", len(history.rows))
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)

	pr := repository.NewMemoryPostRepository()
	history := &fakeHistoryRepo{}
	seed(t, pr, "due", models.PostStatusApproved, now.Add(-time.Hour))

	job := NewAutoPublishJob(pr, history)

	if got := job.Sweep(ctx, now); got != 1 {
		t.Fatalf("first sweep published %d, want 1", got)
	}
	// The post is published now, so a second tick finds nothing to do.
	if got := job.Sweep(ctx, now.Add(time.Minute)); got != 0 {
		t.Errorf("second sweep published %d, want 0", got)
	}
	if len(history.rows) != 1 {
		t.Errorf("recorded %d history rows after two sweeps, want 1", len(history.rows))
	}
}

func TestSweepRetriesFailedUpdateNextTick(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)

	mem := repository.NewMemoryPostRepository()
	pr := &flakyPostRepo{MemoryPostRepository: mem, failID: "due"}
	history := &fakeHistoryRepo{}
	seed(t, mem, "due", models.PostStatusApproved, now.Add(-time.Hour))
	seed(t, mem, "other", models.PostStatusApproved, now.Add(-time.Hour))

	job := NewAutoPublishJob(pr, history)

	// The failing post doesn't abort the sweep; the other one still publishes.
	if got := job.Sweep(ctx, now); got != 1 {
		t.Fatalf("sweep with one failing post published %d, want 1", got)
	}
	post, _ := mem.GetByID(ctx, "due")
	if post.Status != models.PostStatusApproved {
		t.Fatalf("failed post is %s in the store, want approved", post.Status)
	}

	// Failure is recorded with an error message.
	rows, _ := history.ListByPostID(ctx, "due")
	if len(rows) != 1 || rows[0].ErrorMessage == "" {
		t.Errorf("expected one failure row with an error message, got %+v", rows)
	}

	// Next tick the store recovered and the post goes out.
	pr.failID = ""
	if got := job.Sweep(ctx, now.Add(time.Minute)); got != 1 {
		t.Errorf("recovery sweep published %d, want 1", got)
	}
	post, _ = mem.GetByID(ctx, "due")
	if post.Status != models.PostStatusPublished {
		t.Errorf("post is %s after recovery, want published", post.Status)
	}
}
