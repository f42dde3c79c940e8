package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
)

// AutoPublishJob is the periodic sweep that moves approved posts whose
// scheduled moment has passed into published. It runs on a fixed interval;
// there is no event-driven trigger. A failed update is logged and the post is
// retried on the next tick, which is safe because the status guard makes the
// transition idempotent.
type AutoPublishJob struct {
	pr repository.PostRepository
	ph repository.PublishHistoryRepository
}

func NewAutoPublishJob(pr repository.PostRepository, ph repository.PublishHistoryRepository) *AutoPublishJob {
	return &AutoPublishJob{pr: pr, ph: ph}
}

// Run is the cron entry point.
func (j *AutoPublishJob) Run() {
	j.Sweep(context.Background(), time.Now())
}

// Sweep publishes every approved post scheduled at or before now and returns
// how many were published. Posts scheduled in the future and posts in any
// other status are untouched; one failing post never aborts the rest.
func (j *AutoPublishJob) Sweep(ctx context.Context, now time.Time) int {
	posts, err := j.pr.ListByStatus(ctx, models.PostStatusApproved)
	if err != nil {
		slog.Info(err.Error())
		return 0
	}

	published := 0
	for _, post := range posts {
		if post.ScheduledDate.After(now) {
			continue
		}

		post.Status = models.PostStatusPublished
		if err := j.pr.Update(ctx, post); err != nil {
			slog.Info(err.Error())
			j.record(ctx, post, err.Error())
			continue
		}

		j.record(ctx, post, "")
		published++
	}
	return published
}

func (j *AutoPublishJob) record(ctx context.Context, post *models.ContentPost, errMsg string) {
	history := &models.PublishHistory{
		PostID:       post.ID,
		Platform:     post.Platform,
		ErrorMessage: errMsg,
	}
	if _, err := j.ph.Create(ctx, history); err != nil {
		slog.Info("error saving publish history for post " + post.ID + ": " + err.Error())
	}
}
