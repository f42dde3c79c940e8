package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"github.com/lockwoodcarter/agency-api/internal/models"
)

func (q *Queue) HandleGenerateVideoTask(ctx context.Context, task *asynq.Task) error {
	var payload GenerateVideoPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}
	return q.GenerateVideo(ctx, payload)
}

// GenerateVideo renders the clip and patches the post's video URL. The result
// is dropped if the post has been published in the meantime; a render for a
// post that no longer accepts edits is stale, not an error worth retrying.
func (q *Queue) GenerateVideo(ctx context.Context, payload GenerateVideoPayload) error {
	post, err := q.pr.GetByID(ctx, payload.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		log.Printf("Post %s no longer exists, dropping video task", payload.PostID)
		return nil
	}
	if post.PostType != models.PostTypeVideo {
		log.Printf("Post %s is not a video post, dropping video task", payload.PostID)
		return nil
	}
	if !post.IsEditable() {
		log.Printf("Post %s already published, dropping stale video render", payload.PostID)
		return nil
	}

	prompt := payload.Prompt
	if settings, err := q.ss.GetSettingsInfo(ctx, post.CreatedBy); err == nil {
		prompt = settings.VideoPrompt + "\n" + prompt
	}
	if post.PostText != "" {
		prompt += "\nPost copy:\n" + post.PostText
	}

	videoURL, err := q.gen.GenerateVideo(ctx, prompt, post.VideoURL)
	if err != nil {
		log.Printf("Error generating video for post %s: %v", post.ID, err)
		return err
	}

	// Re-read before writing: the post may have moved on while rendering.
	post, err = q.pr.GetByID(ctx, payload.PostID)
	if err != nil {
		return err
	}
	if post == nil || !post.IsEditable() {
		log.Printf("Post %s changed during render, dropping result", payload.PostID)
		return nil
	}

	post.VideoURL = videoURL
	if err := q.pr.Update(ctx, post); err != nil {
		log.Printf("Error saving video URL for post %s: %v", post.ID, err)
		return err
	}
	return nil
}
