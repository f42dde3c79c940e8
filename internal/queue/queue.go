package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

func EnqueueVideoGeneration(asynqClient *asynq.Client, payload GenerateVideoPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeGenerateVideo, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.MaxRetry(3))
	if err != nil {
		return err
	}

	log.Printf("Video generation queued: %+v", payload.PostID)
	return nil
}
