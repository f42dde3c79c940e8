package queue

import (
	"github.com/lockwoodcarter/agency-api/internal/ai"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	"github.com/lockwoodcarter/agency-api/internal/service"
)

type Queue struct {
	pr  repository.PostRepository
	ss  service.SettingsService
	gen ai.ContentGenerator
}

func NewQueue(
	pr repository.PostRepository,
	ss service.SettingsService,
	gen ai.ContentGenerator) *Queue {
	return &Queue{
		pr:  pr,
		ss:  ss,
		gen: gen,
	}
}

const TaskTypeGenerateVideo = "generate:video"

type GenerateVideoPayload struct {
	PostID string `json:"post_id"`
	Prompt string `json:"prompt"`
}
