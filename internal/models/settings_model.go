package models

import "time"

// PromptSettings holds a user's master prompt templates, one per post type.
// Empty fields fall back to the built-in defaults in the generation service.
type PromptSettings struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	ImagePrompt string    `db:"image_prompt" json:"image_prompt"`
	VideoPrompt string    `db:"video_prompt" json:"video_prompt"`
	TextPrompt  string    `db:"text_prompt" json:"text_prompt"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
