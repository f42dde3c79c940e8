package models

import "time"

// PublishHistory records one auto-publish attempt for a post. A row with an
// empty error message means the sweep moved the post to published.
type PublishHistory struct {
	ID           int64     `db:"id" json:"id"`
	PostID       string    `db:"post_id" json:"post_id"`
	Platform     string    `db:"platform" json:"platform"`
	ErrorMessage string    `db:"error_message" json:"error_message"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
