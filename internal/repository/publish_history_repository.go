package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lockwoodcarter/agency-api/internal/models"
)

type PublishHistoryRepository interface {
	Create(ctx context.Context, history *models.PublishHistory) (int64, error)
	ListByPostID(ctx context.Context, postID string) ([]*models.PublishHistory, error)
}

type publishHistoryRepository struct {
	db *sql.DB
}

func NewPublishHistoryRepository(db *sql.DB) PublishHistoryRepository {
	return &publishHistoryRepository{db: db}
}

func (r *publishHistoryRepository) Create(ctx context.Context, history *models.PublishHistory) (int64, error) {
	query := `
		INSERT INTO publish_history (post_id, platform, error_message)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, history.PostID, history.Platform, history.ErrorMessage).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *publishHistoryRepository) ListByPostID(ctx context.Context, postID string) ([]*models.PublishHistory, error) {
	query := `
		SELECT id, post_id, platform, error_message, created_at
		FROM publish_history
		WHERE post_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var history []*models.PublishHistory
	for rows.Next() {
		var h models.PublishHistory
		if err := rows.Scan(&h.ID, &h.PostID, &h.Platform, &h.ErrorMessage, &h.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		history = append(history, &h)
	}
	return history, rows.Err()
}
