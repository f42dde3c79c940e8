package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
)

// PostRepository is the persistence capability for content posts. There is no
// remove operation: posts are never hard-deleted, they only move forward
// through their lifecycle.
type PostRepository interface {
	List(ctx context.Context) ([]*models.ContentPost, error)
	ListByProject(ctx context.Context, projectID string) ([]*models.ContentPost, error)
	ListByStatus(ctx context.Context, status string) ([]*models.ContentPost, error)
	GetByID(ctx context.Context, id string) (*models.ContentPost, error)
	Create(ctx context.Context, post *models.ContentPost) error
	Update(ctx context.Context, post *models.ContentPost) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, project_id, platform, post_type, status, scheduled_date,
	created_by, approved_by, post_text, image_url, video_url, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (*models.ContentPost, error) {
	var post models.ContentPost
	err := row.Scan(&post.ID, &post.ProjectID, &post.Platform, &post.PostType,
		&post.Status, &post.ScheduledDate, &post.CreatedBy, &post.ApprovedBy,
		&post.PostText, &post.ImageURL, &post.VideoURL, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.ContentPost) error {
	query := `
		INSERT INTO content_posts (id, project_id, platform, post_type, status,
			scheduled_date, created_by, approved_by, post_text, image_url, video_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query, post.ID, post.ProjectID, post.Platform,
		post.PostType, post.Status, post.ScheduledDate, post.CreatedBy,
		post.ApprovedBy, post.PostText, post.ImageURL, post.VideoURL)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.ContentPost, error) {
	query := `SELECT ` + postColumns + ` FROM content_posts WHERE id = $1`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.ContentPost, error) {
	query := `SELECT ` + postColumns + ` FROM content_posts ORDER BY scheduled_date`
	return r.queryPosts(ctx, query)
}

func (r *postRepository) ListByProject(ctx context.Context, projectID string) ([]*models.ContentPost, error) {
	query := `SELECT ` + postColumns + ` FROM content_posts WHERE project_id = $1 ORDER BY scheduled_date`
	return r.queryPosts(ctx, query, projectID)
}

func (r *postRepository) ListByStatus(ctx context.Context, status string) ([]*models.ContentPost, error) {
	query := `SELECT ` + postColumns + ` FROM content_posts WHERE status = $1 ORDER BY scheduled_date`
	return r.queryPosts(ctx, query, status)
}

func (r *postRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*models.ContentPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ContentPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update replaces every mutable field of the row. The store has no partial
// update primitive, so writes are whole-record snapshots.
func (r *postRepository) Update(ctx context.Context, post *models.ContentPost) error {
	query := `
		UPDATE content_posts
		SET platform = $1,
			post_type = $2,
			status = $3,
			scheduled_date = $4,
			approved_by = $5,
			post_text = $6,
			image_url = $7,
			video_url = $8,
			updated_at = $9
		WHERE id = $10
	`
	res, err := r.db.ExecContext(ctx, query, post.Platform, post.PostType,
		post.Status, post.ScheduledDate, post.ApprovedBy, post.PostText,
		post.ImageURL, post.VideoURL, time.Now(), post.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
