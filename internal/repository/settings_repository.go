package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
)

type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.PromptSettings, bool, error)
	Create(ctx context.Context, settings *models.PromptSettings) (int64, error)
	Update(ctx context.Context, settings *models.PromptSettings, userID int64) error
}

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID int64) (*models.PromptSettings, bool, error) {
	query := `
		SELECT id, user_id, image_prompt, video_prompt, text_prompt, created_at, updated_at
		FROM prompt_settings
		WHERE user_id = $1
	`

	var settings models.PromptSettings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&settings.ID, &settings.UserID,
		&settings.ImagePrompt, &settings.VideoPrompt, &settings.TextPrompt,
		&settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &settings, true, nil
}

func (r *settingsRepository) Create(ctx context.Context, settings *models.PromptSettings) (int64, error) {
	query := `
		INSERT INTO prompt_settings (user_id, image_prompt, video_prompt, text_prompt)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, settings.UserID, settings.ImagePrompt,
		settings.VideoPrompt, settings.TextPrompt).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.PromptSettings, userID int64) error {
	query := `
		UPDATE prompt_settings
		SET image_prompt = $1,
			video_prompt = $2,
			text_prompt = $3,
			updated_at = $4
		WHERE user_id = $5
	`
	_, err := r.db.ExecContext(ctx, query, settings.ImagePrompt, settings.VideoPrompt,
		settings.TextPrompt, time.Now(), userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
