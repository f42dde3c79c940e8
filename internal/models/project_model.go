package models

import "time"

// Project groups marketing assets for a single development (a campaign's
// source material). Posts reference projects but do not own them.
type Project struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Developer string    `db:"developer" json:"developer"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type ProjectAsset struct {
	ID        string    `db:"id" json:"id"`
	ProjectID string    `db:"project_id" json:"project_id"`
	Name      string    `db:"name" json:"name"`
	AssetType string    `db:"asset_type" json:"asset_type"`
	FileURL   string    `db:"file_url" json:"file_url"`
	Content   string    `db:"content" json:"content,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	AssetTypeImage     = "image"
	AssetTypeVideo     = "video"
	AssetTypeBrochure  = "brochure"
	AssetTypeFactsheet = "factsheet"
)
