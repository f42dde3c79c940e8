package models

import "time"

type ContentPost struct {
	ID            string    `db:"id" json:"id"`
	ProjectID     string    `db:"project_id" json:"project_id"`
	Platform      string    `db:"platform" json:"platform"`
	PostType      string    `db:"post_type" json:"post_type"`
	Status        string    `db:"status" json:"status"`
	ScheduledDate time.Time `db:"scheduled_date" json:"scheduled_date"`
	CreatedBy     int64     `db:"created_by" json:"created_by"`
	ApprovedBy    int64     `db:"approved_by" json:"approved_by,omitempty"`
	PostText      string    `db:"post_text" json:"post_text"`
	ImageURL      string    `db:"image_url" json:"image_url,omitempty"`
	VideoURL      string    `db:"video_url" json:"video_url,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

const (
	PostStatusDraft           = "draft"
	PostStatusPendingApproval = "pending_approval"
	PostStatusApproved        = "approved"
	PostStatusPublished       = "published"
)

const (
	PostTypeImage = "image"
	PostTypeVideo = "video"
	PostTypeText  = "text"
)

const (
	PlatformFacebook  = "facebook"
	PlatformLinkedIn  = "linkedin"
	PlatformYouTube   = "youtube"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
)

// statusRank orders the lifecycle. Transitions may only move to a higher rank,
// so a published post can never fall back to draft.
var statusRank = map[string]int{
	PostStatusDraft:           0,
	PostStatusPendingApproval: 1,
	PostStatusApproved:        2,
	PostStatusPublished:       3,
}

var postTypes = map[string]struct{}{
	PostTypeImage: {},
	PostTypeVideo: {},
	PostTypeText:  {},
}

var platforms = map[string]struct{}{
	PlatformFacebook:  {},
	PlatformLinkedIn:  {},
	PlatformYouTube:   {},
	PlatformInstagram: {},
	PlatformTwitter:   {},
}

func IsValidStatus(status string) bool {
	_, ok := statusRank[status]
	return ok
}

func IsValidPostType(postType string) bool {
	_, ok := postTypes[postType]
	return ok
}

func IsValidPlatform(platform string) bool {
	_, ok := platforms[platform]
	return ok
}

// CanTransition reports whether a post may legally move from one status to the
// next. Only single forward steps are allowed; there is no way back and no way
// to skip approval. Publishing happens only through the auto-publish sweep.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank == fromRank+1
}

// IsEditable reports whether the post's content fields may still be changed.
// Published posts are immutable.
func (p *ContentPost) IsEditable() bool {
	return p.Status != PostStatusPublished
}
