package transfer

// PostDraft is the creation wizard's submission payload. AssetID selects a
// library asset for image/video posts; ImageURL/VideoURL carry an already
// uploaded or generated asset directly. Status must be draft or
// pending_approval.
type PostDraft struct {
	ProjectID     string `json:"project_id"`
	Platform      string `json:"platform"`
	PostType      string `json:"post_type"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date"`
	PostText      string `json:"post_text"`
	AssetID       string `json:"asset_id"`
	ImageURL      string `json:"image_url"`
	VideoURL      string `json:"video_url"`
}

// PostPatch is the wizard's edit payload for an existing post.
type PostPatch struct {
	ID            string `json:"id"`
	Platform      string `json:"platform"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date"`
	PostText      string `json:"post_text"`
	AssetID       string `json:"asset_id"`
	ImageURL      string `json:"image_url"`
	VideoURL      string `json:"video_url"`
}

type ApprovalRequest struct {
	PostID string `json:"post_id"`
}

type CopyRequest struct {
	ProjectID string `json:"project_id"`
	Platform  string `json:"platform"`
	Prompt    string `json:"prompt"`
}

type ImageRequest struct {
	AssetID     string `json:"asset_id"`
	Instruction string `json:"instruction"`
}

type VideoRequest struct {
	PostID string `json:"post_id"`
	Prompt string `json:"prompt"`
}

type SettingsUpdate struct {
	ImagePrompt string `json:"image_prompt"`
	VideoPrompt string `json:"video_prompt"`
	TextPrompt  string `json:"text_prompt"`
}
