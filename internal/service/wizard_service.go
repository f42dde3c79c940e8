package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	"github.com/lockwoodcarter/agency-api/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const scheduleLayout = "2006-01-02T15:04"

// WizardService is the server half of the content creation wizard: it
// validates an assembled draft and hands it to the store. Drafts that fail
// validation never reach the store.
type WizardService interface {
	Submit(ctx context.Context, userID int64, draft *transfer.PostDraft) (*models.ContentPost, error)
	Edit(ctx context.Context, userID int64, patch *transfer.PostPatch) (*models.ContentPost, error)
}

type wizardService struct {
	pr repository.PostRepository
	pj repository.ProjectRepository
}

func NewWizardService(pr repository.PostRepository, pj repository.ProjectRepository) WizardService {
	return &wizardService{pr: pr, pj: pj}
}

func (s *wizardService) Submit(ctx context.Context, userID int64, draft *transfer.PostDraft) (*models.ContentPost, error) {
	if draft == nil {
		return nil, fmt.Errorf("%w: draft is nil", ErrValidation)
	}
	if draft.PostType == "" {
		return nil, fmt.Errorf("%w: post type is required", ErrValidation)
	}
	if !models.IsValidPostType(draft.PostType) {
		return nil, fmt.Errorf("%w: unknown post type %q", ErrValidation, draft.PostType)
	}
	if !models.IsValidPlatform(draft.Platform) {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrValidation, draft.Platform)
	}
	if draft.Status != models.PostStatusDraft && draft.Status != models.PostStatusPendingApproval {
		return nil, fmt.Errorf("%w: a new post must be saved as draft or submitted for approval", ErrValidation)
	}

	scheduledDate, err := time.ParseInLocation(scheduleLayout, draft.ScheduledDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid scheduled date: %v", ErrValidation, err)
	}

	project, err := s.pj.GetByID(ctx, draft.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %q does not exist", ErrValidation, draft.ProjectID)
	}

	imageURL, videoURL, err := s.resolveMedia(ctx, draft.PostType, draft.AssetID, draft.ImageURL, draft.VideoURL)
	if err != nil {
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	post := &models.ContentPost{
		ID:            id,
		ProjectID:     draft.ProjectID,
		Platform:      draft.Platform,
		PostType:      draft.PostType,
		Status:        draft.Status,
		ScheduledDate: scheduledDate,
		CreatedBy:     userID,
		PostText:      draft.PostText,
		ImageURL:      imageURL,
		VideoURL:      videoURL,
	}

	if err := s.pr.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return s.pr.GetByID(ctx, id)
}

func (s *wizardService) Edit(ctx context.Context, userID int64, patch *transfer.PostPatch) (*models.ContentPost, error) {
	if patch == nil || patch.ID == "" {
		return nil, fmt.Errorf("%w: post id is required", ErrValidation)
	}

	post, err := s.pr.GetByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, repository.ErrNotFound
	}
	if !post.IsEditable() {
		return nil, fmt.Errorf("%w: published posts cannot be edited", ErrInvalidState)
	}

	if patch.Platform != "" {
		if !models.IsValidPlatform(patch.Platform) {
			return nil, fmt.Errorf("%w: unknown platform %q", ErrValidation, patch.Platform)
		}
		post.Platform = patch.Platform
	}
	if patch.ScheduledDate != "" {
		scheduledDate, err := time.ParseInLocation(scheduleLayout, patch.ScheduledDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid scheduled date: %v", ErrValidation, err)
		}
		post.ScheduledDate = scheduledDate
	}
	post.PostText = patch.PostText

	imageURL, videoURL, err := s.resolveMedia(ctx, post.PostType, patch.AssetID, patch.ImageURL, patch.VideoURL)
	if err != nil {
		return nil, err
	}
	post.ImageURL = imageURL
	post.VideoURL = videoURL

	if patch.Status != "" && patch.Status != post.Status {
		if patch.Status != models.PostStatusDraft && patch.Status != models.PostStatusPendingApproval {
			return nil, fmt.Errorf("%w: the wizard can only save drafts or submit for approval", ErrValidation)
		}
		switch {
		case models.CanTransition(post.Status, patch.Status):
			// draft resubmitted for approval
		case post.Status == models.PostStatusApproved && patch.Status == models.PostStatusPendingApproval:
			// edit after approval, handled below
		default:
			return nil, fmt.Errorf("%w: cannot move a %s post to %s", ErrInvalidState, post.Status, patch.Status)
		}
		post.Status = patch.Status
	}

	// An edit after approval invalidates the approval: the post goes back to
	// review and the approver reference is cleared.
	if post.Status == models.PostStatusApproved {
		post.Status = models.PostStatusPendingApproval
		post.ApprovedBy = 0
	}

	if err := s.pr.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.pr.GetByID(ctx, post.ID)
}

// resolveMedia enforces the media invariant: an image post carries exactly an
// image URL, a video post exactly a video URL, a text post neither. AssetID,
// when given, supplies the URL from the project library.
func (s *wizardService) resolveMedia(ctx context.Context, postType, assetID, imageURL, videoURL string) (string, string, error) {
	if assetID != "" {
		asset, err := s.pj.GetAssetByID(ctx, assetID)
		if err != nil {
			return "", "", err
		}
		if asset == nil {
			return "", "", fmt.Errorf("%w: asset %q does not exist", ErrValidation, assetID)
		}
		switch {
		case postType == models.PostTypeImage && asset.AssetType == models.AssetTypeImage:
			imageURL = asset.FileURL
		case postType == models.PostTypeVideo && asset.AssetType == models.AssetTypeVideo:
			videoURL = asset.FileURL
		default:
			return "", "", fmt.Errorf("%w: asset type %s does not match post type %s", ErrValidation, asset.AssetType, postType)
		}
	}

	switch postType {
	case models.PostTypeImage:
		if imageURL == "" {
			return "", "", fmt.Errorf("%w: an image post needs a selected or uploaded image", ErrValidation)
		}
		if videoURL != "" {
			return "", "", fmt.Errorf("%w: an image post cannot carry a video", ErrValidation)
		}
	case models.PostTypeVideo:
		if videoURL == "" {
			return "", "", fmt.Errorf("%w: a video post needs a selected asset or generated video", ErrValidation)
		}
		if imageURL != "" {
			return "", "", fmt.Errorf("%w: a video post cannot carry an image", ErrValidation)
		}
	case models.PostTypeText:
		if imageURL != "" || videoURL != "" {
			return "", "", fmt.Errorf("%w: a text post carries no media", ErrValidation)
		}
	}
	return imageURL, videoURL, nil
}
