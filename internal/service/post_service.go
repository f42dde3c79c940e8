package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
)

type PostService interface {
	List(ctx context.Context, projectID string) ([]*models.ContentPost, error)
	PostInfo(ctx context.Context, postID string) (*models.ContentPost, error)
	Approve(ctx context.Context, postID string, approverID int64, role string) (*models.ContentPost, error)
}

type postService struct {
	pr repository.PostRepository
}

func NewPostService(pr repository.PostRepository) PostService {
	return &postService{pr: pr}
}

func (s *postService) List(ctx context.Context, projectID string) ([]*models.ContentPost, error) {
	if projectID != "" {
		return s.pr.ListByProject(ctx, projectID)
	}
	return s.pr.List(ctx)
}

func (s *postService) PostInfo(ctx context.Context, postID string) (*models.ContentPost, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post id is required", ErrValidation)
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, repository.ErrNotFound
	}
	return post, nil
}

// Approve moves a pending post to approved and records the approver. Only
// owners and admins may approve; the check runs here, against the role from
// the session token, not in the UI. Approving a post in any other status is an
// error, never a silent success.
func (s *postService) Approve(ctx context.Context, postID string, approverID int64, role string) (*models.ContentPost, error) {
	if !models.CanApprove(role) {
		err := fmt.Errorf("%w: role %s cannot approve posts", ErrForbidden, role)
		slog.Info(err.Error())
		return nil, err
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, repository.ErrNotFound
	}
	if post.Status != models.PostStatusPendingApproval {
		return nil, fmt.Errorf("%w: post is %s, not pending approval", ErrInvalidState, post.Status)
	}

	post.Status = models.PostStatusApproved
	post.ApprovedBy = approverID

	if err := s.pr.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.pr.GetByID(ctx, postID)
}
