package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
)

func seedPost(t *testing.T, pr *repository.MemoryPostRepository, id, status string) *models.ContentPost {
	t.Helper()
	post := &models.ContentPost{
		ID:            id,
		ProjectID:     "proj-1",
		Platform:      models.PlatformFacebook,
		PostType:      models.PostTypeText,
		Status:        status,
		ScheduledDate: time.Date(2026, time.September, 3, 10, 0, 0, 0, time.Local),
		CreatedBy:     7,
		PostText:      "Open house this weekend",
	}
	if err := pr.Create(context.Background(), post); err != nil {
		t.Fatal(err)
	}
	return post
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	pr := repository.NewMemoryPostRepository()
	s := NewPostService(pr)

	seedPost(t, pr, "p1", models.PostStatusPendingApproval)

	post, err := s.Approve(ctx, "p1", 3, models.RoleAdmin)
	if err != nil {
		t.Fatalf("Approve() error: %v", err)
	}
	if post.Status != models.PostStatusApproved {
		t.Errorf("status = %s, want approved", post.Status)
	}
	if post.ApprovedBy != 3 {
		t.Errorf("ApprovedBy = %d, want 3", post.ApprovedBy)
	}
}

func TestApproveRoleGate(t *testing.T) {
	ctx := context.Background()

	for _, role := range []string{models.RolePropertyAdvisor, models.RoleClient, ""} {
		t.Run("role "+role, func(t *testing.T) {
			pr := repository.NewMemoryPostRepository()
			s := NewPostService(pr)
			seedPost(t, pr, "p1", models.PostStatusPendingApproval)

			_, err := s.Approve(ctx, "p1", 3, role)
			if !errors.Is(err, ErrForbidden) {
				t.Fatalf("Approve() error = %v, want ErrForbidden", err)
			}

			stored, _ := pr.GetByID(ctx, "p1")
			if stored.Status != models.PostStatusPendingApproval {
				t.Errorf("post status changed to %s despite forbidden approver", stored.Status)
			}
		})
	}
}

func TestApproveRequiresPendingStatus(t *testing.T) {
	ctx := context.Background()

	for _, status := range []string{models.PostStatusDraft, models.PostStatusApproved, models.PostStatusPublished} {
		t.Run("status "+status, func(t *testing.T) {
			pr := repository.NewMemoryPostRepository()
			s := NewPostService(pr)
			seedPost(t, pr, "p1", status)

			_, err := s.Approve(ctx, "p1", 3, models.RoleOwner)
			if !errors.Is(err, ErrInvalidState) {
				t.Fatalf("Approve() error = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestApproveUnknownPost(t *testing.T) {
	s := NewPostService(repository.NewMemoryPostRepository())

	_, err := s.Approve(context.Background(), "missing", 3, models.RoleOwner)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Approve() error = %v, want ErrNotFound", err)
	}
}

func TestPostInfo(t *testing.T) {
	ctx := context.Background()
	pr := repository.NewMemoryPostRepository()
	s := NewPostService(pr)
	seedPost(t, pr, "p1", models.PostStatusDraft)

	post, err := s.PostInfo(ctx, "p1")
	if err != nil {
		t.Fatalf("PostInfo() error: %v", err)
	}
	if post.ID != "p1" {
		t.Errorf("got post %s", post.ID)
	}

	if _, err := s.PostInfo(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("PostInfo(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.PostInfo(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("PostInfo(\"\") error = %v, want ErrValidation", err)
	}
}

func TestListFiltersByProject(t *testing.T) {
	ctx := context.Background()
	pr := repository.NewMemoryPostRepository()
	s := NewPostService(pr)

	a := seedPost(t, pr, "a", models.PostStatusDraft)
	b := seedPost(t, pr, "b", models.PostStatusDraft)
	b.ProjectID = "proj-2"
	if err := pr.Update(ctx, b); err != nil {
		t.Fatal(err)
	}

	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("List(\"\") returned %d posts, want 2", len(all))
	}

	filtered, err := s.List(ctx, a.ProjectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 || filtered[0].ID != "a" {
		t.Errorf("List(proj-1) = %+v", filtered)
	}
}
