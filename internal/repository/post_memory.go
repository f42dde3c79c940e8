package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
)

// MemoryPostRepository is an in-memory PostRepository. It backs tests and lets
// the scheduling core run without a database; writes replace the whole record,
// matching the Postgres implementation's snapshot semantics.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts map[string]models.ContentPost
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{posts: make(map[string]models.ContentPost)}
}

func (r *MemoryPostRepository) Create(ctx context.Context, post *models.ContentPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *post
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.posts[stored.ID] = stored
	return nil
}

func (r *MemoryPostRepository) GetByID(ctx context.Context, id string) (*models.ContentPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (r *MemoryPostRepository) List(ctx context.Context) ([]*models.ContentPost, error) {
	return r.filter(func(*models.ContentPost) bool { return true }), nil
}

func (r *MemoryPostRepository) ListByProject(ctx context.Context, projectID string) ([]*models.ContentPost, error) {
	return r.filter(func(p *models.ContentPost) bool { return p.ProjectID == projectID }), nil
}

func (r *MemoryPostRepository) ListByStatus(ctx context.Context, status string) ([]*models.ContentPost, error) {
	return r.filter(func(p *models.ContentPost) bool { return p.Status == status }), nil
}

func (r *MemoryPostRepository) filter(keep func(*models.ContentPost) bool) []*models.ContentPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []*models.ContentPost
	for id := range r.posts {
		post := r.posts[id]
		if keep(&post) {
			posts = append(posts, &post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ScheduledDate.Before(posts[j].ScheduledDate)
	})
	return posts
}

func (r *MemoryPostRepository) Update(ctx context.Context, post *models.ContentPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.posts[post.ID]
	if !ok {
		return ErrNotFound
	}

	stored := *post
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	r.posts[stored.ID] = stored
	return nil
}
