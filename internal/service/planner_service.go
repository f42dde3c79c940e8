package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/planner"
	"github.com/lockwoodcarter/agency-api/internal/repository"
)

// PlannerService resolves a window request into the day-bucketed grid the
// planner renders. Posts are always re-read from the store; nothing is served
// from a stale local copy.
type PlannerService interface {
	Window(ctx context.Context, mode planner.Mode, ref time.Time, projectID, role string) ([]planner.Day, error)
}

type plannerService struct {
	pr       repository.PostRepository
	overdueL time.Duration
}

func NewPlannerService(pr repository.PostRepository, overdueLookahead time.Duration) PlannerService {
	return &plannerService{pr: pr, overdueL: overdueLookahead}
}

func (s *plannerService) Window(ctx context.Context, mode planner.Mode, ref time.Time, projectID, role string) ([]planner.Day, error) {
	var posts []*models.ContentPost
	var err error
	if projectID != "" {
		posts, err = s.pr.ListByProject(ctx, projectID)
	} else {
		posts, err = s.pr.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var days []time.Time
	switch mode {
	case planner.ModeRolling:
		days = planner.RollingWindow(now)
		ref = now
	case planner.ModeMonth:
		days = planner.MonthWindow(ref)
	default:
		return nil, fmt.Errorf("%w: unknown planner mode %q", ErrValidation, mode)
	}

	return planner.BuildGrid(mode, days, ref, posts, now, s.overdueL, models.CanApprove(role)), nil
}
