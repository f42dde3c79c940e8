package planner

import (
	"testing"
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRollingWindow(t *testing.T) {
	now := time.Date(2026, time.August, 14, 15, 42, 7, 0, time.Local)

	days := RollingWindow(now)

	if len(days) != 28 {
		t.Fatalf("expected 28 days, got %d", len(days))
	}
	if !days[0].Equal(date(2026, time.August, 14)) {
		t.Errorf("window should start at today's midnight, got %v", days[0])
	}
	if !days[27].Equal(date(2026, time.September, 10)) {
		t.Errorf("window should end 27 days out, got %v", days[27])
	}
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("days %d and %d are not consecutive: %v, %v", i-1, i, days[i-1], days[i])
		}
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			// August 2026 starts on a Saturday and ends on a Monday.
			name:      "padding on both sides",
			ref:       date(2026, time.August, 14),
			wantStart: date(2026, time.July, 26),
			wantEnd:   date(2026, time.September, 5),
		},
		{
			// November 2026 starts on a Sunday: no leading padding.
			name:      "month starting on Sunday",
			ref:       date(2026, time.November, 1),
			wantStart: date(2026, time.November, 1),
			wantEnd:   date(2026, time.December, 5),
		},
		{
			// February 2026 ends on a Saturday: no trailing padding.
			name:      "month ending on Saturday",
			ref:       date(2026, time.February, 10),
			wantStart: date(2026, time.February, 1),
			wantEnd:   date(2026, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthWindow(tt.ref)

			if len(days)%7 != 0 {
				t.Errorf("window length %d is not a multiple of 7", len(days))
			}
			if !days[0].Equal(tt.wantStart) {
				t.Errorf("window starts at %v, want %v", days[0], tt.wantStart)
			}
			if last := days[len(days)-1]; !last.Equal(tt.wantEnd) {
				t.Errorf("window ends at %v, want %v", last, tt.wantEnd)
			}
			if wd := days[0].Weekday(); wd != time.Sunday {
				t.Errorf("window starts on %v, want Sunday", wd)
			}

			// Every day of the reference month appears exactly once.
			seen := make(map[int]int)
			for _, d := range days {
				if d.Month() == tt.ref.Month() {
					seen[d.Day()]++
				}
			}
			lastOfMonth := date(tt.ref.Year(), tt.ref.Month(), 1).AddDate(0, 1, -1)
			for day := 1; day <= lastOfMonth.Day(); day++ {
				if seen[day] != 1 {
					t.Errorf("day %d of the month appears %d times", day, seen[day])
				}
			}
		})
	}
}

func TestMonthNavigation(t *testing.T) {
	ref := date(2026, time.August, 14)

	next := NextMonth(ref)
	if !next.Equal(date(2026, time.September, 1)) {
		t.Errorf("next month from %v is %v", ref, next)
	}
	prev := PrevMonth(next)
	if !prev.Equal(date(2026, time.August, 1)) {
		t.Errorf("round trip landed on %v, want August 1", prev)
	}

	// Year boundaries.
	if got := NextMonth(date(2026, time.December, 25)); !got.Equal(date(2027, time.January, 1)) {
		t.Errorf("next month from December is %v", got)
	}
	if got := PrevMonth(date(2026, time.January, 5)); !got.Equal(date(2025, time.December, 1)) {
		t.Errorf("previous month from January is %v", got)
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		status    string
		scheduled time.Time
		lookahead time.Duration
		want      bool
	}{
		{"pending and past due", models.PostStatusPendingApproval, now.Add(-time.Hour), 0, true},
		{"pending but future", models.PostStatusPendingApproval, now.Add(time.Hour), 0, false},
		{"future inside lookahead", models.PostStatusPendingApproval, now.Add(time.Hour), 24 * time.Hour, true},
		{"draft is never overdue", models.PostStatusDraft, now.Add(-time.Hour), 0, false},
		{"approved is never overdue", models.PostStatusApproved, now.Add(-time.Hour), 0, false},
		{"published is never overdue", models.PostStatusPublished, now.Add(-time.Hour), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &models.ContentPost{Status: tt.status, ScheduledDate: tt.scheduled}
			if got := Overdue(post, now, tt.lookahead); got != tt.want {
				t.Errorf("Overdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildGridMonthMode(t *testing.T) {
	ref := date(2026, time.August, 14)
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)

	posts := []*models.ContentPost{
		{ID: "in-month", Status: models.PostStatusPendingApproval, ScheduledDate: date(2026, time.August, 3).Add(9 * time.Hour)},
		{ID: "in-padding", Status: models.PostStatusApproved, ScheduledDate: date(2026, time.July, 28).Add(9 * time.Hour)},
	}

	grid := BuildGrid(ModeMonth, MonthWindow(ref), ref, posts, now, 0, true)

	byDate := make(map[string]Day)
	for _, day := range grid {
		byDate[day.Date.Format("2006-01-02")] = day
	}

	padding := byDate["2026-07-28"]
	if padding.IsCurrentMonth || padding.CanSchedule {
		t.Errorf("padding day should be neither current nor schedulable: %+v", padding)
	}
	if len(padding.Posts) != 1 || padding.Posts[0].Post.ID != "in-padding" {
		t.Errorf("padding day should still show its post, got %+v", padding.Posts)
	}

	current := byDate["2026-08-03"]
	if !current.IsCurrentMonth || !current.CanSchedule {
		t.Errorf("reference-month day should be current and schedulable: %+v", current)
	}
	if len(current.Posts) != 1 {
		t.Fatalf("expected one post on Aug 3, got %d", len(current.Posts))
	}
	entry := current.Posts[0]
	if !entry.Overdue {
		t.Error("pending post scheduled before now should be overdue")
	}
	if !entry.CanApprove {
		t.Error("privileged viewer should see the approve affordance on a pending post")
	}
}

func TestBuildGridRollingMode(t *testing.T) {
	now := time.Date(2026, time.August, 30, 8, 0, 0, 0, time.Local)

	// The rolling window crosses into September; every day is schedulable
	// regardless of month.
	grid := BuildGrid(ModeRolling, RollingWindow(now), now, nil, now, 0, false)

	if len(grid) != 28 {
		t.Fatalf("expected 28 days, got %d", len(grid))
	}
	for _, day := range grid {
		if !day.IsCurrentMonth || !day.CanSchedule {
			t.Errorf("rolling day %v should be current and schedulable", day.Date)
		}
	}
}

func TestBuildGridUnprivileged(t *testing.T) {
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)
	posts := []*models.ContentPost{
		{ID: "p1", Status: models.PostStatusPendingApproval, ScheduledDate: date(2026, time.August, 15)},
	}

	grid := BuildGrid(ModeRolling, RollingWindow(now), now, posts, now, 0, false)

	for _, day := range grid {
		for _, entry := range day.Posts {
			if entry.CanApprove {
				t.Errorf("unprivileged viewer should never see the approve affordance")
			}
		}
	}
}
