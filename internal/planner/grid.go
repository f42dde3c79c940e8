// Package planner implements the calendar windows behind the content planner:
// the rolling 4-week view, the padded monthly view, and the per-day bucketing
// of scheduled posts. Everything here is pure calendar math; persistence and
// authorization stay in the service layer.
package planner

import (
	"time"

	"github.com/lockwoodcarter/agency-api/internal/models"
)

type Mode string

const (
	ModeRolling Mode = "rolling"
	ModeMonth   Mode = "month"
)

const rollingDays = 28

// Day is one cell of the grid. Posts are the entries scheduled on that local
// calendar day, in scheduled order.
type Day struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
	CanSchedule    bool      `json:"can_schedule"`
	Posts          []Entry   `json:"posts"`
}

// Entry is a post with its day-level affordances resolved.
type Entry struct {
	Post       *models.ContentPost `json:"post"`
	Overdue    bool                `json:"overdue"`
	CanApprove bool                `json:"can_approve"`
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RollingWindow returns exactly 28 consecutive days anchored at today's local
// midnight. The window is recomputed from now on every call, never pinned to a
// month boundary.
func RollingWindow(now time.Time) []time.Time {
	start := StartOfDay(now)
	days := make([]time.Time, 0, rollingDays)
	for i := 0; i < rollingDays; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// MonthWindow returns the calendar month containing ref, padded at both ends
// with days from the adjacent months so the grid is whole Sunday-first weeks.
// The result length is always a multiple of 7.
func MonthWindow(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// NextMonth returns the first day of the month after ref's.
func NextMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 1, 0)
}

// PrevMonth returns the first day of the month before ref's.
func PrevMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -1, 0)
}

// Overdue reports whether a post is flagged in the grid: pending approval and
// scheduled before now plus the lookahead. A zero lookahead means strictly
// past due; a 24h lookahead turns this into a same-day early warning.
func Overdue(post *models.ContentPost, now time.Time, lookahead time.Duration) bool {
	if post.Status != models.PostStatusPendingApproval {
		return false
	}
	return post.ScheduledDate.Before(now.Add(lookahead))
}

// BuildGrid buckets posts onto days and resolves per-entry affordances.
// In month mode the reference month's days carry IsCurrentMonth and the
// schedule affordance; padding days show their posts but new posts cannot be
// scheduled onto them. privileged gates the approve affordance.
func BuildGrid(mode Mode, days []time.Time, ref time.Time, posts []*models.ContentPost, now time.Time, lookahead time.Duration, privileged bool) []Day {
	grid := make([]Day, 0, len(days))
	for _, date := range days {
		current := mode == ModeRolling ||
			(date.Year() == ref.Year() && date.Month() == ref.Month())

		day := Day{
			Date:           date,
			IsCurrentMonth: current,
			CanSchedule:    current,
		}
		for _, post := range posts {
			if !SameDay(post.ScheduledDate.In(date.Location()), date) {
				continue
			}
			day.Posts = append(day.Posts, Entry{
				Post:       post,
				Overdue:    Overdue(post, now, lookahead),
				CanApprove: privileged && post.Status == models.PostStatusPendingApproval,
			})
		}
		grid = append(grid, day)
	}
	return grid
}
