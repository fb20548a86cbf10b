package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus is the pace of a savings goal relative to its deadline.
type GoalStatus string

const (
	GoalStatusAchieved GoalStatus = "achieved"
	GoalStatusBehind   GoalStatus = "behind"
	GoalStatusOnTrack  GoalStatus = "on_track"
)

const (
	// goalCloseWindowDays is how close a deadline must be before low progress counts as behind.
	goalCloseWindowDays = 30
	// goalOnPacePercent is the progress needed to stay on track inside the close window.
	goalOnPacePercent = 80
)

// DefaultGoalIcon is used when a goal is created without an icon.
const DefaultGoalIcon = "🎯"

// Goal is a savings target tracked by the web app.
type Goal struct {
	ID        string
	Name      string
	Target    decimal.Decimal
	Current   decimal.Decimal
	Deadline  time.Time
	Icon      string
	Completed bool
	CreatedAt time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(name string, target, current decimal.Decimal, deadline time.Time, icon string, now time.Time) *Goal {
	if icon == "" {
		icon = DefaultGoalIcon
	}
	return &Goal{
		ID:        uuid.NewString(),
		Name:      name,
		Target:    target,
		Current:   current,
		Deadline:  deadline,
		Icon:      icon,
		CreatedAt: now.UTC(),
	}
}

// Progress returns current/target as a whole percentage capped at 100.
// A zero target yields 0.
func (g *Goal) Progress() int {
	if g.Target.IsZero() {
		return 0
	}
	pct := g.Current.Div(g.Target).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}

// DaysLeft returns the whole days until the deadline, rounded up. Negative once the deadline passed.
func (g *Goal) DaysLeft(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}

// Status resolves the goal pace at now.
func (g *Goal) Status(now time.Time) GoalStatus {
	if g.Completed || (!g.Target.IsZero() && g.Current.GreaterThanOrEqual(g.Target)) {
		return GoalStatusAchieved
	}
	days := g.DaysLeft(now)
	if days < 0 {
		return GoalStatusBehind
	}
	if days < goalCloseWindowDays && g.rawProgress().LessThan(decimal.NewFromInt(goalOnPacePercent)) {
		return GoalStatusBehind
	}
	return GoalStatusOnTrack
}

// StatusText returns the label shown next to the goal.
func (g *Goal) StatusText(now time.Time) string {
	switch g.Status(now) {
	case GoalStatusAchieved:
		return "Achieved"
	case GoalStatusBehind:
		if g.DaysLeft(now) < 0 {
			return "Behind Pace - Est. Next Month"
		}
		return "Behind Pace"
	default:
		return "On Track - Est. " + g.Deadline.Format("Jan 2006")
	}
}

// CanComplete reports whether the goal may be marked complete.
func (g *Goal) CanComplete() bool {
	return !g.Completed && g.Progress() >= 100
}

// Contribute adds amount to the saved balance.
func (g *Goal) Contribute(amount decimal.Decimal) {
	g.Current = g.Current.Add(amount)
}

// Complete marks the goal done and fills the balance up to the target.
func (g *Goal) Complete() {
	g.Completed = true
	g.Current = g.Target
}

func (g *Goal) rawProgress() decimal.Decimal {
	if g.Target.IsZero() {
		return decimal.Zero
	}
	return g.Current.Div(g.Target).Mul(decimal.NewFromInt(100))
}

// GoalStats summarises a goal list.
type GoalStats struct {
	TotalTarget   decimal.Decimal
	AchievedCount int
	ActiveCount   int
}

// SummarizeGoals totals targets across all goals and counts completed and active goals.
func SummarizeGoals(goals []*Goal) GoalStats {
	stats := GoalStats{TotalTarget: decimal.Zero}
	for _, g := range goals {
		stats.TotalTarget = stats.TotalTarget.Add(g.Target)
		if g.Completed {
			stats.AchievedCount++
		} else {
			stats.ActiveCount++
		}
	}
	return stats
}
