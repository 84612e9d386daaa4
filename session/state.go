package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/wellcoach/core"
)

// RecentActivityDays is the number of tracked days reported as recent activity.
const RecentActivityDays = 7

// ErrGoalIndex is returned when a goal index does not exist.
var ErrGoalIndex = errors.New("goal index out of range")

// ProgressSummary aggregates goals and tracking. RecentActivity lists the
// last tracked dates in insertion order, which is not necessarily chronological.
type ProgressSummary struct {
	ActiveGoals    int      `json:"active_goals"`
	CompletedGoals int      `json:"completed_goals"`
	TrackingDays   int      `json:"tracking_days"`
	RecentActivity []string `json:"recent_activity"`
}

// Options configure a State.
type Options struct {
	Now func() time.Time
}

// State aggregates the user profile, wellness goals and daily tracking.
// It is safe for concurrent access.
type State struct {
	mu       sync.RWMutex
	profile  core.Profile
	goals    []core.Goal
	tracking core.DailyTracking
	now      func() time.Time
}

// NewState creates an empty state.
func NewState(optFns ...func(o *Options)) *State {
	opts := Options{Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &State{profile: core.Profile{}, tracking: core.NewDailyTracking(), now: opts.Now}
}

// UpdateProfile shallow-merges partial into the profile.
func (s *State) UpdateProfile(partial map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Merge(partial)
}

// Profile returns a copy of the profile.
func (s *State) Profile() core.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// AddGoal appends an active goal with zero progress created today. An empty
// category becomes core.DefaultGoalCategory.
func (s *State) AddGoal(text string, targetDate *string, category string) core.Goal {
	if category == "" {
		category = core.DefaultGoalCategory
	}
	goal := core.Goal{
		Text:        text,
		Category:    category,
		CreatedDate: s.now().Format(core.DateLayout),
		TargetDate:  targetDate,
		Status:      core.GoalActive,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, goal)
	return goal
}

// Goals returns a copy of the goal list.
func (s *State) Goals() []core.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// CompleteGoal marks goal i as completed with full progress.
func (s *State) CompleteGoal(i int) error {
	return s.updateGoal(i, func(g *core.Goal) {
		g.Status = core.GoalCompleted
		g.Progress = 100
	})
}

// SetGoalProgress records progress for goal i.
func (s *State) SetGoalProgress(i int, progress float64) error {
	return s.updateGoal(i, func(g *core.Goal) { g.Progress = progress })
}

func (s *State) updateGoal(i int, fn func(g *core.Goal)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.goals) {
		return fmt.Errorf("goal %d: %w", i, ErrGoalIndex)
	}
	fn(&s.goals[i])
	return nil
}

// TrackMetric stores value for (date, metric). An empty date means today.
func (s *State) TrackMetric(metric string, value any, date string) {
	if date == "" {
		date = s.now().Format(core.DateLayout)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracking.Set(date, metric, value)
}

// Tracking returns a copy of the full tracking table.
func (s *State) Tracking() core.DailyTracking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracking.Clone()
}

// RecentTracking returns the n most recently inserted tracked days.
func (s *State) RecentTracking(n int) core.DailyTracking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracking.Last(n)
}

// ProgressSummary counts goals by status and reports tracking activity.
func (s *State) ProgressSummary() ProgressSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary := ProgressSummary{TrackingDays: s.tracking.Len(), RecentActivity: []string{}}
	for _, g := range s.goals {
		switch g.Status {
		case core.GoalActive:
			summary.ActiveGoals++
		case core.GoalCompleted:
			summary.CompletedGoals++
		}
	}
	dates := s.tracking.Dates()
	if len(dates) > RecentActivityDays {
		dates = dates[len(dates)-RecentActivityDays:]
	}
	summary.RecentActivity = dates
	return summary
}

// Replace swaps profile, goals and tracking in one step.
func (s *State) Replace(profile core.Profile, goals []core.Goal, tracking core.DailyTracking) {
	p := profile.Clone()
	g := make([]core.Goal, len(goals))
	copy(g, goals)
	t := tracking.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile, s.goals, s.tracking = p, g, t
}
