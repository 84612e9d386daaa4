package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() (*State, *testutil.Clock) {
	clock := testutil.NewClock(time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local))
	return NewState(func(o *Options) { o.Now = clock.Now }), clock
}

func TestState_ProfileMerge(t *testing.T) {
	s, _ := newTestState()
	s.UpdateProfile(map[string]any{"age": "30", "diet": "vegan"})
	s.UpdateProfile(map[string]any{"age": "31"})

	p := s.Profile()
	assert.Equal(t, core.Profile{"age": "31", "diet": "vegan"}, p)

	p["age"] = "99"
	assert.Equal(t, "31", s.Profile()["age"])
}

func TestState_Goals(t *testing.T) {
	s, _ := newTestState()
	target := "2024-06-01"

	g := s.AddGoal("walk 10k steps", &target, "")
	assert.Equal(t, core.DefaultGoalCategory, g.Category)
	assert.Equal(t, "2024-03-10", g.CreatedDate)
	assert.Equal(t, core.GoalActive, g.Status)
	assert.Zero(t, g.Progress)

	s.AddGoal("sleep 8h", nil, "sleep")
	require.NoError(t, s.SetGoalProgress(1, 40))
	require.NoError(t, s.CompleteGoal(0))

	goals := s.Goals()
	require.Len(t, goals, 2)
	assert.Equal(t, core.GoalCompleted, goals[0].Status)
	assert.Equal(t, float64(100), goals[0].Progress)
	assert.Equal(t, float64(40), goals[1].Progress)
	assert.Equal(t, "sleep", goals[1].Category)

	assert.ErrorIs(t, s.CompleteGoal(2), ErrGoalIndex)
	assert.ErrorIs(t, s.SetGoalProgress(-1, 10), ErrGoalIndex)
}

func TestState_TrackMetric(t *testing.T) {
	s, clock := newTestState()
	s.TrackMetric("water", "2l", "")
	s.TrackMetric("steps", 8000, "2024-03-01")
	clock.Advance(24 * time.Hour)
	s.TrackMetric("mood", "8", "")

	tracking := s.Tracking()
	assert.Equal(t, []string{"2024-03-10", "2024-03-01", "2024-03-11"}, tracking.Dates())
	day, ok := tracking.Day("2024-03-01")
	require.True(t, ok)
	assert.Equal(t, 8000, day["steps"])

	assert.Equal(t, []string{"2024-03-01", "2024-03-11"}, s.RecentTracking(2).Dates())
}

func TestState_ProgressSummary(t *testing.T) {
	s, _ := newTestState()
	summary := s.ProgressSummary()
	assert.Equal(t, ProgressSummary{RecentActivity: []string{}}, summary)

	s.AddGoal("a", nil, "")
	s.AddGoal("b", nil, "")
	s.AddGoal("c", nil, "")
	require.NoError(t, s.CompleteGoal(1))
	for day := 1; day <= 9; day++ {
		s.TrackMetric("steps", day, fmt.Sprintf("2024-01-%02d", day))
	}

	summary = s.ProgressSummary()
	assert.Equal(t, 2, summary.ActiveGoals)
	assert.Equal(t, 1, summary.CompletedGoals)
	assert.Equal(t, 9, summary.TrackingDays)
	require.Len(t, summary.RecentActivity, RecentActivityDays)
	assert.Equal(t, "2024-01-03", summary.RecentActivity[0])
	assert.Equal(t, "2024-01-09", summary.RecentActivity[6])
}

func TestState_Replace(t *testing.T) {
	s, _ := newTestState()
	s.AddGoal("old", nil, "")

	snap := testutil.NewSnapshotBuilder().
		Profile("age", "40").
		Goal("new goal").
		Track("2024-02-02", "steps", 100).
		Build()
	s.Replace(snap.Profile, snap.Goals, snap.Tracking)

	assert.Equal(t, core.Profile{"age": "40"}, s.Profile())
	require.Len(t, s.Goals(), 1)
	assert.Equal(t, "new goal", s.Goals()[0].Text)
	assert.Equal(t, []string{"2024-02-02"}, s.Tracking().Dates())

	snap.Profile["age"] = "changed"
	assert.Equal(t, "40", s.Profile()["age"])
}
