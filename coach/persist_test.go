package coach

import (
	"context"
	"testing"

	"github.com/hupe1980/wellcoach/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.validator.Reply("VALID").Reply("VALID")
	f.chat.Reply("first answer").Reply("second answer")
	f.coach.Chat(ctx, "first question")
	f.coach.Chat(ctx, "second question")
	f.coach.SetupProfile(ProfileAnswers{Age: "29", PrimaryGoal: "run a 10k"})
	f.coach.State().AddGoal("drink 2l of water", nil, "")
	f.coach.State().TrackMetric("steps", "9000", "2024-03-31")
	f.coach.State().TrackMetric("mood", "7", "2024-03-31")
	f.coach.State().TrackMetric("sleep hours", "6.5", "2024-04-01")
	f.coach.State().TrackMetric("steps", "11000", "")

	name, err := f.coach.Save(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "wellness_session_20240402_180000.json", name)

	restored := f.newCoach()
	require.NoError(t, restored.Load(ctx, name))

	assert.Equal(t, f.coach.ID(), restored.ID())
	assert.Equal(t, f.coach.State().Profile(), restored.State().Profile())
	require.Len(t, restored.State().Goals(), 2)
	assert.Equal(t, f.coach.State().Goals(), restored.State().Goals())

	wantTracking, gotTracking := f.coach.State().Tracking(), restored.State().Tracking()
	dates := wantTracking.Dates()
	assert.Equal(t, []string{"2024-03-31", "2024-04-01", "2024-04-02"}, dates)
	assert.Equal(t, dates, gotTracking.Dates())
	for _, date := range dates {
		want, _ := wantTracking.Day(date)
		got, ok := gotTracking.Day(date)
		require.True(t, ok, date)
		assert.Equal(t, want, got, date)
	}

	want, got := f.coach.History(), restored.History()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].User, got[i].User)
		assert.Equal(t, want[i].Agent, got[i].Agent)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestLoad_FailureLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.validator.Reply("VALID")
	f.chat.Reply("answer")
	f.coach.Chat(ctx, "question")
	f.coach.State().AddGoal("stretch daily", nil, "")
	id := f.coach.ID()

	err := f.coach.Load(ctx, "does_not_exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load session")

	assert.Len(t, f.coach.History(), 1)
	assert.Len(t, f.coach.State().Goals(), 1)
	assert.Equal(t, id, f.coach.ID())
}

func TestSave_NamedSession(t *testing.T) {
	f := newFixture(t)
	path, err := f.coach.Save(context.Background(), "mine.json")
	require.NoError(t, err)
	assert.Contains(t, path, "mine.json")

	restored := f.newCoach()
	require.NoError(t, restored.Load(context.Background(), "mine.json"))
	assert.Empty(t, restored.History())
	assert.Empty(t, restored.State().Profile())
}

func TestSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	names, err := f.coach.Sessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = f.coach.Save(ctx, "")
	require.NoError(t, err)
	names, err = f.coach.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"wellness_session_20240402_180000.json"}, names)
}

func TestSessions_StoreWithoutListing(t *testing.T) {
	f := newFixture(t)
	c := NewWithChats(f.chat, f.validator, func(o *Options) {
		o.Store = struct{ core.SnapshotStore }{f.store}
	})

	_, err := c.Sessions(context.Background())
	assert.ErrorIs(t, err, ErrListUnsupported)
}
