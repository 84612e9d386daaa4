package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_MissingKeysDecodeEmpty(t *testing.T) {
	var s Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{"user_profile":{"age":"30"}}`), &s))
	s.Normalize()

	assert.Equal(t, Profile{"age": "30"}, s.Profile)
	assert.NotNil(t, s.Memory)
	assert.Empty(t, s.Memory)
	assert.NotNil(t, s.Goals)
	assert.Equal(t, 0, s.Tracking.Len())
}

func TestSnapshot_JSONKeys(t *testing.T) {
	target := "2024-12-31"
	s := Snapshot{
		Profile: Profile{},
		Goals: []Goal{{
			Text: "run 5k", Category: DefaultGoalCategory, CreatedDate: "2024-01-01",
			TargetDate: &target, Status: GoalActive,
		}},
		Tracking: NewDailyTracking(),
	}
	s.Stamp(time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"user_profile", "conversation_memory", "wellness_goals", "daily_tracking", "session_timestamp", "session_date"} {
		assert.Contains(t, raw, key)
	}
	assert.NotContains(t, raw, "session_id")
	assert.Equal(t, "2024-01-01 08:00:00", raw["session_date"])

	goal := raw["wellness_goals"].([]any)[0].(map[string]any)
	assert.Equal(t, "run 5k", goal["goal"])
	assert.Equal(t, "active", goal["status"])
	assert.Equal(t, "2024-12-31", goal["target_date"])
	assert.Equal(t, float64(0), goal["progress"])
}

func TestProfile_MergeAndClone(t *testing.T) {
	p := Profile{"age": "30"}
	p.Merge(map[string]any{"age": "31", "diet": "vegan"})
	assert.Equal(t, Profile{"age": "31", "diet": "vegan"}, p)

	c := p.Clone()
	c["age"] = "40"
	assert.Equal(t, "31", p["age"])
}

func TestResultSet_Top(t *testing.T) {
	rs := &ResultSet{Results: []SearchResult{{Title: "a"}, {Title: "b"}}}
	assert.Len(t, rs.Top(3), 2)
	assert.Len(t, rs.Top(1), 1)

	var nilSet *ResultSet
	assert.Nil(t, nilSet.Top(3))
}
