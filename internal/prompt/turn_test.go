package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTurn_EmptyState(t *testing.T) {
	out, err := BuildTurn(Turn{Message: "Hi there"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `User message: "Hi there"`))
	assert.Contains(t, out, "Recent conversation: []")
	assert.Contains(t, out, "User Profile: Not yet established")
	assert.Contains(t, out, "Current Wellness Goals: None set")
	assert.Contains(t, out, `Recent Progress: {"active_goals":0,"completed_goals":0,"tracking_days":0,"recent_activity":[]}`)
	assert.Contains(t, out, "Daily Tracking Data (last 7 days): {}")
	assert.NotContains(t, out, "CURRENT RESEARCH")
	assert.True(t, strings.HasSuffix(out, "mention the sources and cite them appropriately."))
}

func TestBuildTurn_WithStateAndSearch(t *testing.T) {
	tracking := core.NewDailyTracking()
	tracking.Set("2024-01-01", "steps", 5000)

	out, err := BuildTurn(Turn{
		Message:  "What are the latest sleep guidelines?",
		Recent:   []core.Exchange{{User: "u", Agent: "a & b", CreatedAt: time.Unix(1700000000, 0)}},
		Profile:  core.Profile{"age": "34"},
		Goals:    []core.Goal{{Text: "sleep 8h", Category: "sleep", Status: core.GoalActive}},
		Progress: session.ProgressSummary{ActiveGoals: 1, TrackingDays: 1, RecentActivity: []string{"2024-01-01"}},
		Tracking: tracking,
		Search: &SearchContext{
			Query: "What are the latest sleep guidelines?",
			Count: 4,
			Top:   []core.SearchResult{{Title: "CDC", URL: "https://cdc.gov", TrustScore: 5, Source: "cdc.gov"}},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, `"agent":"a & b"`)
	assert.Contains(t, out, `User Profile: {"age":"34"}`)
	assert.Contains(t, out, `"goal":"sleep 8h"`)
	assert.Contains(t, out, `Daily Tracking Data (last 7 days): {"2024-01-01":{"steps":5000}}`)
	assert.Contains(t, out, "CURRENT RESEARCH & INFORMATION (from search):\nQuery: What are the latest sleep guidelines?\nSources found: 4")
	assert.Contains(t, out, "Search Results:\n[\n  {\n    \"title\": \"CDC\"")
	assert.Contains(t, out, "Always cite sources when using search information.\n\nPlease respond as Dr. Wellness")
}
