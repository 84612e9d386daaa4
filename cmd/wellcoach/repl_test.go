package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/wellcoach/coach"
	"github.com/hupe1980/wellcoach/internal/testutil"
	"github.com/hupe1980/wellcoach/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runREPL(t *testing.T, c *coach.Coach, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, newREPL(c, in, &out).Run(context.Background()))
	return out.String()
}

func TestREPL_ProfileGoalsTracking(t *testing.T) {
	coachChat := testutil.NewScriptedChat("Hi, I'm Dr. Wellness.", "Let's start with your sleep routine.")
	validatorChat := testutil.NewScriptedChat("VALID", "VALID")
	c := coach.NewWithChats(coachChat, validatorChat)

	out := runREPL(t, c,
		"setup", "35", "moderately active", "sleep better", "", "",
		"goals",
		"track", "water", "2l",
		"complete 1",
		"complete 9",
		"progress",
		"bye",
	)

	assert.Contains(t, out, "🩺 Dr. Wellness: Hi, I'm Dr. Wellness.")
	assert.Contains(t, out, "Profile created!")
	assert.Contains(t, out, "🩺 Dr. Wellness: Let's start with your sleep routine.")
	assert.Less(t, strings.Index(out, "Profile created!"), strings.Index(out, "Let's start with your sleep routine."))
	assert.Contains(t, out, "1. 🎯 sleep better (primary) - active")
	assert.Contains(t, out, "Tracked: water = 2l")
	assert.Contains(t, out, "Goal 1 completed.")
	assert.Contains(t, out, "Could not complete goal")
	assert.Contains(t, out, "Completed Goals: 1")
	assert.Contains(t, out, "Days Tracked: 1")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Come back anytime! 🌟"))

	assert.Equal(t, "35", c.State().Profile()["age"])
	assert.NotContains(t, c.State().Profile(), "dietary_preferences")

	prompts := coachChat.Prompts()
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[0], greeting)
	assert.Contains(t, prompts[1], profileFollowUp)
	assert.Contains(t, prompts[1], "moderately active")
}

func TestREPL_ChatHistoryClear(t *testing.T) {
	coachChat := testutil.NewScriptedChat("Hello there.", "Drink water regularly.", "Welcome back!")
	validatorChat := testutil.NewScriptedChat("VALID", "VALID", "VALID")
	c := coach.NewWithChats(coachChat, validatorChat)

	out := runREPL(t, c,
		"I feel tired in the afternoon",
		"history",
		"clear",
		"history",
		"quit",
	)

	assert.Contains(t, out, "🩺 Dr. Wellness: Hello there.")
	assert.Contains(t, out, "🩺 Dr. Wellness: Drink water regularly.")
	assert.Contains(t, out, "Recent Conversations (2 total)")
	assert.Contains(t, out, "Recent Conversations (1 total)")
	assert.Contains(t, out, "You: I feel tired in the afternoon...")
	assert.Contains(t, out, "Conversation cleared!")
	assert.Contains(t, out, "🩺 Dr. Wellness: Welcome back!")
	assert.Contains(t, coachChat.LastPrompt(), freshStart)
	assert.Equal(t, 1, coachChat.Resets())
}

func TestREPL_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	newCoach := func() *coach.Coach {
		return coach.NewWithChats(testutil.NewScriptedChat(), testutil.NewScriptedChat(), func(o *coach.Options) {
			o.Store = session.NewFileStore(dir)
		})
	}

	first := newCoach()
	first.State().AddGoal("walk daily", nil, "")
	out := runREPL(t, first, "save week1.json", "exit")
	assert.Contains(t, out, "Wellness session saved to ")

	second := newCoach()
	out = runREPL(t, second, "sessions", "load missing.json", "load week1.json")
	assert.Contains(t, out, "📂 Saved sessions:\n   - week1.json\n")
	assert.Contains(t, out, "Error loading session")
	assert.Contains(t, out, "Wellness session loaded from week1.json")
	require.Len(t, second.State().Goals(), 1)
}

func TestREPL_SessionsEmptyStore(t *testing.T) {
	c := coach.NewWithChats(testutil.NewScriptedChat(), testutil.NewScriptedChat(), func(o *coach.Options) {
		o.Store = session.NewFileStore(t.TempDir())
	})
	out := runREPL(t, c, "sessions", "exit")
	assert.Contains(t, out, "📂 No saved sessions yet.")
}

func TestREPL_Search(t *testing.T) {
	c := coach.NewWithChats(testutil.NewScriptedChat(), testutil.NewScriptedChat())
	out := runREPL(t, c, "search", "", "search magnesium", "exit")
	assert.Contains(t, out, "What would you like to search for?")
	assert.Contains(t, out, "❌ Search error: search failed")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 60))
	assert.Equal(t, "ééé", preview("éééé", 3))
}
