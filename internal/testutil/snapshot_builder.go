package testutil

import (
	"fmt"
	"time"

	"github.com/hupe1980/wellcoach/core"
)

// SnapshotBuilder provides a fluent helper for constructing snapshots in tests.
//
//	snap := NewSnapshotBuilder().Profile("age", "34").Exchanges(3).Goal("walk daily").Build()
type SnapshotBuilder struct {
	snap core.Snapshot
	at   time.Time
}

// NewSnapshotBuilder creates a builder stamped at a fixed date.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		snap: core.Snapshot{Profile: core.Profile{}, Tracking: core.NewDailyTracking()},
		at:   time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

// SessionID sets the session id (chainable).
func (b *SnapshotBuilder) SessionID(id string) *SnapshotBuilder { b.snap.SessionID = id; return b }

// At sets the stamp time (chainable).
func (b *SnapshotBuilder) At(t time.Time) *SnapshotBuilder { b.at = t; return b }

// Profile sets one profile field (chainable).
func (b *SnapshotBuilder) Profile(key string, value any) *SnapshotBuilder {
	b.snap.Profile[key] = value
	return b
}

// Exchange appends one exchange (chainable).
func (b *SnapshotBuilder) Exchange(user, agent string) *SnapshotBuilder {
	b.snap.Memory = append(b.snap.Memory, core.Exchange{
		User:      user,
		Agent:     agent,
		CreatedAt: b.at.Add(time.Duration(len(b.snap.Memory)) * time.Minute),
	})
	return b
}

// Exchanges appends n numbered exchanges (chainable).
func (b *SnapshotBuilder) Exchanges(n int) *SnapshotBuilder {
	for i := 0; i < n; i++ {
		b.Exchange(fmt.Sprintf("question %d", len(b.snap.Memory)), fmt.Sprintf("answer %d", len(b.snap.Memory)))
	}
	return b
}

// Goal appends an active goal in the default category (chainable).
func (b *SnapshotBuilder) Goal(text string) *SnapshotBuilder {
	b.snap.Goals = append(b.snap.Goals, core.Goal{
		Text:        text,
		Category:    core.DefaultGoalCategory,
		CreatedDate: b.at.Format(core.DateLayout),
		Status:      core.GoalActive,
	})
	return b
}

// Track records one metric value (chainable).
func (b *SnapshotBuilder) Track(date, metric string, value any) *SnapshotBuilder {
	b.snap.Tracking.Set(date, metric, value)
	return b
}

// Build stamps and returns the snapshot.
func (b *SnapshotBuilder) Build() *core.Snapshot {
	snap := b.snap
	snap.Stamp(b.at)
	return &snap
}
