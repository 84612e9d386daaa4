package core

import (
	"context"
	"time"
)

// Snapshot is the persisted session bundle. Missing keys decode to their
// empty form (see Normalize).
type Snapshot struct {
	SessionID string        `json:"session_id,omitempty"`
	Profile   Profile       `json:"user_profile"`
	Memory    []Exchange    `json:"conversation_memory"`
	Goals     []Goal        `json:"wellness_goals"`
	Tracking  DailyTracking `json:"daily_tracking"`
	Timestamp float64       `json:"session_timestamp"`
	Date      string        `json:"session_date"`
}

// Stamp sets the saved-at fields from t.
func (s *Snapshot) Stamp(t time.Time) {
	s.Timestamp = float64(t.UnixNano()) / float64(time.Second)
	s.Date = t.Format(DateTimeLayout)
}

// Normalize replaces nil collections with empty ones.
func (s *Snapshot) Normalize() {
	if s.Profile == nil {
		s.Profile = Profile{}
	}
	if s.Memory == nil {
		s.Memory = []Exchange{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Tracking.days == nil {
		s.Tracking = NewDailyTracking()
	}
}

// SnapshotStore persists and restores session snapshots by name. Save
// returns the resolved name (e.g. a generated file name) it stored under.
type SnapshotStore interface {
	Save(ctx context.Context, name string, snap *Snapshot) (string, error)
	Load(ctx context.Context, name string) (*Snapshot, error)
}

// SnapshotLister is implemented by stores that can enumerate saved sessions.
type SnapshotLister interface {
	List(ctx context.Context) ([]string, error)
}
