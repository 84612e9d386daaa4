package coach

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/wellcoach/core"
)

// ErrListUnsupported is returned by Sessions when the store cannot enumerate.
var ErrListUnsupported = errors.New("session store cannot list sessions")

// Save persists the session under name (generated when empty) and returns
// the name the store used.
func (c *Coach) Save(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := &core.Snapshot{
		SessionID: c.id,
		Profile:   c.state.Profile(),
		Memory:    c.memory.All(),
		Goals:     c.state.Goals(),
		Tracking:  c.state.Tracking(),
	}
	snap.Stamp(c.now())

	saved, err := c.store.Save(ctx, name, snap)
	if err != nil {
		c.logger.Error("Session save failed", "name", name, "error", err)
		return "", fmt.Errorf("save session: %w", err)
	}
	c.logger.Info("Session saved", "name", saved)
	return saved, nil
}

// Load replaces profile, memory, goals and tracking with the stored session.
// On error the current state is left untouched.
func (c *Coach) Load(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.store.Load(ctx, name)
	if err != nil {
		c.logger.Error("Session load failed", "name", name, "error", err)
		return fmt.Errorf("load session: %w", err)
	}

	c.state.Replace(snap.Profile, snap.Goals, snap.Tracking)
	c.memory.Replace(snap.Memory)
	if snap.SessionID != "" {
		c.id = snap.SessionID
	}
	c.logger.Info("Session loaded", "name", name, "exchanges", len(snap.Memory), "goals", len(snap.Goals))
	return nil
}

// Sessions returns the names of stored sessions, most recent first.
func (c *Coach) Sessions(ctx context.Context) ([]string, error) {
	lister, ok := c.store.(core.SnapshotLister)
	if !ok {
		return nil, ErrListUnsupported
	}
	names, err := lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return names, nil
}
