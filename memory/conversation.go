package memory

import (
	"sync"
	"time"

	"github.com/hupe1980/wellcoach/core"
)

const (
	// DefaultCapacity is the maximum number of exchanges retained.
	DefaultCapacity = 20
	// DefaultContextSize is the number of exchanges returned by Recent by default.
	DefaultContextSize = 3
)

// Options configure a ConversationMemory.
type Options struct {
	Capacity int
	Now      func() time.Time
}

// ConversationMemory is an ordered, capacity-bounded log of exchanges.
// Appending beyond capacity evicts from the front. Safe for concurrent access.
type ConversationMemory struct {
	mu        sync.RWMutex
	exchanges []core.Exchange
	capacity  int
	now       func() time.Time
}

// NewConversationMemory creates an empty log.
func NewConversationMemory(optFns ...func(o *Options)) *ConversationMemory {
	opts := Options{Capacity: DefaultCapacity, Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ConversationMemory{capacity: opts.Capacity, now: opts.Now}
}

// Append records one exchange stamped with the current time.
func (m *ConversationMemory) Append(user, agent string) core.Exchange {
	ex := core.Exchange{User: user, Agent: agent, CreatedAt: m.now()}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exchanges = append(m.exchanges, ex)
	m.trimLocked()
	return ex
}

// Recent returns the last limit exchanges (all of them if fewer are stored).
func (m *ConversationMemory) Recent(limit int) []core.Exchange {
	m.mu.RLock()
	defer m.mu.RUnlock()
	start := 0
	if limit >= 0 && len(m.exchanges) > limit {
		start = len(m.exchanges) - limit
	}
	return copyExchanges(m.exchanges[start:])
}

// All returns a copy of the whole log, oldest first.
func (m *ConversationMemory) All() []core.Exchange {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyExchanges(m.exchanges)
}

// Len returns the number of stored exchanges.
func (m *ConversationMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.exchanges)
}

// Clear empties the log.
func (m *ConversationMemory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exchanges = nil
}

// Replace swaps the log for exchanges, keeping only the newest that fit.
func (m *ConversationMemory) Replace(exchanges []core.Exchange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exchanges = copyExchanges(exchanges)
	m.trimLocked()
}

func (m *ConversationMemory) trimLocked() {
	if over := len(m.exchanges) - m.capacity; over > 0 {
		m.exchanges = append([]core.Exchange(nil), m.exchanges[over:]...)
	}
}

func copyExchanges(in []core.Exchange) []core.Exchange {
	out := make([]core.Exchange, len(in))
	copy(out, in)
	return out
}
