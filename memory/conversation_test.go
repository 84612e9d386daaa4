package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/wellcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationMemory_EvictsOldest(t *testing.T) {
	m := NewConversationMemory()
	for i := 0; i < 25; i++ {
		m.Append(fmt.Sprintf("u%d", i), fmt.Sprintf("a%d", i))
	}

	all := m.All()
	require.Len(t, all, DefaultCapacity)
	assert.Equal(t, "u5", all[0].User)
	assert.Equal(t, "a24", all[len(all)-1].Agent)
}

func TestConversationMemory_Recent(t *testing.T) {
	m := NewConversationMemory()
	assert.Empty(t, m.Recent(DefaultContextSize))

	m.Append("one", "1")
	assert.Len(t, m.Recent(DefaultContextSize), 1)

	m.Append("two", "2")
	m.Append("three", "3")
	m.Append("four", "4")
	recent := m.Recent(DefaultContextSize)
	require.Len(t, recent, 3)
	assert.Equal(t, "two", recent[0].User)
	assert.Equal(t, "four", recent[2].User)
}

func TestConversationMemory_StampsWithClock(t *testing.T) {
	clock := testutil.NewClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	m := NewConversationMemory(func(o *Options) { o.Now = clock.Now })

	ex := m.Append("u", "a")
	assert.Equal(t, clock.Now(), ex.CreatedAt)
}

func TestConversationMemory_CopiesAreIndependent(t *testing.T) {
	m := NewConversationMemory()
	m.Append("u", "a")

	all := m.All()
	all[0].User = "changed"
	assert.Equal(t, "u", m.All()[0].User)
}

func TestConversationMemory_ReplaceAndClear(t *testing.T) {
	m := NewConversationMemory(func(o *Options) { o.Capacity = 3 })
	snap := testutil.NewSnapshotBuilder().Exchanges(5).Build()

	m.Replace(snap.Memory)
	all := m.All()
	require.Len(t, all, 3)
	assert.Equal(t, "question 2", all[0].User)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.All())
}

func TestConversationMemory_ConcurrentAppend(t *testing.T) {
	m := NewConversationMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Append(fmt.Sprint(i), "a")
			_ = m.Recent(DefaultContextSize)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, DefaultCapacity, m.Len())
}
