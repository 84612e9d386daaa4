package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchange_MarshalUsesSessionFileShape(t *testing.T) {
	at := time.Date(2024, 5, 2, 14, 3, 9, 0, time.Local)
	data, err := json.Marshal(Exchange{User: "hi", Agent: "hello", CreatedAt: at})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "hi", raw["user"])
	assert.Equal(t, "hello", raw["agent"])
	assert.Equal(t, float64(at.Unix()), raw["timestamp"])
	assert.Equal(t, "2024-05-02 14:03:09", raw["date"])
}

func TestExchange_UnmarshalPrefersTimestamp(t *testing.T) {
	var e Exchange
	err := json.Unmarshal([]byte(`{"user":"u","agent":"a","timestamp":1700000000.5,"date":"1999-01-01 00:00:00"}`), &e)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), e.CreatedAt.Unix())
	assert.Equal(t, 500*time.Millisecond, time.Duration(e.CreatedAt.Nanosecond()))
}

func TestExchange_UnmarshalFallsBackToDate(t *testing.T) {
	var e Exchange
	require.NoError(t, json.Unmarshal([]byte(`{"user":"u","agent":"a","date":"2024-01-02 03:04:05"}`), &e))
	assert.Equal(t, "2024-01-02 03:04:05", e.CreatedAt.Format(DateTimeLayout))

	var empty Exchange
	require.NoError(t, json.Unmarshal([]byte(`{"user":"u"}`), &empty))
	assert.True(t, empty.CreatedAt.IsZero())
}
