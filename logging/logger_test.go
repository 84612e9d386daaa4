package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LogLevelWarn, ParseLevel(" warning "))
	assert.Equal(t, LogLevelError, ParseLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLevel("bogus"))
	assert.Equal(t, "WARN", LogLevelWarn.String())
}

func TestCoachLogger_JSONAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelDebug, Format: "json", Output: &buf}).
		WithComponent("search").
		WithSession("sid-1").
		WithContext("provider", "serper")

	logger.Info("Search completed", "result_count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Search completed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "search", entry["component"])
	assert.Equal(t, "sid-1", entry["session_id"])
	assert.Equal(t, "serper", entry["provider"])
	assert.Equal(t, float64(3), entry["result_count"])
}

func TestCoachLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelWarn, Format: "text", Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown", "k", "v")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestCoachLogger_CloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: LogLevelInfo, Output: &buf})
	_ = base.WithContext("only", "child")

	base.Info("parent")
	assert.NotContains(t, buf.String(), "only")
}

func TestLoggerImplementations(t *testing.T) {
	var _ Logger = NoOpLogger{}
	var _ Logger = (*CoachLogger)(nil)
	var _ Logger = NewDefaultSlogLogger()

	NoOpLogger{}.Error("ignored")
	assert.NotNil(t, NewSlogLogger(LogLevelError, "text", false))
}
