package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "wellcoach dev\n", execute(t, "version"))
}

func TestSearchCmd_WithoutAPIKey(t *testing.T) {
	t.Setenv("WELLCOACH_PROVIDER", "mock")
	t.Setenv("WELLCOACH_STORE", "file")
	t.Setenv("WELLCOACH_DATA_DIR", t.TempDir())
	t.Setenv("WELLCOACH_SEARCH_RPS", "0")
	t.Setenv("WELLCOACH_LOG_LEVEL", "error")
	t.Setenv("SERPER_API_KEY", "")

	out := execute(t, "search", "vitamin", "D")
	assert.Equal(t, "❌ Search error: search failed: serper API key not configured\n", out)
}
