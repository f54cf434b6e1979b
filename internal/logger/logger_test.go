package logger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesJSONToFile(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	path := filepath.Join(t.TempDir(), "csharpgen.log")
	Init(Config{Level: "debug", File: path})

	ctx := WithSession(context.Background(), "login.json")
	Debug(ctx, "generated %d actions", 3)
	Info(context.Background(), "done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "debug", first["level"])
	assert.Equal(t, "[TestInitWritesJSONToFile] generated 3 actions", first["msg"])
	assert.Equal(t, "login.json", first["session"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.NotContains(t, second, "session")
}

func TestInitFiltersBelowLevel(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	path := filepath.Join(t.TempDir(), "csharpgen.log")
	Init(Config{Level: "warn", File: path})

	Info(context.Background(), "hidden")
	Warn(context.Background(), "shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSession(t *testing.T) {
	assert.Empty(t, Session(context.Background()))
	assert.Equal(t, "a.json", Session(WithSession(context.Background(), "a.json")))
}

func TestCallerNameThroughDefault(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	path := filepath.Join(t.TempDir(), "csharpgen.log")
	Init(Config{Level: "warn", File: path})

	Default().Warn(context.Background(), "via method")
	Warn(context.Background(), "via package")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	want := []string{"[TestCallerNameThroughDefault] via method", "[TestCallerNameThroughDefault] via package"}
	for i, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, want[i], entry["msg"])
	}
}
