package crawler

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v0xg/csharpgen/internal/logger"
)

func TestReportKeepsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawler.log")
	logger.Init(logger.Config{Level: "debug", File: path})
	t.Cleanup(func() { logger.Init(logger.Config{Level: "warn"}) })

	ctx := logger.WithSession(context.Background(), "https://app.test/")
	pm := &PageMap{URL: "https://app.test/", Elements: []Element{{Selector: "#a"}}}
	assert.Same(t, pm, report(ctx, pm))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "https://app.test/", entry["session"])
	assert.Equal(t, "[report] https://app.test/: 1 elements, 0 frames", entry["msg"])
}
