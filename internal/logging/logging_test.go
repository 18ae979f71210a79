package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "planner.log")
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	require.NoError(t, Init("debug", "json", path))
	Logger.Info("hello", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestInitRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, Init("info", "xml", ""))
}
