package server

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/planner/internal/config"
	"github.com/thenoetrevino/planner/internal/testutil/cli"
)

func writeTestConfig(t *testing.T) (cfgPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "data", "planner.db")
	cfg.Log.File = filepath.Join(dir, "planner.log")
	cfg.Server.Mode = "test"
	cfgPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, cfg.Save(cfgPath))
	return cfgPath, cfg.Database.Path
}

func TestMigrate(t *testing.T) {
	cfgPath, dbPath := writeTestConfig(t)

	output, err := cli.ExecuteWithContext(t, context.Background(), cli.NewRoot(MigrateCmd()),
		[]string{"migrate", "--config", cfgPath})
	require.NoError(t, err)
	assert.Contains(t, output, fmt.Sprintf("Database %s is at schema version", dbPath))
	assert.FileExists(t, dbPath)

	// running again is a no-op
	_, err = cli.ExecuteWithContext(t, context.Background(), cli.NewRoot(MigrateCmd()),
		[]string{"migrate", "--config", cfgPath})
	require.NoError(t, err)
}

func TestServe_StopsWhenContextEnds(t *testing.T) {
	cfgPath, dbPath := writeTestConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := cli.ExecuteWithContext(t, ctx, cli.NewRoot(ServeCmd()),
		[]string{"serve", "--config", cfgPath, "--addr", "127.0.0.1:0"})
	require.NoError(t, err)
	assert.FileExists(t, dbPath)
}

func TestGinMode(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"debug", "release", "test"} {
		got, err := ginMode(mode)
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	_, err := ginMode("production")
	assert.ErrorContains(t, err, `invalid server.mode "production"`)
}
