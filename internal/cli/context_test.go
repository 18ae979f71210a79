package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/planner/internal/config"
)

func writeConfig(t *testing.T, path, dbPath string) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Path = dbPath
	require.NoError(t, cfg.Save(path))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	root := &cobra.Command{Use: "planner"}
	AddGlobalFlags(root)
	child := &cobra.Command{Use: "child"}
	root.AddCommand(child)

	require.NoError(t, root.PersistentFlags().Set("config", "/tmp/custom.yaml"))
	path, err := ConfigPath(child)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err = ConfigPath(&cobra.Command{Use: "bare"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "planner", "config.yaml"), path)
}
