package cli

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/planner/internal/app"
	"github.com/thenoetrevino/planner/internal/testutil"
)

func flagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("source", "", "")
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestParseIDFlag(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	got, err := ParseIDFlag(flagCmd(t, "--source", id.String()), "source")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseIDFlag(flagCmd(t), "source")
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, "required", usage.Reason)

	_, err = ParseIDFlag(flagCmd(t, "--source", "nope"), "source")
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, "invalid value for --source: not a valid UUID", err.Error())
}

func TestFormatterFor(t *testing.T) {
	t.Parallel()

	f := FormatterFor(flagCmd(t, "--json"))
	assert.True(t, f.JSON)
	assert.False(t, f.Quiet)

	f = FormatterFor(flagCmd(t, "--quiet"))
	assert.True(t, f.Quiet)
}

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	t.Parallel()
	a := app.New(testutil.SetupTestRepo(t))

	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(WithApp(context.Background(), a))

	c, err := GetCLIFromContext(cmd)
	require.NoError(t, err)
	assert.Same(t, a, c.App)
	assert.NoError(t, c.Close(), "injected apps are not closed by the CLI")
}

func TestGetCLIFromContext_OpensConfiguredDatabase(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfgPath := dir + "/config.yaml"
	writeConfig(t, cfgPath, dir+"/planner.db")

	root := &cobra.Command{Use: "planner"}
	AddGlobalFlags(root)
	require.NoError(t, root.ParseFlags([]string{"--config", cfgPath}))
	root.SetContext(context.Background())

	c, err := GetCLIFromContext(root)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, dir+"/planner.db", c.Config.Database.Path)
	assert.NoError(t, c.App.Health(context.Background()))
}
