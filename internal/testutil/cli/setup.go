package cli

import (
	"testing"

	"github.com/thenoetrevino/planner/internal/app"
	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/metrics"
	"github.com/thenoetrevino/planner/internal/testutil"
)

// SetupCLITest creates an in-memory store and returns both the repository and
// an App built on it. It lives apart from testutil so that service tests can
// import testutil without pulling in the cli package.
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo, app.WithMetrics(metrics.New()))
}
