package common

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eessi/ebdev/internal/config"
	"github.com/eessi/ebdev/internal/eb"
	"github.com/eessi/ebdev/internal/recipe"
	"github.com/eessi/ebdev/internal/runner"
)

func TestNewApp(t *testing.T) {
	cfg := config.DefaultConfig()
	app := NewApp(cfg, zap.NewNop(), &runner.MockRunner{})

	assert.Same(t, cfg, app.Config)
	assert.Equal(t, "https://github.com/laraPPr/lammps/archive/", app.GH.ArchiveURL("laraPPr/lammps"))

	lammps, isLAMMPS := app.Generator.PolicyFor(recipe.LAMMPSRepo).(*recipe.LAMMPSPolicy)
	require.True(t, isLAMMPS)
	assert.IsType(t, &eb.Tool{}, lammps.Tool)
	assert.Same(t, app.GH, lammps.Fetcher)
	_, isPatch := app.Generator.PolicyFor("other/repo").(*recipe.PatchPolicy)
	assert.True(t, isPatch)
}

func TestInitApp(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	app, err := InitApp(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.NoError(t, err)
	assert.NotNil(t, app.Logger)

	t.Setenv(config.EnvLogLevel, "shouty")
	_, err = InitApp(filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.Error(t, err)
}

func TestAppContext(t *testing.T) {
	assert.Nil(t, AppFromContext(context.Background()))

	app := &App{}
	assert.Same(t, app, AppFromContext(WithApp(context.Background(), app)))
}
