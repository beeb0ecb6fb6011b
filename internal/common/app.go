package common

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eessi/ebdev/internal/config"
	"github.com/eessi/ebdev/internal/eb"
	"github.com/eessi/ebdev/internal/gh"
	"github.com/eessi/ebdev/internal/logging"
	"github.com/eessi/ebdev/internal/recipe"
	"github.com/eessi/ebdev/internal/runner"
)

// App bundles the configuration and clients shared by all commands
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	GH        *gh.Client
	Generator *recipe.Generator
}

// NewApp wires the clients for cfg around r
func NewApp(cfg *config.Config, logger *zap.Logger, r runner.Runner) *App {
	ghClient := gh.NewClient(r, gh.Options{
		Curl:   cfg.Tools.Curl,
		APIURL: cfg.Github.APIURL,
		WebURL: cfg.Github.WebURL,
		Token:  cfg.Github.Token,
	})

	return &App{
		Config:    cfg,
		Logger:    logger,
		GH:        ghClient,
		Generator: recipe.NewDefaultGenerator(cfg.PlaceholderPath(), ghClient, eb.New(r, cfg.Tools.EB), logger),
	}
}

// InitApp loads the config at path and builds the logger and clients.
// Returns an error that is suitable for use in PreRunE hooks
func InitApp(path string, verbose bool) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, verbose)
	if err != nil {
		return nil, err
	}

	return NewApp(cfg, logger, runner.New(logger)), nil
}

type appKey struct{}

// WithApp returns a context carrying app
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// AppFromContext returns the app stored by WithApp, or nil
func AppFromContext(ctx context.Context) *App {
	app, _ := ctx.Value(appKey{}).(*App)
	return app
}
