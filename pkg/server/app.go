package server

import (
	"context"
	"fmt"

	"DeceptionIndex/internal/domain/models"
	"DeceptionIndex/internal/usecase"
	"DeceptionIndex/pkg/config"
	xhttp "DeceptionIndex/pkg/http"
	applogger "DeceptionIndex/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	pipeline   *usecase.Pipeline
	fetcher    *usecase.PitchFetcher
	httpServer *xhttp.Server
	log        *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	fetcher *usecase.PitchFetcher,
	httpServer *xhttp.Server,
	log *applogger.Logger,
) *App {
	return &App{cfg: cfg, pipeline: pipeline, fetcher: fetcher, httpServer: httpServer, log: log}
}

// Run scores the configured roster once and writes the reports.
func (a *App) Run(ctx context.Context) (models.Table, error) {
	window := a.fetcher.Window()
	a.log.Info("deception run starting",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("pitchers", len(a.pipeline.Roster())),
		applogger.String("from", window.StartDay()),
		applogger.String("to", window.EndDay()),
		applogger.String("cache", a.cfg.Cache.Type),
		applogger.String("backend", a.cfg.Backend.Type),
	)
	table, err := a.pipeline.Run(ctx)
	if err != nil {
		return table, err
	}
	if len(table.Degenerate) > 0 {
		a.log.Warn("metrics without spread across cohort", applogger.Strings("metrics", table.Degenerate))
	}
	return table, nil
}

// Serve runs the pipeline once, then serves the result over HTTP until ctx
// is cancelled.
func (a *App) Serve(ctx context.Context) error {
	if _, err := a.Run(ctx); err != nil {
		return err
	}

	errCh := a.httpServer.Start()
	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	}

	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}

// Lookup resolves a pitcher name to a provider player id.
func (a *App) Lookup(ctx context.Context, first, last string) (int, error) {
	id, reason := a.fetcher.Resolve(ctx, models.Pitcher{First: first, Last: last})
	if reason != "" {
		return 0, fmt.Errorf("lookup %s %s: %s", first, last, reason)
	}
	return id, nil
}
