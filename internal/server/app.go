// Package server initializes and runs the journal server: it opens the
// database, applies migrations, wires the HTTP API, and handles graceful
// shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ourstory-app/ourstory/internal/logging"
	"github.com/ourstory-app/ourstory/internal/server/auth"
	"github.com/ourstory-app/ourstory/internal/server/config"
	"github.com/ourstory-app/ourstory/internal/server/documents"
	"github.com/ourstory-app/ourstory/internal/server/httpapi"
	"github.com/ourstory-app/ourstory/internal/server/media"
	"github.com/ourstory-app/ourstory/internal/server/migrations"
)

// DefaultPasscode guards development installs when no hash is configured.
const DefaultPasscode = "250922"

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.PasscodeHash == "" {
		hash, err := auth.HashPasscode(DefaultPasscode)
		if err != nil {
			return nil, fmt.Errorf("passcode init error: %w", err)
		}
		cfg.PasscodeHash = hash
		logger.Warn(ctx, "no passcode hash configured, using the default passcode")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	repo := documents.NewPostgresRepository(db)
	mediaSvc := media.NewService(cfg)
	handler := httpapi.NewRouter(httpapi.NewHandler(repo, mediaSvc, cfg, logger))

	return &App{config: cfg, logger: logger, db: db, handler: handler}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return app.db.Close()
}
