// Package cli is the interactive journal client: a read-eval-print loop
// over the shared application state, talking to the server in the
// background.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ourstory-app/ourstory/internal/client/api"
	"github.com/ourstory-app/ourstory/internal/client/cache"
	"github.com/ourstory-app/ourstory/internal/client/config"
	"github.com/ourstory-app/ourstory/internal/client/state"
	"github.com/ourstory-app/ourstory/internal/logging"
)

type App struct {
	config *config.Config
	client *api.Client
	snap   *cache.Snapshot
	svc    *state.Service
	rec    *state.Reconciler
	disp   *state.Dispatcher
	logger logging.Logger
	db     *sql.DB

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, db, err := cache.Open(ctx, cfg.CacheFile)
	if err != nil {
		return nil, err
	}
	snap := cache.NewSnapshot(store)

	client := api.NewClient(cfg.ServerURL, cfg.RequestTimeout)

	st := state.NewState()
	disp := state.NewDispatcher(logger, 64)
	rec := state.NewReconciler(st, snap, client, logger, time.Now)
	svc := state.NewService(st, snap, client, disp, logger, time.Now)

	return &App{
		config: cfg,
		client: client,
		snap:   snap,
		svc:    svc,
		rec:    rec,
		disp:   disp,
		logger: logger,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.disp.Start(ctx)

	if !a.snap.SessionOpen(ctx) {
		if err := a.Login(ctx); err != nil {
			return err
		}
	} else {
		a.println("Welcome back. Showing the local copy; run 'login' to sync.")
	}

	a.rec.Start(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner, a.out)

	a.disp.Close()
	a.disp.Wait()
	a.rec.Wait()
	return nil
}
