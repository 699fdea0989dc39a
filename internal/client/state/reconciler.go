package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ourstory-app/ourstory/internal/client/cache"
	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
	"github.com/ourstory-app/ourstory/internal/logging"
)

// Remote is the slice of the server API the client state machinery uses.
type Remote interface {
	ListRecords(ctx context.Context) ([]journal.Record, error)
	PutRecord(ctx context.Context, r journal.Record) error
	DeleteRecord(ctx context.Context, id string) error
	ListWishlist(ctx context.Context) ([]journal.WishlistItem, error)
	PutWishlistItem(ctx context.Context, w journal.WishlistItem) error
	DeleteWishlistItem(ctx context.Context, id string) error
	GetConfig(ctx context.Context) (journal.SharedConfig, error)
	PutConfig(ctx context.Context, cfg journal.SharedConfig) error
	MergeConfig(ctx context.Context, fields map[string]any) error
	GetHighScore(ctx context.Context) (journal.HighScore, error)
	PutHighScore(ctx context.Context, hs journal.HighScore) error
	DeleteAll(ctx context.Context, collection string) error
}

// Reconciler brings State up: cache (or defaults) first for an instant
// UI, then asynchronous adoption of the remote store. The remote wins
// whenever it answers; the cache is never written back to the server.
type Reconciler struct {
	state  *State
	snap   *cache.Snapshot
	remote Remote
	logger logging.Logger
	now    func() time.Time

	wg sync.WaitGroup
}

func NewReconciler(state *State, snap *cache.Snapshot, remote Remote, logger logging.Logger, now func() time.Time) *Reconciler {
	if now == nil {
		now = time.Now
	}
	return &Reconciler{state: state, snap: snap, remote: remote, logger: logger, now: now}
}

// Start seeds State synchronously, then launches the two remote sync
// goroutines. A remote resolution may overwrite a mutation applied after
// startup; last completion wins.
func (r *Reconciler) Start(ctx context.Context) {
	today := journal.DateOf(r.now())

	if records, ok := r.snap.Records(ctx); ok {
		r.state.SetRecords(records)
	} else {
		r.state.SetRecords(journal.SeedRecords(today))
	}
	if items, ok := r.snap.Wishlist(ctx); ok {
		r.state.SetWishlist(items)
	} else {
		r.state.SetWishlist(journal.SeedWishlist())
	}
	if cfg, ok := r.snap.Config(ctx); ok {
		r.state.SetConfig(cfg)
	} else {
		r.state.SetConfig(journal.DefaultConfig())
	}

	r.Refresh(ctx)
}

// Refresh re-runs the remote adoption without touching the cache seed.
func (r *Reconciler) Refresh(ctx context.Context) {
	r.wg.Add(2)
	go r.syncJournal(ctx)
	go r.syncConfig(ctx)
}

// Wait blocks until both sync goroutines have finished.
func (r *Reconciler) Wait() {
	r.wg.Wait()
}

func (r *Reconciler) syncJournal(ctx context.Context) {
	defer r.wg.Done()

	records, err := r.remote.ListRecords(ctx)
	switch {
	case err != nil:
		r.logger.Warn(ctx, "record sync failed, keeping local copy", "error", err)
	case len(records) == 0:
		r.seedRemoteRecords(ctx)
	default:
		r.state.SetRecords(records)
		if err := r.snap.SaveRecords(ctx, records); err != nil {
			r.logger.Warn(ctx, "record cache write failed", "error", err)
		}
	}

	items, err := r.remote.ListWishlist(ctx)
	switch {
	case err != nil:
		r.logger.Warn(ctx, "wishlist sync failed, keeping local copy", "error", err)
	case len(items) == 0:
		r.seedRemoteWishlist(ctx)
	default:
		r.state.SetWishlist(items)
		if err := r.snap.SaveWishlist(ctx, items); err != nil {
			r.logger.Warn(ctx, "wishlist cache write failed", "error", err)
		}
	}
}

func (r *Reconciler) syncConfig(ctx context.Context) {
	defer r.wg.Done()

	cfg, err := r.remote.GetConfig(ctx)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		cfg = r.state.Config()
		if err := r.remote.PutConfig(ctx, cfg); err != nil {
			r.logger.Warn(ctx, "config seed write failed", "error", err)
		}
	case err != nil:
		r.logger.Warn(ctx, "config sync failed, keeping local copy", "error", err)
	default:
		r.state.SetConfig(cfg)
		if err := r.snap.SaveConfig(ctx, cfg); err != nil {
			r.logger.Warn(ctx, "config cache write failed", "error", err)
		}
	}

	hs, err := r.remote.GetHighScore(ctx)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		// never played yet, nothing to create
	case err != nil:
		r.logger.Warn(ctx, "high score sync failed", "error", err)
	default:
		r.state.SetHighScore(hs)
	}
}

// seedRemoteRecords pushes the current (seed) records to the empty remote
// store and keeps them locally.
func (r *Reconciler) seedRemoteRecords(ctx context.Context) {
	records := r.state.Records()
	for _, rec := range records {
		if err := r.remote.PutRecord(ctx, rec); err != nil {
			r.logger.Warn(ctx, "record seed write failed", "id", rec.ID, "error", err)
		}
	}
	if err := r.snap.SaveRecords(ctx, records); err != nil {
		r.logger.Warn(ctx, "record cache write failed", "error", err)
	}
}

func (r *Reconciler) seedRemoteWishlist(ctx context.Context) {
	items := r.state.Wishlist()
	for _, w := range items {
		if err := r.remote.PutWishlistItem(ctx, w); err != nil {
			r.logger.Warn(ctx, "wishlist seed write failed", "id", w.ID, "error", err)
		}
	}
	if err := r.snap.SaveWishlist(ctx, items); err != nil {
		r.logger.Warn(ctx, "wishlist cache write failed", "error", err)
	}
}
