package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// Cache keys. Collection snapshots are stored as JSON arrays/objects,
// the session flag as "1".
const (
	KeyRecords  = "journal.records"
	KeyWishlist = "journal.wishlist"
	KeyConfig   = "journal.config"
	KeySession  = "journal.session"
)

// Snapshot reads and writes typed collection snapshots over a Store.
type Snapshot struct {
	store Store
}

func NewSnapshot(store Store) *Snapshot {
	return &Snapshot{store: store}
}

// Records returns the cached record list, or (nil, false) when no
// snapshot exists or the stored value does not parse.
func (s *Snapshot) Records(ctx context.Context) ([]journal.Record, bool) {
	var out []journal.Record
	ok := s.load(ctx, KeyRecords, &out)
	return out, ok
}

func (s *Snapshot) SaveRecords(ctx context.Context, records []journal.Record) error {
	return s.save(ctx, KeyRecords, records)
}

// Wishlist returns the cached wishlist, or (nil, false) when absent
// or unreadable.
func (s *Snapshot) Wishlist(ctx context.Context) ([]journal.WishlistItem, bool) {
	var out []journal.WishlistItem
	ok := s.load(ctx, KeyWishlist, &out)
	return out, ok
}

func (s *Snapshot) SaveWishlist(ctx context.Context, items []journal.WishlistItem) error {
	return s.save(ctx, KeyWishlist, items)
}

// Config returns the cached shared configuration, or (zero, false)
// when absent or unreadable.
func (s *Snapshot) Config(ctx context.Context) (journal.SharedConfig, bool) {
	var out journal.SharedConfig
	ok := s.load(ctx, KeyConfig, &out)
	return out, ok
}

func (s *Snapshot) SaveConfig(ctx context.Context, cfg journal.SharedConfig) error {
	return s.save(ctx, KeyConfig, cfg)
}

// SessionOpen reports whether a previous session flag is present.
func (s *Snapshot) SessionOpen(ctx context.Context) bool {
	v, ok, err := s.store.Get(ctx, KeySession)
	return err == nil && ok && v == "1"
}

func (s *Snapshot) MarkSessionOpen(ctx context.Context) error {
	return s.store.Set(ctx, KeySession, "1")
}

func (s *Snapshot) ClearSession(ctx context.Context) error {
	return s.store.Remove(ctx, KeySession)
}

func (s *Snapshot) load(ctx context.Context, key string, dst any) bool {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal([]byte(v), dst); err != nil {
		return false
	}
	return true
}

func (s *Snapshot) save(ctx context.Context, key string, src any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("cache encode error: %w", err)
	}
	return s.store.Set(ctx, key, string(b))
}
