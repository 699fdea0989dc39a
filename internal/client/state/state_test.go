package state

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourstory-app/ourstory/internal/client/cache"
	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
	"github.com/ourstory-app/ourstory/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testSnapshot(t *testing.T) *cache.Snapshot {
	t.Helper()
	store, db, err := cache.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return cache.NewSnapshot(store)
}

// fakeRemote records calls and serves canned data.
type fakeRemote struct {
	mu sync.Mutex

	records  []journal.Record
	wishlist []journal.WishlistItem
	config   *journal.SharedConfig
	score    *journal.HighScore

	listErr error
	getErr  error

	puts    []string
	deletes []string
	merges  []map[string]any
}

func (f *fakeRemote) ListRecords(ctx context.Context) ([]journal.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeRemote) PutRecord(ctx context.Context, r journal.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, "record:"+r.ID)
	return nil
}

func (f *fakeRemote) DeleteRecord(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, "record:"+id)
	return nil
}

func (f *fakeRemote) ListWishlist(ctx context.Context) ([]journal.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.wishlist, nil
}

func (f *fakeRemote) PutWishlistItem(ctx context.Context, w journal.WishlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, "wishlist:"+w.ID)
	return nil
}

func (f *fakeRemote) DeleteWishlistItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, "wishlist:"+id)
	return nil
}

func (f *fakeRemote) GetConfig(ctx context.Context) (journal.SharedConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return journal.SharedConfig{}, f.getErr
	}
	if f.config == nil {
		return journal.SharedConfig{}, common.ErrorNotFound
	}
	return *f.config, nil
}

func (f *fakeRemote) PutConfig(ctx context.Context, cfg journal.SharedConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.config = &cfg
	f.puts = append(f.puts, "config")
	return nil
}

func (f *fakeRemote) MergeConfig(ctx context.Context, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.merges = append(f.merges, fields)
	f.puts = append(f.puts, "config.merge")
	return nil
}

func (f *fakeRemote) GetHighScore(ctx context.Context) (journal.HighScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.score == nil {
		return journal.HighScore{}, common.ErrorNotFound
	}
	return *f.score, nil
}

func (f *fakeRemote) PutHighScore(ctx context.Context, hs journal.HighScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.score = &hs
	f.puts = append(f.puts, "meta")
	return nil
}

func (f *fakeRemote) DeleteAll(ctx context.Context, collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, "all:"+collection)
	return nil
}

func (f *fakeRemote) putNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.puts))
	copy(out, f.puts)
	return out
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestState_ToggleFavoriteRefreshesDetail(t *testing.T) {
	s := NewState()
	s.SetRecords([]journal.Record{
		{ID: "r1", Title: "Cena", Date: journal.NewDate(2024, 7, 15), Category: journal.CategoryFood},
	})
	require.True(t, s.OpenDetail("r1"))

	_, ok := s.ToggleFavorite("r1")
	require.True(t, ok)

	d, ok := s.Detail()
	require.True(t, ok)
	assert.True(t, d.Favorite)
}

func TestState_RemoveRecordClosesDetail(t *testing.T) {
	s := NewState()
	s.SetRecords([]journal.Record{
		{ID: "r1", Title: "Cena", Date: journal.NewDate(2024, 7, 15), Category: journal.CategoryFood},
	})
	require.True(t, s.OpenDetail("r1"))
	require.True(t, s.RemoveRecord("r1"))

	_, ok := s.Detail()
	assert.False(t, ok)
}

func TestState_WishlistSortsPendingFirst(t *testing.T) {
	s := NewState()
	s.SetWishlist([]journal.WishlistItem{
		{ID: "w1", Title: "done", Done: true},
		{ID: "w2", Title: "pending"},
	})

	items := s.Wishlist()
	require.Len(t, items, 2)
	assert.Equal(t, "w2", items[0].ID)
	assert.Equal(t, "w1", items[1].ID)
}

func TestState_RecordsReturnsCopies(t *testing.T) {
	s := NewState()
	s.SetRecords([]journal.Record{
		{ID: "r1", Title: "Cena", Date: journal.NewDate(2024, 7, 15),
			Category: journal.CategoryFood, ImageURLs: []string{"a"}},
	})

	got := s.Records()
	got[0].Title = "changed"
	got[0].ImageURLs[0] = "changed"

	orig, ok := s.Record("r1")
	require.True(t, ok)
	assert.Equal(t, "Cena", orig.Title)
	assert.Equal(t, "a", orig.ImageURLs[0])
}
