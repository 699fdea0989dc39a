package state

import (
	"context"
	"errors"
	"time"

	"github.com/ourstory-app/ourstory/internal/client/cache"
	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
	"github.com/ourstory-app/ourstory/internal/logging"
)

// Service applies mutations optimistically: State first, write-through to
// the cache, then a fire-and-forget op on the dispatcher.
type Service struct {
	state  *State
	snap   *cache.Snapshot
	remote Remote
	disp   *Dispatcher
	logger logging.Logger
	now    func() time.Time
}

func NewService(state *State, snap *cache.Snapshot, remote Remote, disp *Dispatcher, logger logging.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{state: state, snap: snap, remote: remote, disp: disp, logger: logger, now: now}
}

func (s *Service) State() *State { return s.state }

func (s *Service) Today() journal.Date { return journal.DateOf(s.now()) }

func (s *Service) AddRecord(ctx context.Context, r journal.Record) error {
	if r.ID == "" {
		r.ID = journal.NewID()
	}
	if err := r.Validate(); err != nil {
		return err
	}
	s.state.AddRecord(r)
	s.saveRecords(ctx)
	rec := r.Clone()
	s.disp.Enqueue(Op{Name: "record.put", Do: func(ctx context.Context) error {
		return s.remote.PutRecord(ctx, rec)
	}})
	return nil
}

func (s *Service) UpdateRecord(ctx context.Context, r journal.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !s.state.UpdateRecord(r) {
		return common.ErrorNotFound
	}
	s.saveRecords(ctx)
	rec := r.Clone()
	s.disp.Enqueue(Op{Name: "record.put", Do: func(ctx context.Context) error {
		return s.remote.PutRecord(ctx, rec)
	}})
	return nil
}

func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	if !s.state.RemoveRecord(id) {
		return common.ErrorNotFound
	}
	s.saveRecords(ctx)
	s.disp.Enqueue(Op{Name: "record.delete", Do: func(ctx context.Context) error {
		return s.remote.DeleteRecord(ctx, id)
	}})
	return nil
}

func (s *Service) ToggleFavorite(ctx context.Context, id string) (journal.Record, error) {
	updated, ok := s.state.ToggleFavorite(id)
	if !ok {
		return journal.Record{}, common.ErrorNotFound
	}
	s.saveRecords(ctx)
	rec := updated.Clone()
	s.disp.Enqueue(Op{Name: "record.put", Do: func(ctx context.Context) error {
		return s.remote.PutRecord(ctx, rec)
	}})
	return updated, nil
}

func (s *Service) AddWishlistItem(ctx context.Context, w journal.WishlistItem) error {
	if w.ID == "" {
		w.ID = journal.NewID()
	}
	if err := w.Validate(); err != nil {
		return err
	}
	s.state.AddWishlistItem(w)
	s.saveWishlist(ctx)
	item := w
	s.disp.Enqueue(Op{Name: "wishlist.put", Do: func(ctx context.Context) error {
		return s.remote.PutWishlistItem(ctx, item)
	}})
	return nil
}

// ToggleWishlistItem flips the done flag. When the flip is false→true it
// also returns a pre-populated draft record the caller may choose to add.
func (s *Service) ToggleWishlistItem(ctx context.Context, id string) (journal.WishlistItem, *journal.Record, error) {
	updated, ok := s.state.ToggleWishlistItem(id)
	if !ok {
		return journal.WishlistItem{}, nil, common.ErrorNotFound
	}
	s.saveWishlist(ctx)
	item := updated
	s.disp.Enqueue(Op{Name: "wishlist.put", Do: func(ctx context.Context) error {
		return s.remote.PutWishlistItem(ctx, item)
	}})

	var draft *journal.Record
	if updated.Done {
		d := updated.Draft(s.Today())
		draft = &d
	}
	return updated, draft, nil
}

func (s *Service) DeleteWishlistItem(ctx context.Context, id string) error {
	if !s.state.RemoveWishlistItem(id) {
		return common.ErrorNotFound
	}
	s.saveWishlist(ctx)
	s.disp.Enqueue(Op{Name: "wishlist.delete", Do: func(ctx context.Context) error {
		return s.remote.DeleteWishlistItem(ctx, id)
	}})
	return nil
}

// UpdateProfile changes the display name and avatar. The anniversary is
// immutable after the initial seed, so the remote write is a field merge
// that never touches it.
func (s *Service) UpdateProfile(ctx context.Context, name, avatar string) error {
	if name == "" {
		return errors.New("display name is required")
	}

	cfg := s.state.Config()
	cfg.Name = name
	cfg.Avatar = avatar
	s.state.SetConfig(cfg)
	if err := s.snap.SaveConfig(ctx, cfg); err != nil {
		s.logger.Warn(ctx, "config cache write failed", "error", err)
	}
	s.disp.Enqueue(Op{Name: "config.merge", Do: func(ctx context.Context) error {
		return s.remote.MergeConfig(ctx, map[string]any{"name": name, "avatar": avatar})
	}})
	return nil
}

// SubmitHighScore keeps and publishes the score only when it beats the
// current record.
func (s *Service) SubmitHighScore(ctx context.Context, score int) bool {
	if score <= s.state.HighScore().Record {
		return false
	}
	hs := journal.HighScore{Record: score}
	s.state.SetHighScore(hs)
	s.disp.Enqueue(Op{Name: "meta.put", Do: func(ctx context.Context) error {
		return s.remote.PutHighScore(ctx, hs)
	}})
	return true
}

func (s *Service) saveRecords(ctx context.Context) {
	if err := s.snap.SaveRecords(ctx, s.state.Records()); err != nil {
		s.logger.Warn(ctx, "record cache write failed", "error", err)
	}
}

func (s *Service) saveWishlist(ctx context.Context) {
	if err := s.snap.SaveWishlist(ctx, s.state.Wishlist()); err != nil {
		s.logger.Warn(ctx, "wishlist cache write failed", "error", err)
	}
}
