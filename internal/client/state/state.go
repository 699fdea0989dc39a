// Package state holds the client's in-memory collections, the startup
// reconciler that syncs them against the remote store, and the background
// dispatcher carrying optimistic mutations to the server.
package state

import (
	"sort"
	"sync"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// State is the single in-memory source the UI renders from. Remote
// resolutions complete on other goroutines, hence the mutex.
type State struct {
	mu       sync.RWMutex
	records  []journal.Record
	wishlist []journal.WishlistItem
	config   journal.SharedConfig
	score    journal.HighScore
	detail   *journal.Record

	onChange func()
}

func NewState() *State {
	return &State{}
}

// OnChange registers a callback invoked after every replacement or
// mutation, so the UI can re-render. Called without the lock held.
func (s *State) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *State) notify() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Records returns a copy of the record list.
func (s *State) Records() []journal.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]journal.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Record returns a copy of the record with the given id.
func (s *State) Record(id string) (journal.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return journal.Record{}, false
}

// SetRecords replaces the whole record list. Last replacement wins.
func (s *State) SetRecords(records []journal.Record) {
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	s.notify()
}

func (s *State) AddRecord(r journal.Record) {
	s.mu.Lock()
	s.records = append(s.records, r)
	s.mu.Unlock()
	s.notify()
}

// UpdateRecord replaces the record with the same id. Unknown ids are a
// no-op. The open detail copy is refreshed when it shows this record.
func (s *State) UpdateRecord(r journal.Record) bool {
	s.mu.Lock()
	found := false
	for i := range s.records {
		if s.records[i].ID == r.ID {
			s.records[i] = r
			found = true
			break
		}
	}
	if found && s.detail != nil && s.detail.ID == r.ID {
		c := r.Clone()
		s.detail = &c
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return found
}

// RemoveRecord deletes the record and closes the detail view when it was
// showing the deleted record.
func (s *State) RemoveRecord(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			found = true
			break
		}
	}
	if found && s.detail != nil && s.detail.ID == id {
		s.detail = nil
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return found
}

// ToggleFavorite flips the favorite flag and returns the updated record.
func (s *State) ToggleFavorite(id string) (journal.Record, bool) {
	s.mu.Lock()
	var updated journal.Record
	found := false
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Favorite = !s.records[i].Favorite
			updated = s.records[i].Clone()
			found = true
			break
		}
	}
	if found && s.detail != nil && s.detail.ID == id {
		c := updated.Clone()
		s.detail = &c
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return updated, found
}

// OpenDetail copies the record into the detail view.
func (s *State) OpenDetail(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			c := r.Clone()
			s.detail = &c
			return true
		}
	}
	return false
}

// Detail returns the open detail copy, if any.
func (s *State) Detail() (journal.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.detail == nil {
		return journal.Record{}, false
	}
	return s.detail.Clone(), true
}

func (s *State) CloseDetail() {
	s.mu.Lock()
	s.detail = nil
	s.mu.Unlock()
}

// Wishlist returns a copy of the wishlist sorted pending-first.
func (s *State) Wishlist() []journal.WishlistItem {
	s.mu.RLock()
	out := make([]journal.WishlistItem, len(s.wishlist))
	copy(out, s.wishlist)
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Done && out[j].Done
	})
	return out
}

func (s *State) WishlistItem(id string) (journal.WishlistItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.wishlist {
		if w.ID == id {
			return w, true
		}
	}
	return journal.WishlistItem{}, false
}

func (s *State) SetWishlist(items []journal.WishlistItem) {
	s.mu.Lock()
	s.wishlist = items
	s.mu.Unlock()
	s.notify()
}

func (s *State) AddWishlistItem(w journal.WishlistItem) {
	s.mu.Lock()
	s.wishlist = append(s.wishlist, w)
	s.mu.Unlock()
	s.notify()
}

// ToggleWishlistItem flips Done and returns the updated item.
func (s *State) ToggleWishlistItem(id string) (journal.WishlistItem, bool) {
	s.mu.Lock()
	var updated journal.WishlistItem
	found := false
	for i := range s.wishlist {
		if s.wishlist[i].ID == id {
			s.wishlist[i].Done = !s.wishlist[i].Done
			updated = s.wishlist[i]
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return updated, found
}

func (s *State) RemoveWishlistItem(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.wishlist {
		if s.wishlist[i].ID == id {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return found
}

func (s *State) Config() journal.SharedConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *State) SetConfig(cfg journal.SharedConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	s.notify()
}

func (s *State) HighScore() journal.HighScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

func (s *State) SetHighScore(hs journal.HighScore) {
	s.mu.Lock()
	s.score = hs
	s.mu.Unlock()
	s.notify()
}
