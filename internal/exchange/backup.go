// Package exchange reads and writes the portable backup document: a single
// JSON file carrying the full journal so the data can be moved between
// installations or kept as an offline copy.
package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
)

// Backup is the exchange document. Field names are part of the format and
// must not change.
type Backup struct {
	Memories   []journal.Record       `json:"memories"`
	Bucket     []journal.WishlistItem `json:"bucket"`
	UserConfig *journal.SharedConfig  `json:"userConfig,omitempty"`
	ExportedAt time.Time              `json:"exportedAt"`
}

// Export writes the current collections as a backup document.
func Export(w io.Writer, records []journal.Record, wishlist []journal.WishlistItem, cfg journal.SharedConfig, now time.Time) error {
	b := Backup{
		Memories:   records,
		Bucket:     wishlist,
		UserConfig: &cfg,
		ExportedAt: now.UTC(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("backup encode error: %w", err)
	}
	return nil
}

// Parse reads and validates a backup document. A document that does not
// parse, or whose memories list is absent, aborts the import before any
// data is touched. Entries lacking an id get a fresh one, and bucket
// items with no category land in Outing.
func Parse(r io.Reader) (Backup, error) {
	var b Backup
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", common.ErrMalformedBackup, err)
	}
	if b.Memories == nil {
		return Backup{}, fmt.Errorf("%w: missing memories list", common.ErrMalformedBackup)
	}

	for i := range b.Memories {
		if b.Memories[i].ID == "" {
			b.Memories[i].ID = journal.NewID()
		}
		if err := b.Memories[i].Validate(); err != nil {
			return Backup{}, fmt.Errorf("%w: memory %q: %v", common.ErrMalformedBackup, b.Memories[i].ID, err)
		}
	}
	for i := range b.Bucket {
		if b.Bucket[i].ID == "" {
			b.Bucket[i].ID = journal.NewID()
		}
		if b.Bucket[i].Category == "" {
			b.Bucket[i].Category = journal.CategoryOuting
		}
		if err := b.Bucket[i].Validate(); err != nil {
			return Backup{}, fmt.Errorf("%w: bucket item %q: %v", common.ErrMalformedBackup, b.Bucket[i].ID, err)
		}
	}
	return b, nil
}
