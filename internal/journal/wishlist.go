package journal

import "errors"

// WishlistItem is a planned-but-not-yet-occurred idea. Completing one opens
// a draft record pre-populated from the item.
type WishlistItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Done        bool     `json:"isCompleted"`
	Category    Category `json:"category"`
}

func (w *WishlistItem) Validate() error {
	if w.ID == "" {
		return errors.New("wishlist item id is required")
	}
	if w.Title == "" {
		return errors.New("wishlist item title is required")
	}
	if !w.Category.Valid() {
		return errors.New("wishlist item category is invalid")
	}
	return nil
}

// Draft builds the pre-populated draft record created when an item is
// completed. The draft carries a fresh ID, today's date, and the item's
// title and category; the user still fills in the rest before it is saved.
func (w WishlistItem) Draft(today Date) Record {
	return Record{
		ID:       NewID(),
		Title:    w.Title,
		Date:     today,
		Category: w.Category,
	}
}
