package cli

import (
	"context"
	"fmt"

	"github.com/ourstory-app/ourstory/internal/journal"
)

// Wishlist lists the bucket list or mutates it:
//
//	wishlist                 list items, pending first
//	wishlist add             add an item interactively
//	wishlist toggle <id>     flip done; completing offers a memory draft
//	wishlist del <id>        remove an item
func (a *App) Wishlist(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.wishlistList()
	}

	switch args[0] {
	case "add":
		return a.wishlistAdd(ctx)
	case "toggle":
		if len(args) != 2 {
			a.println("Usage: wishlist toggle <id>")
			return nil
		}
		return a.wishlistToggle(ctx, args[1])
	case "del", "delete":
		if len(args) != 2 {
			a.println("Usage: wishlist del <id>")
			return nil
		}
		if err := a.svc.DeleteWishlistItem(ctx, args[1]); err != nil {
			return err
		}
		a.println("Removed", args[1])
		return nil
	}

	a.println("Unknown wishlist command:", args[0])
	return nil
}

func (a *App) wishlistList() error {
	items := a.svc.State().Wishlist()
	if len(items) == 0 {
		a.println("The bucket list is empty.")
		return nil
	}
	for _, w := range items {
		mark := " "
		if w.Done {
			mark = "x"
		}
		a.printf("[%s] %-36s  %-10s  %s\n", mark, w.ID, w.Category, w.Title)
	}
	return nil
}

func (a *App) wishlistAdd(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Wish", a.out)
	if err != nil {
		return err
	}
	desc, err := GetSimpleText(a.reader, "Details (optional)", a.out)
	if err != nil {
		return err
	}
	catStr, err := GetTextWithDefault(a.reader,
		fmt.Sprintf("Category %v", journal.Categories()), string(journal.CategoryOuting), a.out)
	if err != nil {
		return err
	}
	cat, err := journal.ParseCategory(catStr)
	if err != nil {
		return err
	}

	w := journal.WishlistItem{Title: title, Description: desc, Category: cat}
	if err := a.svc.AddWishlistItem(ctx, w); err != nil {
		return err
	}
	a.println("Added to the bucket list.")
	return nil
}

// wishlistToggle flips an item. Completing a wish offers to start a
// pre-filled memory for it.
func (a *App) wishlistToggle(ctx context.Context, id string) error {
	item, draft, err := a.svc.ToggleWishlistItem(ctx, id)
	if err != nil {
		return err
	}

	if !item.Done {
		a.println("Back on the list:", item.Title)
		return nil
	}
	a.println("Done:", item.Title)

	if draft == nil {
		return nil
	}
	ok, err := Confirm(a.reader, "Turn it into a memory now?", a.out)
	if err != nil || !ok {
		return err
	}

	r := *draft
	if err := a.promptRecord(&r); err != nil {
		return err
	}
	if err := a.svc.AddRecord(ctx, r); err != nil {
		return err
	}
	a.println("Added", r.ID)
	return nil
}
