package cli

import (
	"context"
)

// Delete removes a record after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: delete <id>")
		return nil
	}

	ok, err := Confirm(a.reader, "Delete this memory forever?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Kept.")
		return nil
	}

	if err := a.svc.DeleteRecord(ctx, args[0]); err != nil {
		return err
	}
	a.println("Deleted", args[0])
	return nil
}

// Favorite toggles the favorite flag.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: fav <id>")
		return nil
	}

	r, err := a.svc.ToggleFavorite(ctx, args[0])
	if err != nil {
		return err
	}
	if r.Favorite {
		a.println("Marked favorite:", r.Title)
	} else {
		a.println("Unmarked favorite:", r.Title)
	}
	return nil
}
