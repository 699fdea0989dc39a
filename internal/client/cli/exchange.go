package cli

import (
	"context"
	"os"

	"github.com/ourstory-app/ourstory/internal/exchange"
)

// Export writes the full journal to a backup file.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: export <file>")
		return nil
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := a.svc.ExportBackup(f); err != nil {
		return err
	}
	a.println("Exported to", args[0])
	return nil
}

// Import replaces the journal with a backup file's contents. A document
// that fails to parse aborts before anything changes.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: import <file>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := exchange.Parse(f)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, "Replace everything with this backup?", a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.svc.ImportBackup(ctx, b); err != nil {
		return err
	}
	a.printf("Imported %d memories, %d wishes.\n", len(b.Memories), len(b.Bucket))
	return nil
}

// Reload re-syncs against the server in the background.
func (a *App) Reload(ctx context.Context) error {
	a.rec.Refresh(ctx)
	a.println("Sync started.")
	return nil
}
