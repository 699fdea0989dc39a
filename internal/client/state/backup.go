package state

import (
	"context"
	"io"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/exchange"
)

// ExportBackup writes the current in-memory collections as a backup
// document.
func (s *Service) ExportBackup(w io.Writer) error {
	return exchange.Export(w, s.state.Records(), s.state.Wishlist(), s.state.Config(), s.now())
}

// ImportBackup replaces the remote collections with the backup contents,
// then adopts them locally. Unlike regular mutations this awaits the
// remote writes: a replace that half-fails must surface, not vanish into
// the log.
func (s *Service) ImportBackup(ctx context.Context, b exchange.Backup) error {
	if err := s.remote.DeleteAll(ctx, common.CollectionRecords); err != nil {
		return err
	}
	if err := s.remote.DeleteAll(ctx, common.CollectionWishlist); err != nil {
		return err
	}
	for _, r := range b.Memories {
		if err := s.remote.PutRecord(ctx, r); err != nil {
			return err
		}
	}
	for _, w := range b.Bucket {
		if err := s.remote.PutWishlistItem(ctx, w); err != nil {
			return err
		}
	}
	if b.UserConfig != nil {
		if err := s.remote.PutConfig(ctx, *b.UserConfig); err != nil {
			return err
		}
	}

	s.state.SetRecords(b.Memories)
	s.state.SetWishlist(b.Bucket)
	if b.UserConfig != nil {
		s.state.SetConfig(*b.UserConfig)
		if err := s.snap.SaveConfig(ctx, *b.UserConfig); err != nil {
			s.logger.Warn(ctx, "config cache write failed", "error", err)
		}
	}
	s.saveRecords(ctx)
	s.saveWishlist(ctx)
	return nil
}
