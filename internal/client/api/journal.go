package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
	"github.com/ourstory-app/ourstory/internal/netx"
)

// Typed helpers over the document collections.

func (c *Client) ListRecords(ctx context.Context) ([]journal.Record, error) {
	docs, err := c.ListAll(ctx, common.CollectionRecords)
	if err != nil {
		return nil, err
	}
	records := make([]journal.Record, 0, len(docs))
	for _, d := range docs {
		var r journal.Record
		if err := json.Unmarshal(d.Fields, &r); err != nil {
			return nil, fmt.Errorf("record decode error: %w", err)
		}
		if r.ID == "" {
			r.ID = d.ID
		}
		records = append(records, r)
	}
	return records, nil
}

func (c *Client) PutRecord(ctx context.Context, r journal.Record) error {
	return c.Put(ctx, common.CollectionRecords, r.ID, r, false)
}

func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.Delete(ctx, common.CollectionRecords, id)
}

func (c *Client) ListWishlist(ctx context.Context) ([]journal.WishlistItem, error) {
	docs, err := c.ListAll(ctx, common.CollectionWishlist)
	if err != nil {
		return nil, err
	}
	items := make([]journal.WishlistItem, 0, len(docs))
	for _, d := range docs {
		var w journal.WishlistItem
		if err := json.Unmarshal(d.Fields, &w); err != nil {
			return nil, fmt.Errorf("wishlist decode error: %w", err)
		}
		if w.ID == "" {
			w.ID = d.ID
		}
		items = append(items, w)
	}
	return items, nil
}

func (c *Client) PutWishlistItem(ctx context.Context, w journal.WishlistItem) error {
	return c.Put(ctx, common.CollectionWishlist, w.ID, w, false)
}

func (c *Client) DeleteWishlistItem(ctx context.Context, id string) error {
	return c.Delete(ctx, common.CollectionWishlist, id)
}

func (c *Client) GetConfig(ctx context.Context) (journal.SharedConfig, error) {
	var cfg journal.SharedConfig
	fields, err := c.Get(ctx, common.CollectionConfig, common.SharedConfigID)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(fields, &cfg); err != nil {
		return cfg, fmt.Errorf("config decode error: %w", err)
	}
	return cfg, nil
}

func (c *Client) PutConfig(ctx context.Context, cfg journal.SharedConfig) error {
	return c.Put(ctx, common.CollectionConfig, common.SharedConfigID, cfg, false)
}

// MergeConfig updates only the given config fields, leaving the rest as is.
func (c *Client) MergeConfig(ctx context.Context, fields map[string]any) error {
	return c.Put(ctx, common.CollectionConfig, common.SharedConfigID, fields, true)
}

func (c *Client) GetHighScore(ctx context.Context) (journal.HighScore, error) {
	var hs journal.HighScore
	fields, err := c.Get(ctx, common.CollectionMeta, common.HighScoreID)
	if err != nil {
		return hs, err
	}
	if err := json.Unmarshal(fields, &hs); err != nil {
		return hs, fmt.Errorf("high score decode error: %w", err)
	}
	return hs, nil
}

func (c *Client) PutHighScore(ctx context.Context, hs journal.HighScore) error {
	return c.Put(ctx, common.CollectionMeta, common.HighScoreID, hs, false)
}

// UploadImage asks for a presigned URL, uploads the data to it, and
// returns the public URL of the stored object.
func (c *Client) UploadImage(ctx context.Context, recordID, fileName string, data []byte, contentType string) (string, error) {
	p, err := c.Presign(ctx, recordID, fileName)
	if err != nil {
		return "", err
	}
	if err := netx.UploadToPresignedURL(ctx, p.UploadURL, data, contentType); err != nil {
		return "", err
	}
	return p.PublicURL, nil
}
