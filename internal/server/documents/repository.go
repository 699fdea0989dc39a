// Package documents implements the server's authoritative store: named
// collections of schemaless JSON documents. The journal collections
// (records, wishlist-items, shared-config, meta) are all served by the
// same table.
package documents

import (
	"context"
	"encoding/json"
)

// Document is one stored document.
type Document struct {
	Collection string          `json:"-"`
	ID         string          `json:"id"`
	Fields     json.RawMessage `json:"fields"`
}

// Repository is the document store contract. Put with merge performs a
// shallow merge of the given fields over the stored ones; without merge
// it replaces the document wholesale, creating it when absent.
type Repository interface {
	ListAll(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Put(ctx context.Context, collection, id string, fields json.RawMessage, merge bool) error
	Delete(ctx context.Context, collection, id string) error
	DeleteAll(ctx context.Context, collection string) error
}
