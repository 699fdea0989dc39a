package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/ourstory-app/ourstory/internal/common"
)

// InMemoryRepository backs handler tests and local experiments.
type InMemoryRepository struct {
	mu   sync.RWMutex
	data map[string]map[string]json.RawMessage // collection -> id -> fields
}

var _ Repository = (*InMemoryRepository)(nil)

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string]map[string]json.RawMessage)}
}

func (r *InMemoryRepository) ListAll(ctx context.Context, collection string) ([]Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var docs []Document
	for id, fields := range r.data[collection] {
		docs = append(docs, Document{Collection: collection, ID: id, Fields: fields})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, collection, id string) (Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fields, ok := r.data[collection][id]
	if !ok {
		return Document{}, common.ErrorNotFound
	}
	return Document{Collection: collection, ID: id, Fields: fields}, nil
}

func (r *InMemoryRepository) Put(ctx context.Context, collection, id string, fields json.RawMessage, merge bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.data[collection] == nil {
		r.data[collection] = make(map[string]json.RawMessage)
	}

	if merge {
		if prev, ok := r.data[collection][id]; ok {
			merged, err := mergeShallow(prev, fields)
			if err != nil {
				return err
			}
			r.data[collection][id] = merged
			return nil
		}
	}

	r.data[collection][id] = fields
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, collection, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[collection][id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.data[collection], id)
	return nil
}

func (r *InMemoryRepository) DeleteAll(ctx context.Context, collection string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, collection)
	return nil
}

func mergeShallow(prev, next json.RawMessage) (json.RawMessage, error) {
	var base, over map[string]json.RawMessage
	if err := json.Unmarshal(prev, &base); err != nil {
		return nil, fmt.Errorf("merge error: %w", err)
	}
	if err := json.Unmarshal(next, &over); err != nil {
		return nil, fmt.Errorf("merge error: %w", err)
	}
	for k, v := range over {
		base[k] = v
	}
	return json.Marshal(base)
}
