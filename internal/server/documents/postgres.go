package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAll(ctx context.Context, collection string) ([]Document, error) {
	query :=
		`SELECT id, fields FROM documents
		 WHERE collection = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		d := Document{Collection: collection}
		if err := rows.Scan(&d.ID, &d.Fields); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return docs, nil
}

func (r *PostgresRepository) Get(ctx context.Context, collection, id string) (Document, error) {
	query :=
		`SELECT fields FROM documents
		 WHERE collection = $1 AND id = $2
		 `

	d := Document{Collection: collection, ID: id}
	err := r.db.QueryRowContext(ctx, query, collection, id).Scan(&d.Fields)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, common.ErrorNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}

func (r *PostgresRepository) Put(ctx context.Context, collection, id string, fields json.RawMessage, merge bool) error {
	var query string
	if merge {
		// shallow JSONB merge, top-level keys only
		query =
			`INSERT INTO documents (collection, id, fields)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (collection, id)
			 DO UPDATE SET fields = documents.fields || excluded.fields, updated_at = now()
			 `
	} else {
		query =
			`INSERT INTO documents (collection, id, fields)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (collection, id)
			 DO UPDATE SET fields = excluded.fields, updated_at = now()
			 `
	}

	if _, err := r.db.ExecContext(ctx, query, collection, id, fields); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, collection string) error {
	query := `DELETE FROM documents WHERE collection = $1`

	if _, err := r.db.ExecContext(ctx, query, collection); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
