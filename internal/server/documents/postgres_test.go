package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ourstory-app/ourstory/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListAll_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*fields\s+FROM\s+documents\s+WHERE\s+collection\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id", "fields"}).
		AddRow("r1", []byte(`{"title":"Cena"}`)).
		AddRow("r2", []byte(`{"title":"Viaje"}`))
	mock.ExpectQuery(q).WithArgs("records").WillReturnRows(rows)

	docs, err := repo.ListAll(context.Background(), "records")
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "r1" || docs[1].ID != "r2" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+fields\s+FROM\s+documents\s+WHERE\s+collection\s*=\s*\$1\s+AND\s+id\s*=\s*\$2\s*$`
	mock.ExpectQuery(q).WithArgs("meta", "tennis").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "meta", "tennis")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestPut_Replace(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+documents\s*\(collection,\s*id,\s*fields\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s*\(collection,\s*id\)\s*DO\s+UPDATE\s+SET\s+fields\s*=\s*excluded\.fields,\s*updated_at\s*=\s*now\(\)\s*$`
	mock.ExpectExec(q).
		WithArgs("records", "r1", []byte(`{"title":"Cena"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Put(context.Background(), "records", "r1", json.RawMessage(`{"title":"Cena"}`), false)
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
}

func TestPut_Merge(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+documents.*DO\s+UPDATE\s+SET\s+fields\s*=\s*documents\.fields\s*\|\|\s*excluded\.fields,\s*updated_at\s*=\s*now\(\)\s*$`
	mock.ExpectExec(q).
		WithArgs("shared-config", "shared", []byte(`{"name":"N"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Put(context.Background(), "shared-config", "shared", json.RawMessage(`{"name":"N"}`), true)
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+documents\s+WHERE\s+collection\s*=\s*\$1\s+AND\s+id\s*=\s*\$2\s*$`
	mock.ExpectExec(q).WithArgs("records", "nope").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "records", "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteAll_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+documents\s+WHERE\s+collection\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs("records").WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteAll(context.Background(), "records"); err != nil {
		t.Fatalf("DeleteAll error: %v", err)
	}
}
