package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/employee-roster/internal/core/persist"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestStore_Get(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload FROM app_state WHERE name = $1`)).
		WithArgs("employeeAppState").
		WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow([]byte(`{"employees":{"list":[]}}`)))

	got, err := store.Get(context.Background(), "employeeAppState")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != `{"employees":{"list":[]}}` {
		t.Fatalf("unexpected payload %q", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_GetNotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payload FROM app_state WHERE name = $1`)).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, persist.ErrNotFound) {
		t.Fatalf("expected persist.ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_PutUpserts(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	payload := []byte(`{"app":{}}`)

	mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO app_state (name, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (name) DO UPDATE
           SET payload = EXCLUDED.payload,
               updated_at = EXCLUDED.updated_at
    `)).
		WithArgs("employeeAppState", payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := store.Put(context.Background(), "employeeAppState", payload); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM app_state WHERE name = $1`)).
		WithArgs("employeeAppState").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := store.Delete(context.Background(), "employeeAppState"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslatePgError(t *testing.T) {
	t.Parallel()

	missing := &pgconn.PgError{Code: undefinedTableCode}
	if !errors.Is(translatePgError(missing), ErrSchemaMissing) {
		t.Fatalf("expected ErrSchemaMissing")
	}

	other := errors.New("connection reset")
	if !errors.Is(translatePgError(other), other) {
		t.Fatalf("expected wrapped original error")
	}
}
