package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestPostgresRepositoryManager_ImplementsInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var m RepositoryManager = NewPostgresRepositoryManager(db)

	if _, ok := m.Users().(*users.PostgresRepository); !ok {
		t.Fatalf("Users() returned %T", m.Users())
	}
	if _, ok := m.Todos().(*todos.PostgresRepository); !ok {
		t.Fatalf("Todos() returned %T", m.Todos())
	}
}

func TestOpenPostgres(t *testing.T) {
	db, mock := newDB(t)

	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != "pgx" || dsn != "postgres://x" {
			t.Fatalf("unexpected open args: %q %q", driver, dsn)
		}
		return db, nil
	}
	defer func() { sqlOpen = orig }()

	mock.ExpectPing()
	mock.ExpectClose()

	m, err := OpenPostgres(context.Background(), "postgres://x")
	if err != nil {
		t.Fatalf("OpenPostgres error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenPostgres_PingError(t *testing.T) {
	db, mock := newDB(t)

	orig := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return db, nil }
	defer func() { sqlOpen = orig }()

	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	if _, err := OpenPostgres(context.Background(), "dsn"); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestOpenPostgres_OpenError(t *testing.T) {
	orig := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("bad driver") }
	defer func() { sqlOpen = orig }()

	if _, err := OpenPostgres(context.Background(), "dsn"); err == nil {
		t.Fatal("expected open error")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, got *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if got != db {
			return errors.New("unexpected db")
		}
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
