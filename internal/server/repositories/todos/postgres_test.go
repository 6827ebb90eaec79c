package todos

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

const (
	ownerA = "11111111-1111-4111-8111-111111111111"
	todoID = "22222222-2222-4222-8222-222222222222"
)

var todoColumns = []string{"id", "user_id", "name", "description", "complete"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*name,\s*description,\s*complete\s+FROM\s+todos\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+seq$`

	mock.ExpectQuery(q).
		WithArgs(ownerA).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow("t1", ownerA, "buy milk", "2%", false).
			AddRow("t2", ownerA, "call mom", "", true))

	got, err := repo.ListByOwner(context.Background(), ownerA)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t1" || got[1].Complete != true {
		t.Fatalf("unexpected todos: %+v", got)
	}
}

func TestListByOwner_MalformedOwnerIsEmpty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	got, err := repo.ListByOwner(context.Background(), "not-a-uuid")
	if err != nil || len(got) != 0 {
		t.Fatalf("want empty list, got %v, %v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListByOwner_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+todos`).
		WithArgs(ownerA).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1"))

	if _, err := repo.ListByOwner(context.Background(), ownerA); err == nil {
		t.Fatal("expected scan error")
	}
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+todos\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(todoID).
		WillReturnRows(sqlmock.NewRows(todoColumns).AddRow(todoID, ownerA, "n", "d", false))

	got, err := repo.Get(context.Background(), todoID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.OwnerID != ownerA {
		t.Fatalf("unexpected todo: %+v", got)
	}

	mock.ExpectQuery(`FROM\s+todos\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(todoID).
		WillReturnError(sql.ErrNoRows)
	if _, err := repo.Get(context.Background(), todoID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+todos\s*\(user_id,\s*name,\s*description,\s*complete\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id$`

	mock.ExpectQuery(q).
		WithArgs(ownerA, "buy milk", "2%", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(todoID))

	todo := &models.Todo{OwnerID: ownerA, Name: "buy milk", Description: "2%"}
	id, err := repo.Create(context.Background(), todo)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != todoID || todo.ID != todoID {
		t.Fatalf("unexpected id: %q / %q", id, todo.ID)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+todos`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Todo{OwnerID: ownerA})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	done := true

	t.Run("any owner", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		q := `(?s)^UPDATE\s+todos\s+SET\s+name\s*=\s*COALESCE\(\$2,\s*name\),\s*description\s*=\s*COALESCE\(\$3,\s*description\),\s*complete\s*=\s*COALESCE\(\$4,\s*complete\)\s+WHERE\s+id\s*=\s*\$1$`
		mock.ExpectExec(q).
			WithArgs(todoID, nil, nil, true).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Update(context.Background(), todoID, AnyOwner, models.TodoPatch{Complete: &done}); err != nil {
			t.Fatalf("Update error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("scoped to owner", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`UPDATE\s+todos\s+SET.*WHERE\s+id\s*=\s*\$1\s+AND\s+user_id::text\s*=\s*\$5$`).
			WithArgs(todoID, nil, nil, true, ownerA).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), todoID, ownerA, models.TodoPatch{Complete: &done})
		if !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("want common.ErrorNotFound, got %v", err)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, _, db := newRepoWithMock(t)
		defer db.Close()

		if err := repo.Update(context.Background(), "42", AnyOwner, models.TodoPatch{}); !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("want common.ErrorNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+todos\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(todoID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), todoID, AnyOwner); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+todos\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id::text\s*=\s*\$2$`).
		WithArgs(todoID, ownerA).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), todoID, ownerA); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}

	mock.ExpectExec(`DELETE\s+FROM\s+todos`).
		WithArgs(todoID).
		WillReturnError(errors.New("db err"))
	if err := repo.Delete(context.Background(), todoID, AnyOwner); err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected db error, got %v", err)
	}
}
