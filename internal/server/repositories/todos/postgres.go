package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByOwner returns the owner's todos in insertion order.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	if uuid.Validate(ownerID) != nil {
		return []*models.Todo{}, nil
	}

	query := `SELECT id, user_id, name, description, complete FROM todos
		WHERE user_id = $1
		ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Todo{}
	for rows.Next() {
		var item models.Todo
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Description, &item.Complete); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Todo, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrorNotFound
	}

	query := `SELECT id, user_id, name, description, complete FROM todos
		WHERE id = $1`

	item := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.OwnerID, &item.Name, &item.Description, &item.Complete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (string, error) {
	query := `INSERT INTO todos (user_id, name, description, complete)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id string
	err := r.db.QueryRowContext(ctx, query, todo.OwnerID, todo.Name, todo.Description, todo.Complete).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	todo.ID = id
	return id, nil
}

// Update merges the non-nil patch fields into the row in one statement.
func (r *PostgresRepository) Update(ctx context.Context, id string, ownerID string, patch models.TodoPatch) error {
	if uuid.Validate(id) != nil {
		return common.ErrorNotFound
	}

	query := `UPDATE todos SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			complete = COALESCE($4, complete)
		WHERE id = $1`
	args := []any{id, patch.Name, patch.Description, patch.Complete}

	if ownerID != AnyOwner {
		query += ` AND user_id::text = $5`
		args = append(args, ownerID)
	}

	return r.execOne(ctx, query, args...)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, ownerID string) error {
	if uuid.Validate(id) != nil {
		return common.ErrorNotFound
	}

	query := `DELETE FROM todos WHERE id = $1`
	args := []any{id}

	if ownerID != AnyOwner {
		query += ` AND user_id::text = $2`
		args = append(args, ownerID)
	}

	return r.execOne(ctx, query, args...)
}

// execOne runs a statement that must touch exactly one row; zero rows is
// reported as common.ErrorNotFound.
func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 0:
		return common.ErrorNotFound
	case 1:
		return nil
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
