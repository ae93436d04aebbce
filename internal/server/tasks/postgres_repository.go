package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *Task) (*Task, error) {

	query :=
		`INSERT INTO tasks (id, user_id, title, description, due_date, priority, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description,
		task.DueDate, task.Priority, task.Status).Scan(&task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, filter Filter) ([]*Task, error) {

	query :=
		`SELECT id, user_id, title, description, due_date, priority, status, created_at
		 FROM tasks
		 WHERE user_id = $1
		 `
	args := []any{ownerID}

	if filter.Status != nil {
		query += ` AND status = $2`
		args = append(args, *filter.Status)
	}

	// created_at ordering is for determinism only; callers may re-sort
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Task, 0)
	for rows.Next() {
		task := &Task{}
		err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.DueDate, &task.Priority, &task.Status, &task.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// Update reads the current row and writes the patched version back inside
// one transaction. A missing or foreign task surfaces as common.ErrorNotFound
// from the initial read.
func (r *PostgresRepository) Update(ctx context.Context, ownerID, id string, patch Patch) (*Task, error) {

	task := &Task{}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		query :=
			`SELECT id, user_id, title, description, due_date, priority, status, created_at
			 FROM tasks
			 WHERE id = $1 AND user_id = $2
			 `
		err := tx.QueryRowContext(ctx, query, id, ownerID).Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.DueDate, &task.Priority, &task.Status, &task.CreatedAt)
		if err != nil {
			return err
		}

		// nothing to change: still report the row so an empty patch on a
		// foreign task looks the same as on a missing one
		if patch.IsEmpty() {
			return nil
		}

		patch.Apply(task)

		update :=
			`UPDATE tasks
			 SET title = $1, description = $2, due_date = $3, priority = $4, status = $5
			 WHERE id = $6 AND user_id = $7`
		_, err = tx.ExecContext(ctx, update,
			task.Title, task.Description, task.DueDate, task.Priority, task.Status,
			id, ownerID)
		return err
	})

	return r.translate(task, err)
}

func (r *PostgresRepository) translate(task *Task, err error) (*Task, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	// affected-row count deliberately ignored: delete is idempotent
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}
