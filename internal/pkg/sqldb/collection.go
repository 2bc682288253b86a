package sqldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows marks the absence of a matching row. It is the explicit "no such
// record" result, distinct from a storage failure, and is never wrapped in an
// *Error.
var ErrNoRows = pgx.ErrNoRows

// Error is the uniform storage failure. It carries the statement that failed
// together with the original driver diagnostic; callers log or surface it but
// never retry automatically.
type Error struct {
	Stmt string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("storage failure on %q: %v", e.Stmt, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *Error) Unwrap() error {
	return e.Err
}

func fail(stmt string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}
	return &Error{Stmt: stmt, Err: err}
}

// Collection executes table-parameterized CRUD statements for one row shape.
// The row struct T is mapped by column name via pgx's RowToStructByName, so
// its fields must carry db tags matching the table columns.
type Collection[T any] struct {
	pool  *pgxpool.Pool
	table string
}

// NewCollection binds a row shape to a table over the shared pool.
func NewCollection[T any](pool *pgxpool.Pool, table string) *Collection[T] {
	return &Collection[T]{pool: pool, table: table}
}

// All returns every row in the table in the store's natural order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	stmt := "SELECT * FROM " + c.table

	rows, err := c.pool.Query(ctx, stmt)
	if err != nil {
		return nil, fail(stmt, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fail(stmt, err)
	}
	return items, nil
}

// Get returns the row with the given id, or ErrNoRows.
func (c *Collection[T]) Get(ctx context.Context, id int64) (*T, error) {
	stmt := "SELECT * FROM " + c.table + " WHERE id = $1"
	return c.One(ctx, stmt, id)
}

// Insert writes a new row built from the supplied field set and re-reads it by
// the store-assigned id so defaults and timestamps are populated.
func (c *Collection[T]) Insert(ctx context.Context, fields Fields) (*T, error) {
	stmt, args, err := insertStatement(c.table, fields)
	if err != nil {
		return nil, err
	}

	var id int64
	if err := c.pool.QueryRow(ctx, stmt, args...).Scan(&id); err != nil {
		return nil, fail(stmt, err)
	}

	return c.Get(ctx, id)
}

// Update applies the supplied field set to the row with the given id and
// returns the refreshed row. ErrNoRows reports that no row matched and no
// write happened.
func (c *Collection[T]) Update(ctx context.Context, id int64, fields Fields) (*T, error) {
	stmt, args, err := updateStatement(c.table, id, fields)
	if err != nil {
		return nil, err
	}

	tag, err := c.pool.Exec(ctx, stmt, args...)
	if err != nil {
		return nil, fail(stmt, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNoRows
	}

	return c.Get(ctx, id)
}

// Delete removes the row with the given id and reports whether a row was
// actually removed.
func (c *Collection[T]) Delete(ctx context.Context, id int64) (bool, error) {
	stmt := "DELETE FROM " + c.table + " WHERE id = $1"

	tag, err := c.pool.Exec(ctx, stmt, id)
	if err != nil {
		return false, fail(stmt, err)
	}
	return tag.RowsAffected() > 0, nil
}

// One runs an arbitrary query expected to yield at most one row of the
// collection's shape. Specialized store lookups build on this primitive and
// inherit its failure normalization.
func (c *Collection[T]) One(ctx context.Context, stmt string, args ...any) (*T, error) {
	rows, err := c.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fail(stmt, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fail(stmt, err)
	}
	return item, nil
}

// Exec runs an arbitrary statement and returns the number of rows affected.
func (c *Collection[T]) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	tag, err := c.pool.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, fail(stmt, err)
	}
	return tag.RowsAffected(), nil
}
