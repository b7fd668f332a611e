package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"recruitd/internal/errs"
)

// Versioned is any entity with a monotonically increasing version counter,
// updatable only via compare-and-increment.
type Versioned interface {
	EntityVersion() int64
}

// RowOps binds a Guard to one table's SQL. Implementations translate between
// the entity and its row; they never decide version semantics.
type RowOps[E Versioned] interface {
	// SelectForUpdate loads and row-locks the entity, returning
	// errs.ErrNotFound when absent.
	SelectForUpdate(ctx context.Context, tx pgx.Tx, id int64) (E, error)
	// Store writes the mutated entity with its new version.
	Store(ctx context.Context, tx pgx.Tx, id int64, e E, newVersion int64) error
}

// Guard runs check-version, mutate, increment as one atomic unit against the
// backing store. Two concurrent callers who both read version V can never both
// succeed; the loser gets *errs.StaleVersionError and must re-fetch and decide,
// retry is never automatic.
type Guard[E Versioned] struct {
	db  *DB
	ops RowOps[E]
}

// NewGuard constructs a guard over one table.
func NewGuard[E Versioned](db *DB, ops RowOps[E]) *Guard[E] {
	return &Guard[E]{db: db, ops: ops}
}

// AttemptUpdate applies mutate to the entity identified by id if its stored
// version equals expectedVersion, then persists it with version+1. It returns
// the mutated entity and the new version. On version mismatch nothing is
// written and the error carries the current stored version.
func (g *Guard[E]) AttemptUpdate(
	ctx context.Context, id, expectedVersion int64, mutate func(E) E,
) (e E, newVersion int64, err error) {
	var zero E

	tx, err := g.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return zero, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = cerr
		}
	}()

	cur, err := g.ops.SelectForUpdate(ctx, tx, id)
	if err != nil {
		return zero, 0, err
	}
	if cur.EntityVersion() != expectedVersion {
		err = &errs.StaleVersionError{Current: cur.EntityVersion()}
		return zero, 0, err
	}

	next := mutate(cur)
	newVersion = expectedVersion + 1
	if err = g.ops.Store(ctx, tx, id, next, newVersion); err != nil {
		return zero, 0, err
	}
	return next, newVersion, nil
}
