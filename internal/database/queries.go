package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// getOne runs a single-row query and maps sql.ErrNoRows to a NotFoundError.
func getOne(ctx context.Context, db *sqlx.DB, dest interface{}, entity, query string, args ...interface{}) error {
	if err := db.GetContext(ctx, dest, db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Entity: entity}
		}
		return fmt.Errorf("failed to get %s: %w", strings.ToLower(entity), err)
	}
	return nil
}

// insertReturningID runs an INSERT ... RETURNING <pk> statement.
func insertReturningID(ctx context.Context, q sqlx.ExtContext, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := q.QueryRowxContext(ctx, q.Rebind(query), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// execAffecting runs an UPDATE and reports NotFoundError when no row matched.
func execAffecting(ctx context.Context, q sqlx.ExtContext, entity, query string, args ...interface{}) error {
	res, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", strings.ToLower(entity), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Entity: entity}
	}
	return nil
}

func countRows(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := db.GetContext(ctx, &n, db.Rebind(query), args...); err != nil {
		return 0, err
	}
	return n, nil
}

// reference names a parent row that a write points at.
type reference struct {
	entity string
	table  string
	column string
	id     int64
}

// checkReferences turns a dangling foreign key into a ReferenceError before the
// write reaches the database. Must not be called while a transaction holds the pool.
func checkReferences(ctx context.Context, db *sqlx.DB, refs ...reference) error {
	for _, ref := range refs {
		n, err := countRows(ctx, db, `SELECT COUNT(*) FROM `+ref.table+` WHERE `+ref.column+` = ?`, ref.id)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", strings.ToLower(ref.entity), err)
		}
		if n == 0 {
			return &ReferenceError{Entity: ref.entity}
		}
	}
	return nil
}

func areaRef(id int64) reference {
	return reference{entity: "Area", table: "areas", column: "area_id", id: id}
}

func citizenRef(id int64) reference {
	return reference{entity: "Citizen", table: "citizens", column: "citizen_id", id: id}
}

func billRef(id int64) reference {
	return reference{entity: "Bill", table: "bills", column: "bill_id", id: id}
}

func wasteRef(id int64) reference {
	return reference{entity: "Waste record", table: "waste", column: "waste_id", id: id}
}

// nullString and nullInt64 pass optional values as SQL NULL when unset.
func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt64(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
