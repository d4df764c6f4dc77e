package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// These errors let the repository report outcomes in a database-agnostic
// way. The service layer translates them into domain errors.

// ErrNotFound is returned when a query for a single entity finds no rows,
// or an update/delete by id touches none.
var ErrNotFound = errors.New("repository: not found")

// ErrConflict is returned when a write violates a UNIQUE or PRIMARY KEY
// constraint.
var ErrConflict = errors.New("repository: conflict")

// isUniqueViolation reports whether err is a SQLite uniqueness violation.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
