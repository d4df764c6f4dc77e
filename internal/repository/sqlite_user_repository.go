package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chatvault/backend/internal/model"
)

type sqliteUserRepository struct {
	db *sql.DB
}

func NewSQLiteUserRepository(db *sql.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

const userColumns = "id, username, email, password_hash, theme, created_at, updated_at"

func (r *sqliteUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, theme, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.Theme, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("could not insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read user id: %w", err)
	}
	user.ID = id
	return nil
}

// UserExists reports whether username or email is already taken as either a
// username or an email. Login accepts both in one field, so a value may only
// ever identify one account.
func (r *sqliteUserRepository) UserExists(ctx context.Context, username, email string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE username IN (?, ?) OR email IN (?, ?))"
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username, email, username, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *sqliteUserRepository) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE username = ? OR email = ? ORDER BY username = ? DESC LIMIT 1"
	return scanUser(r.db.QueryRowContext(ctx, query, login, login, login))
}

func (r *sqliteUserRepository) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return scanUser(r.db.QueryRowContext(ctx, query, userID))
}

func (r *sqliteUserRepository) UpdateUserTheme(ctx context.Context, userID int64, theme string) error {
	query := "UPDATE users SET theme = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, theme, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Theme, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// requireAffected turns an update or delete that matched no row into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
