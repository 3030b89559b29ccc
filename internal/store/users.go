package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// User is one account. Email is optional; login is by name.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

// CreateUser inserts a new account and returns its id.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}

	var emailVal any
	if e := strings.TrimSpace(strings.ToLower(email)); e != "" {
		emailVal = e
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`,
		name, emailVal, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// GetUserByName finds an account by name. Returns (nil, nil) when absent.
func (s *Store) GetUserByName(ctx context.Context, name string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, COALESCE(email, ''), password_hash FROM users WHERE name = ?`,
		strings.TrimSpace(name))

	u := &User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// GetUserByID finds an account by id. Returns (nil, nil) when absent.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, COALESCE(email, ''), password_hash FROM users WHERE id = ?`, id)

	u := &User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
