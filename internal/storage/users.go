package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chitieu-app/chitieu/internal/auth"
	"github.com/chitieu-app/chitieu/internal/common"
	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/mattn/go-sqlite3"
)

// CreateUser registers a new account. A duplicate username is reported as
// common.ErrDuplicateEntry, not propagated as a fatal database error.
func (s *Store) CreateUser(ctx context.Context, username, password string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(username, "username"); err != nil {
		return err
	}
	if err := validateString(password, "password"); err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users(username, password) VALUES (?, ?)`,
		username, hash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: username %q", common.ErrDuplicateEntry, username)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.cache.invalidateAll()
	return nil
}

// Authenticate verifies a username/password pair. It does not take the
// write gate; login is a read. An unknown username and a wrong password
// are indistinguishable to the caller.
func (s *Store) Authenticate(ctx context.Context, username, password string) error {
	user, err := s.GetUser(ctx, username)
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return common.ErrInvalidCredentials
	}
	return nil
}

// GetUser returns the stored account row for username, or
// common.ErrNotFound when no such account is registered.
func (s *Store) GetUser(ctx context.Context, username string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}

	var user model.User
	err := s.db.QueryRowContext(ctx,
		`SELECT username, password FROM users WHERE username = ?`, username).
		Scan(&user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %q", common.ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}
