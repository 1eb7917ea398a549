package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type User struct {
	ID        int64     `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CreateUser inserts u. Emails are stored trimmed and lower-cased so signin
// lookups match.
func (s *Store) CreateUser(ctx context.Context, u *User) (int64, error) {
	u.Email = NormalizeEmail(u.Email)
	id, err := s.insertReturningID(ctx,
		`INSERT INTO users (first_name, last_name, email, password) VALUES (?, ?, ?, ?)`,
		u.FirstName, u.LastName, u.Email, u.Password)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	u.ID = id
	return id, nil
}

// UserByEmail returns the user registered with email, or ErrNotFound.
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u,
		s.db.Rebind(`SELECT id, first_name, last_name, email, password, created_at FROM users WHERE email = ?`),
		NormalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
