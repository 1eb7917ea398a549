package database

import (
	"context"
	"fmt"
	"time"
)

type Feedback struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (s *Store) SaveFeedback(ctx context.Context, f *Feedback) (int64, error) {
	id, err := s.insertReturningID(ctx,
		`INSERT INTO responses (name, email, message) VALUES (?, ?, ?)`,
		f.Name, f.Email, f.Message)
	if err != nil {
		return 0, fmt.Errorf("save feedback: %w", err)
	}
	f.ID = id
	return id, nil
}
