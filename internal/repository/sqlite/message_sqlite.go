package sqlite

import (
	"context"
	"database/sql"

	"faultapi/internal/model"
	"faultapi/internal/repository"
)

// MessageSQLite is a sqlite implementation of repository.MessageRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MessageSQLite struct {
	db *sql.DB
}

// NewMessageSQLite creates a new MessageSQLite repository.
func NewMessageSQLite(db *sql.DB) *MessageSQLite {
	return &MessageSQLite{db: db}
}

var _ repository.MessageRepository = (*MessageSQLite)(nil)

// Create inserts a new message row and returns the stored record. A CHECK
// constraint violation comes back as the driver's error, untouched.
func (r *MessageSQLite) Create(ctx context.Context, msg *model.Message) (*model.Message, error) {
	const q = `
		INSERT INTO messages (id, text, created_at)
		VALUES (?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, q, msg.ID, msg.Text, msg.CreatedAt); err != nil {
		return nil, err
	}
	out := *msg
	return &out, nil
}

// Count returns the total number of stored messages.
func (r *MessageSQLite) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM messages`
	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
