package repository

import (
	"context"

	"faultapi/internal/model"
)

// MessageRepository defines data access for fixture messages using SQL queries only.
// No business logic here — strictly persistence operations. Constraint violations
// from the database are returned unwrapped so callers can surface them.
type MessageRepository interface {
	// Create inserts a new message record and returns the stored row.
	Create(ctx context.Context, msg *model.Message) (*model.Message, error)

	// Count returns the number of stored messages.
	Count(ctx context.Context) (int, error)
}
