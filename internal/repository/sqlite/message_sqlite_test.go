package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"faultapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMessageSQLite_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMessageSQLite(db)
	ctx := context.Background()

	now := time.Now().UTC()
	msg := &model.Message{
		ID:        "test-uuid",
		Text:      "short text",
		CreatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO messages").
			WithArgs(msg.ID, msg.Text, msg.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		result, err := repo.Create(ctx, msg)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, msg.ID, result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("constraint violation", func(t *testing.T) {
		constraintErr := errors.New("constraint failed: CHECK constraint failed: length(text) < 16")
		mock.ExpectExec("INSERT INTO messages").
			WithArgs(msg.ID, msg.Text, msg.CreatedAt).
			WillReturnError(constraintErr)

		result, err := repo.Create(ctx, msg)

		assert.Error(t, err)
		assert.ErrorIs(t, err, constraintErr)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMessageSQLite_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMessageSQLite(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"count"}).AddRow(3)
		mock.ExpectQuery("SELECT COUNT").WillReturnRows(rows)

		total, err := repo.Count(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("db error"))

		_, err := repo.Count(ctx)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
