package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"faultapi/internal/model"
	"faultapi/internal/repository"
)

var ErrTextRequired = errors.New("text is required")

// MessageService defines the use cases behind the overflow endpoint.
type MessageService interface {
	// Store persists a message. Text length is NOT validated here: letting
	// oversized input reach the database and fail its CHECK constraint is the
	// behavior under test.
	Store(ctx context.Context, text string) (*model.Message, error)

	// Total returns the number of stored messages.
	Total(ctx context.Context) (int, error)
}

// messageService is a concrete implementation of MessageService.
type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService constructs a new MessageService.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) Store(ctx context.Context, text string) (*model.Message, error) {
	if text == "" {
		return nil, ErrTextRequired
	}

	msg := &model.Message{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *messageService) Total(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
