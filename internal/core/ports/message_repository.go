package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// FindByProject returns all messages scoped to the project, oldest first.
	FindByProject(ctx context.Context, projectID string) ([]*domain.Message, error)
	// FindByParticipant returns all messages the user sent or received,
	// newest first.
	FindByParticipant(ctx context.Context, userID string) ([]*domain.Message, error)
	// FindThread returns the conversation between two users in either
	// direction, oldest first.
	FindThread(ctx context.Context, userID, otherID string) ([]*domain.Message, error)
	// MarkRead sets read=true. The write is idempotent.
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// CountUnread counts messages addressed to the user with read=false.
	CountUnread(ctx context.Context, userID string) (int64, error)
}
