package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// SendMessageInput carries a new directed message. ProjectID is optional;
// when set, the sender must have access to that project.
type SendMessageInput struct {
	ReceiverID string
	ProjectID  string
	Body       string
}

// MessageDetail is a message with its references resolved to display fields.
type MessageDetail struct {
	Message  *domain.Message
	Sender   *domain.UserRef
	Receiver *domain.UserRef
	Project  *domain.ProjectRef
}

// MessageService stores and lists directed messages, enforcing the same
// project-visibility rule as the project workflow.
type MessageService interface {
	Send(ctx context.Context, caller domain.Caller, input SendMessageInput) (*MessageDetail, error)
	// ListForProject returns the project's messages oldest first. The caller
	// must have access to the project.
	ListForProject(ctx context.Context, caller domain.Caller, projectID string) ([]*MessageDetail, error)
	// ListMine returns all messages the caller sent or received, newest first.
	ListMine(ctx context.Context, caller domain.Caller) ([]*MessageDetail, error)
	// ListWithUser returns the thread between the caller and another user,
	// oldest first.
	ListWithUser(ctx context.Context, caller domain.Caller, otherUserID string) ([]*MessageDetail, error)
	// MarkRead flips read to true. Only the receiver may call it; repeated
	// calls are idempotent.
	MarkRead(ctx context.Context, caller domain.Caller, messageID string) (*domain.Message, error)
	// Delete removes the message. Admin or original sender only.
	Delete(ctx context.Context, caller domain.Caller, messageID string) error
	// UnreadCount returns the number of unread messages addressed to the
	// caller.
	UnreadCount(ctx context.Context, caller domain.Caller) (int64, error)
}
