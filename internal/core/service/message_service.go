package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// UnreadCounter abstracts the unread-message counter cache (Redis). Cache
// failures must never fail the operation; the service falls back to a store
// count.
type UnreadCounter interface {
	Incr(ctx context.Context, userID string) error
	Reset(ctx context.Context, userID string) error
	// Get returns the cached count. ok is false on a cache miss.
	Get(ctx context.Context, userID string) (count int64, ok bool, err error)
	Set(ctx context.Context, userID string, count int64) error
}

// MessageService stores directed messages and enforces the visibility rules
// shared with the project workflow.
type MessageService struct {
	messages ports.MessageRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	unread   UnreadCounter
	logger   zerolog.Logger
}

func NewMessageService(
	messages ports.MessageRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	unread UnreadCounter,
	logger zerolog.Logger,
) *MessageService {
	return &MessageService{
		messages: messages,
		projects: projects,
		users:    users,
		unread:   unread,
		logger:   logger,
	}
}

// Send persists a message from the caller to the receiver. When the message
// is project-scoped, the caller must have access to the project under the
// same rule as project reads.
func (s *MessageService) Send(ctx context.Context, caller domain.Caller, input ports.SendMessageInput) (*ports.MessageDetail, error) {
	var missing []string
	if input.ReceiverID == "" {
		missing = append(missing, "receiver_id")
	}
	if input.Body == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	if _, err := s.users.FindByID(ctx, input.ReceiverID); err != nil {
		return nil, err
	}

	if input.ProjectID != "" {
		project, err := s.projects.FindByID(ctx, input.ProjectID)
		if err != nil {
			return nil, err
		}
		if !domain.CanAccessProject(caller, project) {
			return nil, domain.ErrForbidden
		}
	}

	created, err := s.messages.Create(ctx, &domain.Message{
		SenderID:   caller.ID,
		ReceiverID: input.ReceiverID,
		ProjectID:  input.ProjectID,
		Body:       input.Body,
		Read:       false,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.unread.Incr(ctx, input.ReceiverID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", input.ReceiverID).Msg("unread counter increment failed")
	}

	s.logger.Info().
		Str("message_id", created.ID).
		Str("sender_id", caller.ID).
		Str("receiver_id", input.ReceiverID).
		Msg("message sent")

	return s.detail(ctx, created)
}

// ListForProject returns the project's messages oldest first. Access follows
// the project-visibility rule.
func (s *MessageService) ListForProject(ctx context.Context, caller domain.Caller, projectID string) ([]*ports.MessageDetail, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(caller, project) {
		return nil, domain.ErrForbidden
	}

	messages, err := s.messages.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, messages)
}

// ListMine returns every message the caller sent or received, newest first.
func (s *MessageService) ListMine(ctx context.Context, caller domain.Caller) ([]*ports.MessageDetail, error) {
	messages, err := s.messages.FindByParticipant(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, messages)
}

// ListWithUser returns the thread between the caller and the given user,
// oldest first.
func (s *MessageService) ListWithUser(ctx context.Context, caller domain.Caller, otherUserID string) ([]*ports.MessageDetail, error) {
	messages, err := s.messages.FindThread(ctx, caller.ID, otherUserID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, messages)
}

// MarkRead flips the read flag. Only the receiver may call it; a repeated
// call is a no-op, never an error.
func (s *MessageService) MarkRead(ctx context.Context, caller domain.Caller, messageID string) (*domain.Message, error) {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMarkRead(caller, msg) {
		return nil, domain.ErrForbidden
	}

	if !msg.Read {
		if err := s.messages.MarkRead(ctx, messageID); err != nil {
			return nil, err
		}
		msg.Read = true

		if err := s.unread.Reset(ctx, caller.ID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", caller.ID).Msg("unread counter reset failed")
		}
	}

	return msg, nil
}

// Delete removes the message. Only an admin or the original sender may call
// it.
func (s *MessageService) Delete(ctx context.Context, caller domain.Caller, messageID string) error {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if !domain.CanDeleteMessage(caller, msg) {
		return domain.ErrForbidden
	}
	if err := s.messages.Delete(ctx, messageID); err != nil {
		return err
	}

	s.logger.Info().
		Str("message_id", messageID).
		Str("deleted_by", caller.ID).
		Msg("message deleted")
	return nil
}

// UnreadCount returns the caller's unread-message count, served from the
// counter cache when warm and recomputed from the store otherwise.
func (s *MessageService) UnreadCount(ctx context.Context, caller domain.Caller) (int64, error) {
	count, ok, err := s.unread.Get(ctx, caller.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", caller.ID).Msg("unread counter read failed, falling back to store")
	} else if ok {
		return count, nil
	}

	count, err = s.messages.CountUnread(ctx, caller.ID)
	if err != nil {
		return 0, err
	}
	if err := s.unread.Set(ctx, caller.ID, count); err != nil {
		s.logger.Warn().Err(err).Str("user_id", caller.ID).Msg("unread counter warm failed")
	}
	return count, nil
}

func (s *MessageService) detail(ctx context.Context, m *domain.Message) (*ports.MessageDetail, error) {
	details, err := s.details(ctx, []*domain.Message{m})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

// details resolves sender/receiver/project references for a batch of
// messages. A dangling project reference (deleted project) is left
// unresolved rather than failing the listing.
func (s *MessageService) details(ctx context.Context, messages []*domain.Message) ([]*ports.MessageDetail, error) {
	userIDs := make([]string, 0, len(messages)*2)
	for _, m := range messages {
		userIDs = append(userIDs, m.SenderID, m.ReceiverID)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	projectsByID := make(map[string]*domain.Project)
	details := make([]*ports.MessageDetail, 0, len(messages))
	for _, m := range messages {
		d := &ports.MessageDetail{Message: m}
		if u, ok := usersByID[m.SenderID]; ok {
			d.Sender = refOf(u.Ref())
		}
		if u, ok := usersByID[m.ReceiverID]; ok {
			d.Receiver = refOf(u.Ref())
		}
		if m.ProjectID != "" {
			p, ok := projectsByID[m.ProjectID]
			if !ok {
				if found, err := s.projects.FindByID(ctx, m.ProjectID); err == nil {
					p = found
					projectsByID[m.ProjectID] = p
				}
			}
			if p != nil {
				d.Project = refOf(p.Ref())
			}
		}
		details = append(details, d)
	}
	return details, nil
}
