package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
)

// MessageService stores private and group messages.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

func (s *MessageService) SendPrivate(ctx context.Context, sender, receiver, content string) (*models.PrivateMessage, error) {
	if content == "" {
		return nil, ErrEmptyField
	}
	from, to, err := lookupPair(ctx, s.repomanager, s.db, sender, receiver)
	if err != nil {
		return nil, err
	}

	msg, err := s.repomanager.Messages(s.db).CreatePrivate(ctx, &models.PrivateMessage{
		SenderID:     from.ID,
		ReceiverID:   to.ID,
		SenderName:   from.UserName,
		ReceiverName: to.UserName,
		Content:      content,
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversation returns the messages between a and b, oldest first. The
// result does not depend on argument order.
func (s *MessageService) Conversation(ctx context.Context, a, b string) ([]*models.PrivateMessage, error) {
	ua, ub, err := lookupPair(ctx, s.repomanager, s.db, a, b)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Messages(s.db).Conversation(ctx, ua.ID, ub.ID)
}

// SendGroup posts to a group. The approved-membership check and the insert
// happen in a single statement.
func (s *MessageService) SendGroup(ctx context.Context, sender, groupName, content string) (*models.GroupMessage, error) {
	if content == "" {
		return nil, ErrEmptyField
	}
	user, err := lookupUser(ctx, s.repomanager, s.db, sender)
	if err != nil {
		return nil, err
	}
	group, err := lookupGroup(ctx, s.repomanager, s.db, groupName, false)
	if err != nil {
		return nil, err
	}

	msg := &models.GroupMessage{GroupID: group.ID, SenderID: user.ID, SenderName: user.UserName, Content: content}
	ok, err := s.repomanager.Messages(s.db).CreateGroup(ctx, msg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotApproved
	}
	return msg, nil
}

func (s *MessageService) GroupConversation(ctx context.Context, groupName string) ([]*models.GroupMessage, error) {
	group, err := lookupGroup(ctx, s.repomanager, s.db, groupName, false)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Messages(s.db).GroupConversation(ctx, group.ID)
}
