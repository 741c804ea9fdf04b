package messages

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type Repository interface {
	CreatePrivate(ctx context.Context, m *models.PrivateMessage) (*models.PrivateMessage, error)
	// Conversation returns the messages exchanged between two users in both
	// directions, oldest first.
	Conversation(ctx context.Context, userA, userB string) ([]*models.PrivateMessage, error)
	// CreateGroup stores m only if the sender holds an approved membership
	// in the group at insert time. It reports whether the row was written.
	CreateGroup(ctx context.Context, m *models.GroupMessage) (bool, error)
	GroupConversation(ctx context.Context, groupID string) ([]*models.GroupMessage, error)
}
