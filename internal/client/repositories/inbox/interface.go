// Package inbox persists server notifications received by the callback
// endpoint so they survive until the user reads them.
package inbox

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/client/models"
)

type Repository interface {
	Add(ctx context.Context, n *models.Notification) error
	// Unread lists unread notifications for receiver, oldest first.
	Unread(ctx context.Context, receiver string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, receiver string) error
}
