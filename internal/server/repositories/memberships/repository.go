package memberships

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type Repository interface {
	// Request inserts a pending row; an existing row is left untouched.
	Request(ctx context.Context, userID, groupID string) error
	// AddApproved inserts an approved row or flips an existing one to approved.
	AddApproved(ctx context.Context, userID, groupID string) error
	// Approve flips a pending row to approved and reports whether one did.
	Approve(ctx context.Context, userID, groupID string) (bool, error)
	Get(ctx context.Context, userID, groupID string) (*models.Membership, error)
	// Remove deletes the row and reports whether one existed.
	Remove(ctx context.Context, userID, groupID string) (bool, error)
	ListPending(ctx context.Context, groupID string) ([]*models.Membership, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Membership, error)
	// EarliestApproved returns the approved member with the smallest
	// joined_at other than excludeUserID.
	EarliestApproved(ctx context.Context, groupID, excludeUserID string) (*models.Membership, error)
}
