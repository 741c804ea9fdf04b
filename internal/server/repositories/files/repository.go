package files

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.File) (*models.File, error)
	// ListBetween returns the transfers between two users in both
	// directions, oldest first.
	ListBetween(ctx context.Context, userA, userB string) ([]*models.File, error)
	GetByID(ctx context.Context, id string) (*models.File, error)
}
