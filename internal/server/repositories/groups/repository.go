package groups

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, group *models.Group) (*models.Group, error)
	GetByName(ctx context.Context, name string) (*models.Group, error)
	// GetByNameForUpdate locks the group row until the surrounding
	// transaction ends.
	GetByNameForUpdate(ctx context.Context, name string) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
	SetAdmin(ctx context.Context, groupID, adminID string) error
	// Delete removes the group together with its memberships and messages.
	Delete(ctx context.Context, groupID string) error
}
