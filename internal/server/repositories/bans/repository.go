package bans

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.BanRequest) (*models.BanRequest, error)
	ListPending(ctx context.Context) ([]*models.BanRequest, error)
	GetByID(ctx context.Context, id string) (*models.BanRequest, error)
	// Decide moves a pending request to status and reports whether it was
	// still pending.
	Decide(ctx context.Context, id string, status models.BanStatus) (bool, error)
}
