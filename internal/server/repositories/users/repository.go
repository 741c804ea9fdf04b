package users

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	SetBanned(ctx context.Context, userID string, banned bool) error
	IsOperator(ctx context.Context, userID string) (bool, error)
}
