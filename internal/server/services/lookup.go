package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
)

func lookupUser(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, username string) (*models.User, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}
	u, err := m.Users(db).GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}

func lookupGroup(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, name string, forUpdate bool) (*models.Group, error) {
	if name == "" {
		return nil, ErrGroupNotFound
	}
	repo := m.Groups(db)
	get := repo.GetByName
	if forUpdate {
		get = repo.GetByNameForUpdate
	}
	g, err := get(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("lookup group: %w", err)
	}
	return g, nil
}

// lookupPair resolves two usernames, failing on the first unknown one.
func lookupPair(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, a, b string) (*models.User, *models.User, error) {
	ua, err := lookupUser(ctx, m, db, a)
	if err != nil {
		return nil, nil, err
	}
	ub, err := lookupUser(ctx, m, db, b)
	if err != nil {
		return nil, nil, err
	}
	return ua, ub, nil
}
