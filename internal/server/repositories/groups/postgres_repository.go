package groups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

const selectGroup = `SELECT g.id, g.name, g.admin_id, u.username, g.admin_on_leave, g.created_at
		 FROM groups g JOIN users u ON u.id = g.admin_id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, group *models.Group) (*models.Group, error) {
	query :=
		`INSERT INTO groups (name, admin_id, admin_on_leave)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, group.Name, group.AdminID, string(group.OnLeave)).Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return group, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	return r.get(ctx, selectGroup+`
		 WHERE g.name = $1`, name)
}

func (r *PostgresRepository) GetByNameForUpdate(ctx context.Context, name string) (*models.Group, error) {
	return r.get(ctx, selectGroup+`
		 WHERE g.name = $1
		 FOR UPDATE OF g`, name)
}

func (r *PostgresRepository) get(ctx context.Context, query string, name string) (*models.Group, error) {
	g, err := scanGroup(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Group, error) {
	rows, err := r.db.QueryContext(ctx, selectGroup+`
		 ORDER BY g.name`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) SetAdmin(ctx context.Context, groupID, adminID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE groups SET admin_id = $2 WHERE id = $1`, groupID, adminID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, groupID string) error {
	cascade := []string{
		`DELETE FROM group_messages WHERE group_id = $1`,
		`DELETE FROM memberships WHERE group_id = $1`,
	}
	for _, q := range cascade {
		if _, err := r.db.ExecContext(ctx, q, groupID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGroup(s scanner) (*models.Group, error) {
	g := &models.Group{}
	var policy string
	if err := s.Scan(&g.ID, &g.Name, &g.AdminID, &g.AdminName, &policy, &g.CreatedAt); err != nil {
		return nil, err
	}
	g.OnLeave = models.LeavePolicy(policy)
	return g, nil
}
