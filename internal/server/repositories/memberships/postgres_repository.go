package memberships

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Request(ctx context.Context, userID, groupID string) error {
	query :=
		`INSERT INTO memberships (user_id, group_id, approved)
		 VALUES ($1, $2, FALSE)
		 ON CONFLICT (user_id, group_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, groupID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) AddApproved(ctx context.Context, userID, groupID string) error {
	query :=
		`INSERT INTO memberships (user_id, group_id, approved)
		 VALUES ($1, $2, TRUE)
		 ON CONFLICT (user_id, group_id) DO UPDATE SET approved = TRUE`

	if _, err := r.db.ExecContext(ctx, query, userID, groupID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Approve(ctx context.Context, userID, groupID string) (bool, error) {
	query :=
		`UPDATE memberships SET approved = TRUE
		 WHERE user_id = $1 AND group_id = $2 AND NOT approved`

	return r.affectedOne(ctx, query, userID, groupID)
}

func (r *PostgresRepository) Get(ctx context.Context, userID, groupID string) (*models.Membership, error) {
	query :=
		`SELECT m.user_id, u.username, m.group_id, m.approved, m.joined_at
		 FROM memberships m JOIN users u ON u.id = m.user_id
		 WHERE m.user_id = $1 AND m.group_id = $2`

	m, err := scanMembership(r.db.QueryRowContext(ctx, query, userID, groupID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, groupID string) (bool, error) {
	return r.affectedOne(ctx, `DELETE FROM memberships WHERE user_id = $1 AND group_id = $2`, userID, groupID)
}

func (r *PostgresRepository) ListPending(ctx context.Context, groupID string) ([]*models.Membership, error) {
	query :=
		`SELECT m.user_id, u.username, m.group_id, m.approved, m.joined_at
		 FROM memberships m JOIN users u ON u.id = m.user_id
		 WHERE m.group_id = $1 AND NOT m.approved
		 ORDER BY m.joined_at, u.username`

	return r.list(ctx, query, groupID)
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Membership, error) {
	query :=
		`SELECT m.user_id, u.username, m.group_id, m.approved, m.joined_at
		 FROM memberships m JOIN users u ON u.id = m.user_id
		 WHERE m.user_id = $1`

	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) EarliestApproved(ctx context.Context, groupID, excludeUserID string) (*models.Membership, error) {
	query :=
		`SELECT m.user_id, u.username, m.group_id, m.approved, m.joined_at
		 FROM memberships m JOIN users u ON u.id = m.user_id
		 WHERE m.group_id = $1 AND m.approved AND m.user_id <> $2
		 ORDER BY m.joined_at, u.username
		 LIMIT 1`

	m, err := scanMembership(r.db.QueryRowContext(ctx, query, groupID, excludeUserID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) affectedOne(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]*models.Membership, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(s scanner) (*models.Membership, error) {
	m := &models.Membership{}
	if err := s.Scan(&m.UserID, &m.UserName, &m.GroupID, &m.Approved, &m.JoinedAt); err != nil {
		return nil, err
	}
	return m, nil
}
