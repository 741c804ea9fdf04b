package bans

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

const selectBan = `SELECT b.id, b.requester_id, b.target_id, rq.username, tg.username,
		b.reason, b.status, b.created_at, b.decided_at
	FROM ban_requests b
	JOIN users rq ON rq.id = b.requester_id
	JOIN users tg ON tg.id = b.target_id`

func (r *PostgresRepository) Create(ctx context.Context, b *models.BanRequest) (*models.BanRequest, error) {
	query :=
		`INSERT INTO ban_requests (requester_id, target_id, reason)
		 VALUES ($1, $2, $3)
		 RETURNING id, status, created_at`

	var status string
	err := r.db.QueryRowContext(ctx, query, b.RequesterID, b.TargetID, b.Reason).Scan(&b.ID, &status, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	b.Status = models.BanStatus(status)
	return b, nil
}

func (r *PostgresRepository) ListPending(ctx context.Context) ([]*models.BanRequest, error) {
	query := selectBan + `
	WHERE b.status = 'pending'
	ORDER BY b.created_at, b.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.BanRequest
	for rows.Next() {
		b, err := scanBan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.BanRequest, error) {
	b, err := scanBan(r.db.QueryRowContext(ctx, selectBan+`
	WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Decide(ctx context.Context, id string, status models.BanStatus) (bool, error) {
	query :=
		`UPDATE ban_requests SET status = $2, decided_at = now()
		 WHERE id = $1 AND status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBan(s scanner) (*models.BanRequest, error) {
	b := &models.BanRequest{}
	var (
		status    string
		decidedAt sql.NullTime
	)
	err := s.Scan(&b.ID, &b.RequesterID, &b.TargetID, &b.RequesterName, &b.TargetName,
		&b.Reason, &status, &b.CreatedAt, &decidedAt)
	if err != nil {
		return nil, err
	}
	b.Status = models.BanStatus(status)
	if decidedAt.Valid {
		t := decidedAt.Time
		b.DecidedAt = &t
	}
	return b, nil
}
