package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Payloads are kept in the blob store.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectFile = `SELECT f.id, f.sender_id, f.receiver_id, s.username, rc.username,
		f.filename, f.size, f.storage_key, f.created_at
	FROM files f
	JOIN users s ON s.id = f.sender_id
	JOIN users rc ON rc.id = f.receiver_id`

// Create inserts the file record and fills in ID and CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, f *models.File) (*models.File, error) {
	query := `
		INSERT INTO files (sender_id, receiver_id, filename, size, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, f.SenderID, f.ReceiverID, f.FileName, f.Size, f.StorageKey).
		Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// ListBetween returns all transfers exchanged by the pair.
func (r *PostgresRepository) ListBetween(ctx context.Context, userA, userB string) ([]*models.File, error) {
	query := selectFile + `
	WHERE (f.sender_id = $1 AND f.receiver_id = $2)
	   OR (f.sender_id = $2 AND f.receiver_id = $1)
	ORDER BY f.created_at, f.id`

	rows, err := r.db.QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		item, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single file row or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := selectFile + `
	WHERE f.id = $1`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	return f, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(s scanner) (*models.File, error) {
	f := &models.File{}
	err := s.Scan(&f.ID, &f.SenderID, &f.ReceiverID, &f.SenderName, &f.ReceiverName,
		&f.FileName, &f.Size, &f.StorageKey, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}
