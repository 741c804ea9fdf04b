package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreatePrivate(ctx context.Context, m *models.PrivateMessage) (*models.PrivateMessage, error) {
	query :=
		`INSERT INTO messages (sender_id, receiver_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, m.SenderID, m.ReceiverID, m.Content).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Conversation(ctx context.Context, userA, userB string) ([]*models.PrivateMessage, error) {
	query :=
		`SELECT m.id, m.sender_id, m.receiver_id, s.username, rc.username, m.content, m.created_at
		 FROM messages m
		 JOIN users s ON s.id = m.sender_id
		 JOIN users rc ON rc.id = m.receiver_id
		 WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		    OR (m.sender_id = $2 AND m.receiver_id = $1)
		 ORDER BY m.created_at, m.id`

	rows, err := r.db.QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.PrivateMessage
	for rows.Next() {
		m := &models.PrivateMessage{}
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.SenderName, &m.ReceiverName, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, m *models.GroupMessage) (bool, error) {
	query :=
		`INSERT INTO group_messages (group_id, sender_id, content)
		 SELECT $1, $2, $3
		 WHERE EXISTS (
		     SELECT 1 FROM memberships
		     WHERE group_id = $1 AND user_id = $2 AND approved
		 )
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, m.GroupID, m.SenderID, m.Content).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) GroupConversation(ctx context.Context, groupID string) ([]*models.GroupMessage, error) {
	query :=
		`SELECT gm.id, gm.group_id, gm.sender_id, u.username, gm.content, gm.created_at
		 FROM group_messages gm
		 JOIN users u ON u.id = gm.sender_id
		 WHERE gm.group_id = $1
		 ORDER BY gm.created_at, gm.id`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.GroupMessage
	for rows.Next() {
		m := &models.GroupMessage{}
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.SenderName, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
