package inbox

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/client/models"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Add stores n and fills in its ID.
func (r *SQLiteRepository) Add(ctx context.Context, n *models.Notification) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO inbox (kind, sender, receiver, file_name, received_at, read)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(n.Kind), n.Sender, n.Receiver, n.FileName, n.ReceivedAt.UTC(), n.Read)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get notification id: %w", err)
	}
	n.ID = id
	return nil
}

func (r *SQLiteRepository) Unread(ctx context.Context, receiver string) ([]models.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, sender, receiver, file_name, received_at
		FROM inbox WHERE receiver = ? AND read = 0
		ORDER BY id`, receiver)
	if err != nil {
		return nil, fmt.Errorf("failed to select notifications: %w", err)
	}
	defer rows.Close()

	var result []models.Notification
	for rows.Next() {
		var n models.Notification
		var kind string
		if err := rows.Scan(&n.ID, &kind, &n.Sender, &n.Receiver, &n.FileName, &n.ReceivedAt); err != nil {
			return nil, err
		}
		n.Kind = models.NotificationKind(kind)
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) MarkAllRead(ctx context.Context, receiver string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE inbox SET read = 1 WHERE receiver = ? AND read = 0`, receiver); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
