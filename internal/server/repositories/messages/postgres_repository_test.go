package messages

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreatePrivate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+messages\s*\(sender_id,\s*receiver_id,\s*content\).*RETURNING\s+id,\s*created_at`).
		WithArgs("u-a", "u-b", "hi").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	m, err := repo.CreatePrivate(context.Background(), &models.PrivateMessage{SenderID: "u-a", ReceiverID: "u-b", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.ID)
	assert.Equal(t, now, m.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePrivate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT\s+INTO\s+messages`).WillReturnError(errors.New("down"))

	_, err := repo.CreatePrivate(context.Background(), &models.PrivateMessage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestConversation_BothDirectionsOrdered(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	mock.ExpectQuery(`(?s)WHERE\s+\(m\.sender_id\s*=\s*\$1\s+AND\s+m\.receiver_id\s*=\s*\$2\)\s+OR\s+\(m\.sender_id\s*=\s*\$2\s+AND\s+m\.receiver_id\s*=\s*\$1\)\s+ORDER\s+BY\s+m\.created_at,\s*m\.id$`).
		WithArgs("u-a", "u-b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "s", "r", "content", "created_at"}).
			AddRow(int64(1), "u-a", "u-b", "alice", "bob", "hi", t1).
			AddRow(int64(2), "u-b", "u-a", "bob", "alice", "hey", t2))

	got, err := repo.Conversation(context.Background(), "u-a", "u-b")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].SenderName)
	assert.Equal(t, "alice", got[1].ReceiverName)
	assert.Equal(t, "hey", got[1].Content)
}

func TestCreateGroup_RequiresApprovedMembership(t *testing.T) {
	q := `(?s)INSERT\s+INTO\s+group_messages.*WHERE\s+EXISTS\s*\(.*approved\s*\)\s*RETURNING\s+id,\s*created_at`

	t.Run("member", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("g-1", "u-a", "yo").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), time.Now()))

		ok, err := repo.CreateGroup(context.Background(), &models.GroupMessage{GroupID: "g-1", SenderID: "u-a", Content: "yo"})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not a member", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("g-1", "u-x", "yo").WillReturnError(sql.ErrNoRows)

		ok, err := repo.CreateGroup(context.Background(), &models.GroupMessage{GroupID: "g-1", SenderID: "u-x", Content: "yo"})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGroupConversation(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)FROM\s+group_messages\s+gm.*WHERE\s+gm\.group_id\s*=\s*\$1\s+ORDER\s+BY\s+gm\.created_at,\s*gm\.id$`).
		WithArgs("g-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "sender_id", "username", "content", "created_at"}).
			AddRow(int64(1), "g-1", "u-a", "alice", "first", time.Now()))

	got, err := repo.GroupConversation(context.Background(), "g-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].SenderName)
}
