package bans

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/whatsut/internal/common"
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

var banCols = []string{"id", "requester_id", "target_id", "rq", "tg", "reason", "status", "created_at", "decided_at"}

func TestCreate_StartsPending(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+ban_requests\s*\(requester_id,\s*target_id,\s*reason\).*RETURNING\s+id,\s*status,\s*created_at`).
		WithArgs("u-a", "u-e", "spam").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at"}).AddRow("b-1", "pending", time.Now()))

	b, err := repo.Create(context.Background(), &models.BanRequest{RequesterID: "u-a", TargetID: "u-e", Reason: "spam"})
	require.NoError(t, err)
	assert.Equal(t, "b-1", b.ID)
	assert.Equal(t, models.BanPending, b.Status)
}

func TestListPending(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)WHERE\s+b\.status\s*=\s*'pending'\s+ORDER\s+BY\s+b\.created_at,\s*b\.id$`).
		WillReturnRows(sqlmock.NewRows(banCols).
			AddRow("b-1", "u-a", "u-e", "alice", "eve", "spam", "pending", time.Now(), nil))

	got, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "eve", got[0].TargetName)
	assert.Nil(t, got[0].DecidedAt)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	decided := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)WHERE\s+b\.id\s*=\s*\$1$`).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows(banCols).
			AddRow("b-1", "u-a", "u-e", "alice", "eve", "spam", "approved", time.Now(), decided))
	mock.ExpectQuery(`(?s)WHERE\s+b\.id\s*=\s*\$1$`).
		WithArgs("b-2").
		WillReturnError(sql.ErrNoRows)

	b, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.BanApproved, b.Status)
	require.NotNil(t, b.DecidedAt)
	assert.Equal(t, decided, *b.DecidedAt)

	_, err = repo.GetByID(context.Background(), "b-2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDecide_OnlyOnce(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `(?s)UPDATE\s+ban_requests\s+SET\s+status\s*=\s*\$2,\s*decided_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$1\s+AND\s+status\s*=\s*'pending'$`
	mock.ExpectExec(q).WithArgs("b-1", "approved").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("b-1", "rejected").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Decide(context.Background(), "b-1", models.BanApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Decide(context.Background(), "b-1", models.BanRejected)
	require.NoError(t, err)
	assert.False(t, ok)
}
