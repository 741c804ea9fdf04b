package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/blobstore"
	"github.com/dmitrijs2005/whatsut/internal/server/config"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	repomanager.RepositoryManager
	migrateErr error
	migrated   bool
}

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error {
	f.migrated = true
	return f.migrateErr
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

func stubStore(t *testing.T, pingErr error, m *fakeManager) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(pingErr)

	oldOpen, oldManager := openDB, newRepositoryManager
	openDB = func(string) (*sql.DB, error) { return db, nil }
	newRepositoryManager = func() repomanager.RepositoryManager { return m }
	t.Cleanup(func() { openDB, newRepositoryManager = oldOpen, oldManager })

	return mock
}

func TestNewApp_UnreachableStore(t *testing.T) {
	m := &fakeManager{}
	stubStore(t, errors.New("connection refused"), m)

	_, err := newApp(context.Background(), testConfig(), logging.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db unreachable")
	assert.False(t, m.migrated)
}

func TestNewApp_MigrationFailure(t *testing.T) {
	m := &fakeManager{migrateErr: errors.New("bad sql")}
	stubStore(t, nil, m)

	_, err := newApp(context.Background(), testConfig(), logging.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	m := &fakeManager{}
	mock := stubStore(t, nil, m)
	mock.ExpectClose()

	app, err := newApp(context.Background(), testConfig(), logging.Nop())
	require.NoError(t, err)
	assert.True(t, m.migrated)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewBlobStore_Selection(t *testing.T) {
	c := testConfig()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := newBlobStore(context.Background(), c, db)
	require.NoError(t, err)
	assert.IsType(t, &blobstore.PostgresStore{}, s)

	c.S3BaseEndpoint = "http://localhost:9000"
	s, err = newBlobStore(context.Background(), c, db)
	require.NoError(t, err)
	assert.IsType(t, &blobstore.S3Store{}, s)
}
