package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/blobstore"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FileService records file transfers. Payloads go to the blob store, the
// metadata row to the files table.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	maxSize     int64
	newKey      func() string
	log         logging.Logger
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, blobs blobstore.Store, maxSize int64, log logging.Logger) *FileService {
	if maxSize <= 0 {
		maxSize = common.MaxFileSize
	}
	return &FileService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		maxSize:     maxSize,
		newKey:      blobstore.NewStorageKey,
		log:         log.With("module", "files"),
	}
}

// Send stores payload and records the transfer. Only the base name of
// fileName is kept.
func (s *FileService) Send(ctx context.Context, sender, receiver, fileName string, payload []byte) (*models.File, error) {
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, ErrEmptyField
	}
	if int64(len(payload)) > s.maxSize {
		return nil, ErrFileTooLarge
	}

	from, to, err := lookupPair(ctx, s.repomanager, s.db, sender, receiver)
	if err != nil {
		return nil, err
	}

	key := s.newKey()
	if err := s.blobs.Put(ctx, key, payload); err != nil {
		return nil, fmt.Errorf("store payload: %w", err)
	}

	f, err := s.repomanager.Files(s.db).Create(ctx, &models.File{
		SenderID:     from.ID,
		ReceiverID:   to.ID,
		SenderName:   from.UserName,
		ReceiverName: to.UserName,
		FileName:     fileName,
		Size:         int64(len(payload)),
		StorageKey:   key,
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.log.Warn(ctx, "orphaned blob", "key", key, "error", delErr)
		}
		return nil, err
	}
	return f, nil
}

// List returns the transfers between a and b in both directions.
func (s *FileService) List(ctx context.Context, a, b string) ([]*models.File, error) {
	ua, ub, err := lookupPair(ctx, s.repomanager, s.db, a, b)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Files(s.db).ListBetween(ctx, ua.ID, ub.ID)
}

// Download returns the file record and its payload. Ids that are not
// UUIDs are treated as unknown.
func (s *FileService) Download(ctx context.Context, id string) (*models.File, []byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, ErrFileNotFound
	}

	f, err := s.repomanager.Files(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}

	data, err := s.blobs.Get(ctx, f.StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "file payload missing", "file_id", id, "key", f.StorageKey)
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("load payload: %w", err)
	}
	return f, data, nil
}
