package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// BanService records ban requests and enforces them on approval. Creating a
// request never restricts the target by itself.
type BanService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	runTx       dbx.Runner
	log         logging.Logger
}

func NewBanService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *BanService {
	return &BanService{
		db:          db,
		repomanager: m,
		runTx:       dbx.NewRunner(db, nil),
		log:         log.With("module", "bans"),
	}
}

func (s *BanService) Request(ctx context.Context, requester, target, reason string) (*models.BanRequest, error) {
	from, to, err := lookupPair(ctx, s.repomanager, s.db, requester, target)
	if err != nil {
		return nil, err
	}
	if from.ID == to.ID {
		return nil, ErrSelfBan
	}

	b, err := s.repomanager.Bans(s.db).Create(ctx, &models.BanRequest{
		RequesterID:   from.ID,
		TargetID:      to.ID,
		RequesterName: from.UserName,
		TargetName:    to.UserName,
		Reason:        reason,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "ban requested", "id", b.ID, "requester", requester, "target", target)
	return b, nil
}

func (s *BanService) ListPending(ctx context.Context) ([]*models.BanRequest, error) {
	return s.repomanager.Bans(s.db).ListPending(ctx)
}

// Approve decides the request and marks the target banned in the same
// transaction.
func (s *BanService) Approve(ctx context.Context, id string) (*models.BanRequest, error) {
	b, err := s.decide(ctx, id, models.BanApproved, func(ctx context.Context, tx dbx.DBTX, b *models.BanRequest) error {
		return s.repomanager.Users(tx).SetBanned(ctx, b.TargetID, true)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "ban approved", "id", id, "target", b.TargetName)
	return b, nil
}

func (s *BanService) Reject(ctx context.Context, id string) (*models.BanRequest, error) {
	b, err := s.decide(ctx, id, models.BanRejected, nil)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "ban rejected", "id", id, "target", b.TargetName)
	return b, nil
}

func (s *BanService) decide(ctx context.Context, id string, status models.BanStatus, then func(context.Context, dbx.DBTX, *models.BanRequest) error) (*models.BanRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBanNotFound
	}

	var b *models.BanRequest
	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Bans(tx)

		var err error
		b, err = repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrBanNotFound
			}
			return err
		}

		ok, err := repo.Decide(ctx, id, status)
		if err != nil {
			return err
		}
		if !ok {
			return ErrBanDecided
		}
		b.Status = status

		if then != nil {
			return then(ctx, tx, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
