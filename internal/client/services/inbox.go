package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/client/models"
	"github.com/dmitrijs2005/whatsut/internal/client/repositories/inbox"
	"github.com/dmitrijs2005/whatsut/internal/logging"
)

const storeTimeout = 5 * time.Second

// InboxService records callback notifications and hands them to a live
// printer. It implements client.NotificationHandler.
type InboxService struct {
	repo  inbox.Repository
	log   logging.Logger
	now   func() time.Time
	onNew func(models.Notification)
}

// NewInboxService stores into repo; onNew (optional) is called after each
// notification is stored.
func NewInboxService(repo inbox.Repository, log logging.Logger, onNew func(models.Notification)) *InboxService {
	if log == nil {
		log = logging.Nop()
	}
	return &InboxService{repo: repo, log: log, now: time.Now, onNew: onNew}
}

func (s *InboxService) PrivateMessage(sender, receiver string) {
	s.record(models.Notification{Kind: models.NotificationMessage, Sender: sender, Receiver: receiver})
}

func (s *InboxService) FileTransfer(sender, receiver, fileName string) {
	s.record(models.Notification{Kind: models.NotificationFile, Sender: sender, Receiver: receiver, FileName: fileName})
}

func (s *InboxService) record(n models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	n.ReceivedAt = s.now()
	if err := s.repo.Add(ctx, &n); err != nil {
		s.log.Error(ctx, "store notification", "kind", string(n.Kind), "sender", n.Sender, "error", err)
	}
	if s.onNew != nil {
		s.onNew(n)
	}
}

// Unread returns unread notifications for userName and marks them read.
func (s *InboxService) Unread(ctx context.Context, userName string) ([]models.Notification, error) {
	items, err := s.repo.Unread(ctx, userName)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	if err := s.repo.MarkAllRead(ctx, userName); err != nil {
		return nil, err
	}
	return items, nil
}
