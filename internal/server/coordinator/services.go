package coordinator

import (
	"context"

	"github.com/dmitrijs2005/whatsut/internal/server/callbacks"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/services"
)

// The collaborators below are satisfied by the services, presence and
// callbacks packages.

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	GetByUserName(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type MessageService interface {
	SendPrivate(ctx context.Context, sender, receiver, content string) (*models.PrivateMessage, error)
	Conversation(ctx context.Context, a, b string) ([]*models.PrivateMessage, error)
	SendGroup(ctx context.Context, sender, groupName, content string) (*models.GroupMessage, error)
	GroupConversation(ctx context.Context, groupName string) ([]*models.GroupMessage, error)
}

type FileService interface {
	Send(ctx context.Context, sender, receiver, fileName string, payload []byte) (*models.File, error)
	List(ctx context.Context, a, b string) ([]*models.File, error)
	Download(ctx context.Context, id string) (*models.File, []byte, error)
}

type MembershipService interface {
	CreateGroup(ctx context.Context, creator, name, policy string) (*models.Group, error)
	RequestJoin(ctx context.Context, username, groupName string) error
	Approve(ctx context.Context, admin, groupName, member string) error
	AddDirect(ctx context.Context, admin, groupName, member string) error
	Kick(ctx context.Context, admin, groupName, member string) error
	DeleteGroup(ctx context.Context, admin, groupName string) error
	ListPending(ctx context.Context, admin, groupName string) ([]*models.Membership, error)
	Leave(ctx context.Context, username, groupName string) (services.LeaveOutcome, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	ListWithStatus(ctx context.Context, username string) ([]*models.GroupWithStatus, error)
}

type BanService interface {
	Request(ctx context.Context, requester, target, reason string) (*models.BanRequest, error)
	ListPending(ctx context.Context) ([]*models.BanRequest, error)
	Approve(ctx context.Context, id string) (*models.BanRequest, error)
	Reject(ctx context.Context, id string) (*models.BanRequest, error)
}

type PresenceTracker interface {
	Heartbeat(username string)
	IsOnline(username string) bool
	SetOffline(username string)
	Snapshot(users []*models.User) map[string]bool
}

type CallbackRegistry interface {
	Register(ctx context.Context, username, endpoint string) error
	Unregister(username string)
	Notify(username string, ev callbacks.Event)
}
