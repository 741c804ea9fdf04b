// Package coordinator is the exposed chat surface. It composes the
// services, presence tracking and callback delivery into the remote
// operations and converts failures into (ok, message) results.
package coordinator

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/callbacks"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/services"
)

// PingMessage is the fixed liveness reply.
const PingMessage = "whatsut server online"

const (
	msgLoginOK  = "login authorized"
	msgInternal = "internal error"
)

// Outcome is the result of a mutating operation. Message is always safe to
// show to the user.
type Outcome struct {
	OK      bool
	Message string
}

// LoginOutcome carries the access token on success.
type LoginOutcome struct {
	Outcome
	AccessToken string
}

// Deps groups the collaborators of a ChatCoordinator.
type Deps struct {
	Users       UserService
	Messages    MessageService
	Files       FileService
	Memberships MembershipService
	Bans        BanService
	Presence    PresenceTracker
	Callbacks   CallbackRegistry
	Logger      logging.Logger
}

type ChatCoordinator struct {
	users       UserService
	messages    MessageService
	files       FileService
	memberships MembershipService
	bans        BanService
	presence    PresenceTracker
	callbacks   CallbackRegistry
	log         logging.Logger
}

func New(d Deps) *ChatCoordinator {
	log := d.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &ChatCoordinator{
		users:       d.Users,
		messages:    d.Messages,
		files:       d.Files,
		memberships: d.Memberships,
		bans:        d.Bans,
		presence:    d.Presence,
		callbacks:   d.Callbacks,
		log:         log.With("module", "coordinator"),
	}
}

func done(msg string) Outcome {
	return Outcome{OK: true, Message: msg}
}

// fail converts err into a failed Outcome. Classified failures keep their
// text; anything else is logged and reported as an internal error.
func (c *ChatCoordinator) fail(ctx context.Context, op string, err error) Outcome {
	if services.IsBusinessError(err) {
		c.log.Debug(ctx, "operation refused", "op", op, "error", err)
		return Outcome{Message: err.Error()}
	}
	c.log.Error(ctx, "operation failed", "op", op, "error", err)
	return Outcome{Message: msgInternal}
}

// quiet logs err for query operations, which answer with an empty result.
func (c *ChatCoordinator) quiet(ctx context.Context, op string, err error) {
	if services.IsBusinessError(err) {
		c.log.Debug(ctx, "query refused", "op", op, "error", err)
		return
	}
	c.log.Error(ctx, "query failed", "op", op, "error", err)
}

func (c *ChatCoordinator) Ping() string {
	return PingMessage
}

func (c *ChatCoordinator) Register(ctx context.Context, username, password string) Outcome {
	u, err := c.users.Register(ctx, username, password)
	if err != nil {
		return c.fail(ctx, "register", err)
	}
	c.log.Info(ctx, "user registered", "user", u.UserName)
	return done("registered")
}

// Login distinguishes exactly three failures: unknown user, banned user
// and wrong password.
func (c *ChatCoordinator) Login(ctx context.Context, username, password string) LoginOutcome {
	res, err := c.users.Login(ctx, username, password)
	if err != nil {
		return LoginOutcome{Outcome: c.fail(ctx, "login", err)}
	}
	c.log.Info(ctx, "user logged in", "user", res.User.UserName)
	return LoginOutcome{Outcome: done(msgLoginOK), AccessToken: res.AccessToken}
}

func (c *ChatCoordinator) ListUsers(ctx context.Context) []*models.User {
	users, err := c.users.List(ctx)
	if err != nil {
		c.quiet(ctx, "list users", err)
		return nil
	}
	return users
}

// SendMessage stores the message and then notifies the receiver. Delivery
// problems never change the result.
func (c *ChatCoordinator) SendMessage(ctx context.Context, from, to, text string) Outcome {
	m, err := c.messages.SendPrivate(ctx, from, to, text)
	if err != nil {
		return c.fail(ctx, "send message", err)
	}
	c.callbacks.Notify(m.ReceiverName, callbacks.Event{
		Kind:     callbacks.EventPrivateMessage,
		Sender:   m.SenderName,
		Receiver: m.ReceiverName,
	})
	return done("sent")
}

func (c *ChatCoordinator) GetConversation(ctx context.Context, a, b string) []*models.PrivateMessage {
	msgs, err := c.messages.Conversation(ctx, a, b)
	if err != nil {
		c.quiet(ctx, "conversation", err)
		return nil
	}
	return msgs
}

// SendFile accepts the payload base64-encoded.
func (c *ChatCoordinator) SendFile(ctx context.Context, from, to, fileName, data string) Outcome {
	payload, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Outcome{Message: "invalid file payload"}
	}

	f, err := c.files.Send(ctx, from, to, fileName, payload)
	if err != nil {
		return c.fail(ctx, "send file", err)
	}
	c.callbacks.Notify(f.ReceiverName, callbacks.Event{
		Kind:     callbacks.EventFileTransfer,
		Sender:   f.SenderName,
		Receiver: f.ReceiverName,
		FileName: f.FileName,
	})
	return done(f.ID)
}

func (c *ChatCoordinator) GetFilesList(ctx context.Context, a, b string) []*models.File {
	files, err := c.files.List(ctx, a, b)
	if err != nil {
		c.quiet(ctx, "list files", err)
		return nil
	}
	return files
}

// DownloadFile returns the file name and the base64 payload. found is false
// for unknown ids.
func (c *ChatCoordinator) DownloadFile(ctx context.Context, id string) (name, data string, found bool) {
	f, payload, err := c.files.Download(ctx, id)
	if err != nil {
		c.quiet(ctx, "download file", err)
		return "", "", false
	}
	return f.FileName, base64.StdEncoding.EncodeToString(payload), true
}

func (c *ChatCoordinator) Heartbeat(username string) {
	c.presence.Heartbeat(username)
}

func (c *ChatCoordinator) IsOnline(username string) bool {
	return c.presence.IsOnline(username)
}

func (c *ChatCoordinator) SetOffline(username string) {
	c.presence.SetOffline(username)
}

// StatusMap reports every known user; banned users are never online.
func (c *ChatCoordinator) StatusMap(ctx context.Context) map[string]bool {
	users, err := c.users.List(ctx)
	if err != nil {
		c.quiet(ctx, "status map", err)
		return map[string]bool{}
	}
	return c.presence.Snapshot(users)
}

func (c *ChatCoordinator) CreateGroup(ctx context.Context, admin, name, policy string) Outcome {
	g, err := c.memberships.CreateGroup(ctx, admin, name, strings.ToLower(strings.TrimSpace(policy)))
	if err != nil {
		return c.fail(ctx, "create group", err)
	}
	return done(g.Name)
}

func (c *ChatCoordinator) ListGroups(ctx context.Context) []*models.Group {
	groups, err := c.memberships.ListGroups(ctx)
	if err != nil {
		c.quiet(ctx, "list groups", err)
		return nil
	}
	return groups
}

func (c *ChatCoordinator) ListGroupsWithStatus(ctx context.Context, username string) []*models.GroupWithStatus {
	groups, err := c.memberships.ListWithStatus(ctx, username)
	if err != nil {
		c.quiet(ctx, "list groups with status", err)
		return nil
	}
	return groups
}

func (c *ChatCoordinator) RequestJoinGroup(ctx context.Context, username, group string) Outcome {
	if err := c.memberships.RequestJoin(ctx, username, group); err != nil {
		return c.fail(ctx, "request join", err)
	}
	return done("requested")
}

// ListPendingRequests is empty unless admin administers group.
func (c *ChatCoordinator) ListPendingRequests(ctx context.Context, admin, group string) []string {
	pending, err := c.memberships.ListPending(ctx, admin, group)
	if err != nil {
		c.quiet(ctx, "list pending", err)
		return nil
	}
	names := make([]string, 0, len(pending))
	for _, m := range pending {
		names = append(names, m.UserName)
	}
	return names
}

func (c *ChatCoordinator) ApproveMember(ctx context.Context, admin, group, member string) Outcome {
	if err := c.memberships.Approve(ctx, admin, group, member); err != nil {
		return c.fail(ctx, "approve member", err)
	}
	return done("approved")
}

func (c *ChatCoordinator) AddMemberDirect(ctx context.Context, admin, group, member string) Outcome {
	if err := c.memberships.AddDirect(ctx, admin, group, member); err != nil {
		return c.fail(ctx, "add member", err)
	}
	return done("added")
}

func (c *ChatCoordinator) DeleteGroup(ctx context.Context, admin, group string) Outcome {
	if err := c.memberships.DeleteGroup(ctx, admin, group); err != nil {
		return c.fail(ctx, "delete group", err)
	}
	return done("deleted")
}

// LeaveGroup reports what happened to the group in the message.
func (c *ChatCoordinator) LeaveGroup(ctx context.Context, username, group string) Outcome {
	out, err := c.memberships.Leave(ctx, username, group)
	if err != nil {
		return c.fail(ctx, "leave group", err)
	}
	switch {
	case out.GroupDeleted:
		return done("left, group deleted")
	case out.NewAdmin != "":
		return done("left, new admin " + out.NewAdmin)
	default:
		return done("left")
	}
}

func (c *ChatCoordinator) KickMember(ctx context.Context, admin, group, member string) Outcome {
	if err := c.memberships.Kick(ctx, admin, group, member); err != nil {
		return c.fail(ctx, "kick member", err)
	}
	return done("removed")
}

// SendGroupMessage does not push notifications; members poll the group
// conversation.
func (c *ChatCoordinator) SendGroupMessage(ctx context.Context, from, group, text string) Outcome {
	if _, err := c.messages.SendGroup(ctx, from, group, text); err != nil {
		return c.fail(ctx, "send group message", err)
	}
	return done("sent")
}

func (c *ChatCoordinator) GetGroupConversation(ctx context.Context, group string) []*models.GroupMessage {
	msgs, err := c.messages.GroupConversation(ctx, group)
	if err != nil {
		c.quiet(ctx, "group conversation", err)
		return nil
	}
	return msgs
}

// RequestBanUser records the request; on success Message holds its id.
func (c *ChatCoordinator) RequestBanUser(ctx context.Context, requester, target, reason string) Outcome {
	b, err := c.bans.Request(ctx, requester, target, reason)
	if err != nil {
		return c.fail(ctx, "request ban", err)
	}
	return done(b.ID)
}

func (c *ChatCoordinator) ListBanRequests(ctx context.Context) []*models.BanRequest {
	reqs, err := c.bans.ListPending(ctx)
	if err != nil {
		c.quiet(ctx, "list bans", err)
		return nil
	}
	return reqs
}

// ApproveBan bans the target and immediately takes them offline.
func (c *ChatCoordinator) ApproveBan(ctx context.Context, id string) Outcome {
	b, err := c.bans.Approve(ctx, id)
	if err != nil {
		return c.fail(ctx, "approve ban", err)
	}
	c.presence.SetOffline(b.TargetName)
	c.callbacks.Unregister(b.TargetName)
	return done("banned " + b.TargetName)
}

func (c *ChatCoordinator) RejectBan(ctx context.Context, id string) Outcome {
	if _, err := c.bans.Reject(ctx, id); err != nil {
		return c.fail(ctx, "reject ban", err)
	}
	return done("rejected")
}

// RegisterCallback stores endpoint for a known, non-banned user. The
// endpoint is probed before it is accepted.
func (c *ChatCoordinator) RegisterCallback(ctx context.Context, username, endpoint string) Outcome {
	u, err := c.users.GetByUserName(ctx, username)
	if err != nil {
		return c.fail(ctx, "register callback", err)
	}
	if u.Banned {
		return Outcome{Message: common.ErrorBanned.Error()}
	}
	if err := c.callbacks.Register(ctx, u.UserName, endpoint); err != nil {
		if errors.Is(err, common.ErrorCommunication) || errors.Is(err, common.ErrorValidation) {
			return Outcome{Message: "callback endpoint unreachable"}
		}
		return c.fail(ctx, "register callback", err)
	}
	return done("registered")
}

func (c *ChatCoordinator) UnregisterCallback(username string) Outcome {
	c.callbacks.Unregister(username)
	return done("unregistered")
}
