package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"github.com/dmitrijs2005/whatsut/internal/client/client"
	"github.com/dmitrijs2005/whatsut/internal/client/config"
	"github.com/dmitrijs2005/whatsut/internal/client/models"
	"github.com/dmitrijs2005/whatsut/internal/client/services"
	"github.com/dmitrijs2005/whatsut/internal/logging"
)

// ChatAPI is the server surface the commands use. *client.GRPCClient
// implements it.
type ChatAPI interface {
	Ping(ctx context.Context) (string, error)
	ListUsers(ctx context.Context) ([]chatrpc.UserInfo, error)
	StatusMap(ctx context.Context) (map[string]bool, error)
	IsOnline(ctx context.Context, userName string) (bool, error)
	SendMessage(ctx context.Context, from, to, text string) error
	Conversation(ctx context.Context, a, b string) ([]chatrpc.PrivateMessage, error)
	SendFile(ctx context.Context, from, to, fileName string, data []byte) (string, error)
	Files(ctx context.Context, a, b string) ([]chatrpc.FileInfo, error)
	DownloadFile(ctx context.Context, id string) (string, []byte, error)
	CreateGroup(ctx context.Context, admin, name, policy string) error
	GroupsWithStatus(ctx context.Context, userName string) ([]chatrpc.GroupStatus, error)
	RequestJoin(ctx context.Context, userName, group string) error
	PendingRequests(ctx context.Context, admin, group string) ([]string, error)
	ApproveMember(ctx context.Context, admin, group, member string) error
	AddMember(ctx context.Context, admin, group, member string) error
	KickMember(ctx context.Context, admin, group, member string) error
	DeleteGroup(ctx context.Context, admin, group string) error
	LeaveGroup(ctx context.Context, userName, group string) (string, error)
	SendGroupMessage(ctx context.Context, from, group, text string) error
	GroupConversation(ctx context.Context, group string) ([]chatrpc.GroupMessage, error)
	RequestBan(ctx context.Context, requester, target, reason string) (string, error)
	BanRequests(ctx context.Context) ([]chatrpc.BanRequestInfo, error)
	ApproveBan(ctx context.Context, id string) error
	RejectBan(ctx context.Context, id string) error
}

type inboxReader interface {
	Unread(ctx context.Context, userName string) ([]models.Notification, error)
}

type App struct {
	api     ChatAPI
	session services.SessionService
	inbox   inboxReader
	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// syncWriter serializes REPL output with notifications printed from the
// callback goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	repos, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	a := &App{
		api:     apiClient,
		reader:  bufio.NewReader(os.Stdin),
		out:     &syncWriter{w: os.Stdout},
		closers: []func() error{apiClient.Close, repos.Close},
	}

	inbox := services.NewInboxService(repos.Inbox, logger, a.notify)
	a.inbox = inbox
	a.session = services.NewSessionService(apiClient, repos.Metadata, inbox, services.ListenCallbacks,
		services.SessionConfig{CallbackAddr: c.CallbackAddr, HeartbeatInterval: c.HeartbeatInterval}, logger)

	return a, nil
}

func (a *App) notify(n models.Notification) {
	fmt.Fprintf(a.out, "\n%s\n", n)
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != ""
}

func (a *App) user() string {
	return a.session.CurrentUser()
}

func (a *App) status() string {
	if u := a.user(); u != "" {
		return "(" + u + ") "
	}
	return ""
}

// Run blocks in the REPL until the user exits, then logs out and releases
// resources.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to WhatsUT (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)

	if a.isLoggedIn() {
		if err := a.session.Logout(ctx); err != nil {
			fmt.Fprintln(a.out, "logout:", err)
		}
	}
	for _, c := range a.closers {
		_ = c()
	}
}
