// Package services contains application services for the WhatsUT client.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/client/client"
	"github.com/dmitrijs2005/whatsut/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/whatsut/internal/logging"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrAlreadyLoggedIn = errors.New("already logged in")
)

// SessionAPI is the part of the server API the session lifecycle needs.
type SessionAPI interface {
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, userName string, password []byte) error
	Heartbeat(ctx context.Context, userName string) error
	SetOffline(ctx context.Context, userName string) error
	RegisterCallback(ctx context.Context, userName, endpoint string) error
	UnregisterCallback(ctx context.Context, userName string) error
	ClearToken()
}

// CallbackEndpoint is a running callback listener.
type CallbackEndpoint interface {
	Addr() string
	Stop()
}

// ListenFunc starts a callback listener on addr.
type ListenFunc func(addr string, h client.NotificationHandler) (CallbackEndpoint, error)

// ListenCallbacks adapts client.ListenCallbacks to ListenFunc.
func ListenCallbacks(addr string, h client.NotificationHandler) (CallbackEndpoint, error) {
	srv, err := client.ListenCallbacks(addr, h)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

type SessionService interface {
	Register(ctx context.Context, userName string, password []byte) error
	// Login authenticates and starts the callback endpoint and heartbeat.
	Login(ctx context.Context, userName string, password []byte) error
	Logout(ctx context.Context) error
	// CurrentUser returns "" when nobody is logged in.
	CurrentUser() string
	// LastUserName is the user of the most recent successful login.
	LastUserName(ctx context.Context) string
}

type SessionConfig struct {
	CallbackAddr      string
	HeartbeatInterval time.Duration
}

type sessionService struct {
	api     SessionAPI
	meta    metadata.Repository
	handler client.NotificationHandler
	listen  ListenFunc
	cfg     SessionConfig
	log     logging.Logger

	mu       sync.Mutex
	user     string
	callback CallbackEndpoint
	stop     context.CancelFunc
	done     chan struct{}
}

func NewSessionService(api SessionAPI, meta metadata.Repository, h client.NotificationHandler,
	listen ListenFunc, cfg SessionConfig, log logging.Logger) SessionService {
	if log == nil {
		log = logging.Nop()
	}
	return &sessionService{api: api, meta: meta, handler: h, listen: listen, cfg: cfg, log: log}
}

func (s *sessionService) Register(ctx context.Context, userName string, password []byte) error {
	return s.api.Register(ctx, userName, password)
}

func (s *sessionService) Login(ctx context.Context, userName string, password []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != "" {
		return fmt.Errorf("%w as %s", ErrAlreadyLoggedIn, s.user)
	}

	if err := s.api.Login(ctx, userName, password); err != nil {
		return err
	}
	s.user = userName

	if err := s.meta.Set(ctx, metadata.KeyLastUserName, userName); err != nil {
		s.log.Warn(ctx, "could not remember user name", "error", err)
	}

	s.startCallback(ctx)

	if err := s.api.Heartbeat(ctx, userName); err != nil {
		s.log.Warn(ctx, "heartbeat failed", "error", err)
	}
	hbCtx, cancel := context.WithCancel(context.Background())
	s.stop = cancel
	s.done = make(chan struct{})
	go s.heartbeatLoop(hbCtx, userName, s.done)

	return nil
}

// startCallback runs with s.mu held. A failure leaves the session usable
// without live notifications.
func (s *sessionService) startCallback(ctx context.Context) {
	cb, err := s.listen(s.cfg.CallbackAddr, s.handler)
	if err != nil {
		s.log.Warn(ctx, "callback listener failed", "addr", s.cfg.CallbackAddr, "error", err)
		return
	}
	if err := s.api.RegisterCallback(ctx, s.user, cb.Addr()); err != nil {
		s.log.Warn(ctx, "callback registration failed", "endpoint", cb.Addr(), "error", err)
		cb.Stop()
		return
	}
	s.callback = cb
}

func (s *sessionService) heartbeatLoop(ctx context.Context, userName string, done chan struct{}) {
	defer close(done)

	interval := s.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 20 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.api.Heartbeat(ctx, userName); err != nil && ctx.Err() == nil {
				s.log.Warn(ctx, "heartbeat failed", "error", err)
			}
		}
	}
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == "" {
		return ErrNotLoggedIn
	}

	s.stop()
	<-s.done

	var errs []error
	if s.callback != nil {
		if err := s.api.UnregisterCallback(ctx, s.user); err != nil {
			errs = append(errs, fmt.Errorf("unregister callback: %w", err))
		}
		s.callback.Stop()
		s.callback = nil
	}
	if err := s.api.SetOffline(ctx, s.user); err != nil {
		errs = append(errs, fmt.Errorf("set offline: %w", err))
	}
	s.api.ClearToken()
	s.user = ""

	return errors.Join(errs...)
}

func (s *sessionService) CurrentUser() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *sessionService) LastUserName(ctx context.Context) string {
	v, _, err := s.meta.Get(ctx, metadata.KeyLastUserName)
	if err != nil {
		s.log.Warn(ctx, "could not read last user name", "error", err)
	}
	return v
}
