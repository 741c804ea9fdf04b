// Package callbacks keeps the per-user notification endpoints and pushes
// events to them. Delivery is best effort and at most once: every push runs
// detached with a bounded timeout, and an endpoint that fails is dropped.
package callbacks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/logging"
)

// DefaultTimeout bounds a single delivery when none is configured.
const DefaultTimeout = 3 * time.Second

type EventKind int

const (
	EventPrivateMessage EventKind = iota + 1
	EventFileTransfer
)

func (k EventKind) String() string {
	switch k {
	case EventPrivateMessage:
		return "private_message"
	case EventFileTransfer:
		return "file_transfer"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

type Event struct {
	Kind     EventKind
	Sender   string
	Receiver string
	FileName string
}

// Notifier is the narrow one-way interface a client endpoint exposes.
type Notifier interface {
	NotifyPrivate(ctx context.Context, sender, receiver string) error
	NotifyFile(ctx context.Context, sender, receiver, fileName string) error
	Close() error
}

// Dialer connects to an endpoint. Implementations should fail when the
// endpoint is not reachable.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Notifier, error)
}

type entry struct {
	endpoint string
	notifier Notifier
}

type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	closed  bool

	dialer  Dialer
	timeout time.Duration
	log     logging.Logger
	wg      sync.WaitGroup
}

func NewRegistry(d Dialer, timeout time.Duration, log logging.Logger) *Registry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Registry{
		entries: make(map[string]*entry),
		dialer:  d,
		timeout: timeout,
		log:     log.With("module", "callbacks"),
	}
}

// Register dials endpoint and stores it for username, replacing any
// previous endpoint. An unreachable endpoint is not stored.
func (r *Registry) Register(ctx context.Context, username, endpoint string) error {
	if username == "" || endpoint == "" {
		return fmt.Errorf("register callback: %w", common.ErrorValidation)
	}

	dctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.dialer.Dial(dctx, endpoint)
	if err != nil {
		r.log.Warn(ctx, "callback endpoint unreachable", "user", username, "endpoint", endpoint, "error", err)
		return fmt.Errorf("dial %s: %w", endpoint, common.ErrorCommunication)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		_ = n.Close()
		return fmt.Errorf("registry closed: %w", common.ErrorCommunication)
	}
	old := r.entries[username]
	r.entries[username] = &entry{endpoint: endpoint, notifier: n}
	r.mu.Unlock()

	if old != nil {
		_ = old.notifier.Close()
	}
	r.log.Info(ctx, "callback registered", "user", username, "endpoint", endpoint)
	return nil
}

// Unregister drops username's endpoint, if any.
func (r *Registry) Unregister(username string) {
	r.mu.Lock()
	e := r.entries[username]
	delete(r.entries, username)
	r.mu.Unlock()

	if e != nil {
		_ = e.notifier.Close()
	}
}

// Registered reports whether username currently has an endpoint.
func (r *Registry) Registered(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[username]
	return ok
}

// Notify pushes ev to username's endpoint in the background and returns
// immediately. Users without an endpoint are skipped.
func (r *Registry) Notify(username string, ev Event) {
	r.mu.RLock()
	e, ok := r.entries[username]
	if !ok || r.closed {
		r.mu.RUnlock()
		return
	}
	r.wg.Add(1)
	r.mu.RUnlock()

	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		var err error
		switch ev.Kind {
		case EventPrivateMessage:
			err = e.notifier.NotifyPrivate(ctx, ev.Sender, ev.Receiver)
		case EventFileTransfer:
			err = e.notifier.NotifyFile(ctx, ev.Sender, ev.Receiver, ev.FileName)
		default:
			r.log.Error(ctx, "unknown event kind", "kind", ev.Kind.String())
			return
		}
		if err == nil {
			return
		}

		r.log.Warn(ctx, "callback delivery failed, dropping endpoint",
			"user", username, "endpoint", e.endpoint, "event", ev.Kind.String(), "error", err)
		r.drop(username, e)
	}()
}

// drop removes e only if it is still the endpoint registered for username.
func (r *Registry) drop(username string, e *entry) {
	r.mu.Lock()
	cur := r.entries[username]
	if cur == e {
		delete(r.entries, username)
	}
	r.mu.Unlock()

	if cur == e {
		_ = e.notifier.Close()
	}
}

// Wait blocks until every delivery started so far has finished.
func (r *Registry) Wait() {
	r.wg.Wait()
}

// Close stops accepting work, waits for in-flight deliveries and closes all
// endpoints.
func (r *Registry) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.wg.Wait()

	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		_ = e.notifier.Close()
	}
	return nil
}
