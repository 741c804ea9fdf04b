package coordinator

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/whatsut/internal/server/callbacks"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/services"
)

// ---- fakes ----

type fakeUsers struct {
	regErr   error
	loginRes *services.LoginResult
	loginErr error
	byName   map[string]*models.User
	list     []*models.User
	listErr  error
}

func (f *fakeUsers) Register(_ context.Context, username, _ string) (*models.User, error) {
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{ID: "u-" + username, UserName: username}, nil
}

func (f *fakeUsers) Login(context.Context, string, string) (*services.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeUsers) GetByUserName(_ context.Context, username string) (*models.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) List(context.Context) ([]*models.User, error) {
	return f.list, f.listErr
}

type fakeMessages struct {
	sendErr   error
	conv      []*models.PrivateMessage
	convErr   error
	groupErr  error
	groupConv []*models.GroupMessage
}

func (f *fakeMessages) SendPrivate(_ context.Context, sender, receiver, content string) (*models.PrivateMessage, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &models.PrivateMessage{SenderName: sender, ReceiverName: receiver, Content: content}, nil
}

func (f *fakeMessages) Conversation(context.Context, string, string) ([]*models.PrivateMessage, error) {
	return f.conv, f.convErr
}

func (f *fakeMessages) SendGroup(_ context.Context, sender, _, content string) (*models.GroupMessage, error) {
	if f.groupErr != nil {
		return nil, f.groupErr
	}
	return &models.GroupMessage{SenderName: sender, Content: content}, nil
}

func (f *fakeMessages) GroupConversation(context.Context, string) ([]*models.GroupMessage, error) {
	return f.groupConv, nil
}

type fakeFiles struct {
	sent     []byte
	sendErr  error
	list     []*models.File
	file     *models.File
	payload  []byte
	fetchErr error
}

func (f *fakeFiles) Send(_ context.Context, sender, receiver, fileName string, payload []byte) (*models.File, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = payload
	return &models.File{ID: "f-1", SenderName: sender, ReceiverName: receiver, FileName: fileName, Size: int64(len(payload))}, nil
}

func (f *fakeFiles) List(context.Context, string, string) ([]*models.File, error) {
	return f.list, nil
}

func (f *fakeFiles) Download(context.Context, string) (*models.File, []byte, error) {
	if f.fetchErr != nil {
		return nil, nil, f.fetchErr
	}
	return f.file, f.payload, nil
}

type fakeMemberships struct {
	err     error
	leave   services.LeaveOutcome
	pending []*models.Membership
	groups  []*models.Group
	status  []*models.GroupWithStatus
	policy  string
}

func (f *fakeMemberships) CreateGroup(_ context.Context, creator, name, policy string) (*models.Group, error) {
	f.policy = policy
	if f.err != nil {
		return nil, f.err
	}
	return &models.Group{Name: name, AdminName: creator}, nil
}

func (f *fakeMemberships) RequestJoin(context.Context, string, string) error       { return f.err }
func (f *fakeMemberships) Approve(context.Context, string, string, string) error   { return f.err }
func (f *fakeMemberships) AddDirect(context.Context, string, string, string) error { return f.err }
func (f *fakeMemberships) Kick(context.Context, string, string, string) error      { return f.err }
func (f *fakeMemberships) DeleteGroup(context.Context, string, string) error       { return f.err }

func (f *fakeMemberships) ListPending(context.Context, string, string) ([]*models.Membership, error) {
	return f.pending, f.err
}

func (f *fakeMemberships) Leave(context.Context, string, string) (services.LeaveOutcome, error) {
	return f.leave, f.err
}

func (f *fakeMemberships) ListGroups(context.Context) ([]*models.Group, error) {
	return f.groups, f.err
}

func (f *fakeMemberships) ListWithStatus(context.Context, string) ([]*models.GroupWithStatus, error) {
	return f.status, f.err
}

type fakeBans struct {
	req     *models.BanRequest
	err     error
	pending []*models.BanRequest
}

func (f *fakeBans) Request(context.Context, string, string, string) (*models.BanRequest, error) {
	return f.req, f.err
}

func (f *fakeBans) ListPending(context.Context) ([]*models.BanRequest, error) {
	return f.pending, f.err
}

func (f *fakeBans) Approve(context.Context, string) (*models.BanRequest, error) {
	return f.req, f.err
}

func (f *fakeBans) Reject(context.Context, string) (*models.BanRequest, error) {
	return f.req, f.err
}

type fakeCallbacks struct {
	mu           sync.Mutex
	registerErr  error
	registered   map[string]string
	unregistered []string
	notified     map[string][]callbacks.Event
}

func newFakeCallbacks() *fakeCallbacks {
	return &fakeCallbacks{registered: map[string]string{}, notified: map[string][]callbacks.Event{}}
}

func (f *fakeCallbacks) Register(_ context.Context, username, endpoint string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered[username] = endpoint
	return nil
}

func (f *fakeCallbacks) Unregister(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.registered, username)
	f.unregistered = append(f.unregistered, username)
}

func (f *fakeCallbacks) Notify(username string, ev callbacks.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified[username] = append(f.notified[username], ev)
}
