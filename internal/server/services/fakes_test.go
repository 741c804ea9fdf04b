package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/bans"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/files"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/groups"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/memberships"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/messages"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/users"
)

// memStore is an in-memory stand-in for the whole schema. Every insert
// advances a fake clock by one second so ordering is deterministic.
type memStore struct {
	mu        sync.Mutex
	seq       int64
	clock     time.Time
	users     map[string]*models.User
	operators map[string]bool
	groups    map[string]*models.Group
	members   map[[2]string]*models.Membership
	privates  []*models.PrivateMessage
	groupMsgs []*models.GroupMessage
	files     map[string]*models.File
	bans      map[string]*models.BanRequest

	failUsers error
}

func newMemStore() *memStore {
	return &memStore{
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     map[string]*models.User{},
		operators: map[string]bool{},
		groups:    map[string]*models.Group{},
		members:   map[[2]string]*models.Membership{},
		files:     map[string]*models.File{},
		bans:      map[string]*models.BanRequest{},
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) nextID() string {
	s.seq++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", s.seq)
}

func (s *memStore) userName(id string) string {
	if u, ok := s.users[id]; ok {
		return u.UserName
	}
	return ""
}

// addUser inserts a user directly; the hash is the plain password so the
// fake hasher can compare it.
func (s *memStore) addUser(name string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: s.nextID(), UserName: name, PasswordHash: []byte("pw-" + name), CreatedAt: s.tick()}
	s.users[u.ID] = u
	return u
}

func (s *memStore) groupByName(name string) *models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.Name == name {
			cp := *g
			cp.AdminName = s.userName(g.AdminID)
			return &cp
		}
	}
	return nil
}

func (s *memStore) membershipCount(groupID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.members {
		if k[1] == groupID {
			n++
		}
	}
	return n
}

// --- users ---

type memUsers struct{ s *memStore }

func (r memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.UserName == u.UserName {
			return nil, common.ErrorConflict
		}
	}
	u.ID = r.s.nextID()
	u.CreatedAt = r.s.tick()
	cp := *u
	r.s.users[u.ID] = &cp
	return u, nil
}

func (r memUsers) GetByUserName(ctx context.Context, name string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUsers != nil {
		return nil, r.s.failUsers
	}
	for _, u := range r.s.users {
		if u.UserName == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) List(ctx context.Context) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.User
	for _, u := range r.s.users {
		cp := *u
		cp.PasswordHash = nil
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })
	return out, nil
}

func (r memUsers) SetBanned(ctx context.Context, id string, banned bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Banned = banned
	return nil
}

func (r memUsers) IsOperator(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.operators[id], nil
}

// --- groups ---

type memGroups struct{ s *memStore }

func (r memGroups) Create(ctx context.Context, g *models.Group) (*models.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.groups {
		if existing.Name == g.Name {
			return nil, common.ErrorConflict
		}
	}
	g.ID = r.s.nextID()
	g.CreatedAt = r.s.tick()
	cp := *g
	r.s.groups[g.ID] = &cp
	return g, nil
}

func (r memGroups) GetByName(ctx context.Context, name string) (*models.Group, error) {
	if g := r.s.groupByName(name); g != nil {
		return g, nil
	}
	return nil, common.ErrorNotFound
}

func (r memGroups) GetByNameForUpdate(ctx context.Context, name string) (*models.Group, error) {
	return r.GetByName(ctx, name)
}

func (r memGroups) List(ctx context.Context) ([]*models.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Group
	for _, g := range r.s.groups {
		cp := *g
		cp.AdminName = r.s.userName(g.AdminID)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memGroups) SetAdmin(ctx context.Context, groupID, adminID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[groupID]
	if !ok {
		return common.ErrorNotFound
	}
	g.AdminID = adminID
	return nil
}

func (r memGroups) Delete(ctx context.Context, groupID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.groups[groupID]; !ok {
		return common.ErrorNotFound
	}
	kept := r.s.groupMsgs[:0]
	for _, m := range r.s.groupMsgs {
		if m.GroupID != groupID {
			kept = append(kept, m)
		}
	}
	r.s.groupMsgs = kept
	for k := range r.s.members {
		if k[1] == groupID {
			delete(r.s.members, k)
		}
	}
	delete(r.s.groups, groupID)
	return nil
}

// --- memberships ---

type memMemberships struct{ s *memStore }

func (r memMemberships) Request(ctx context.Context, userID, groupID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := [2]string{userID, groupID}
	if _, ok := r.s.members[k]; !ok {
		r.s.members[k] = &models.Membership{UserID: userID, GroupID: groupID, JoinedAt: r.s.tick()}
	}
	return nil
}

func (r memMemberships) AddApproved(ctx context.Context, userID, groupID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := [2]string{userID, groupID}
	if m, ok := r.s.members[k]; ok {
		m.Approved = true
		return nil
	}
	r.s.members[k] = &models.Membership{UserID: userID, GroupID: groupID, Approved: true, JoinedAt: r.s.tick()}
	return nil
}

func (r memMemberships) Approve(ctx context.Context, userID, groupID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[[2]string{userID, groupID}]
	if !ok || m.Approved {
		return false, nil
	}
	m.Approved = true
	return true, nil
}

func (r memMemberships) Get(ctx context.Context, userID, groupID string) (*models.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[[2]string{userID, groupID}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *m
	cp.UserName = r.s.userName(userID)
	return &cp, nil
}

func (r memMemberships) Remove(ctx context.Context, userID, groupID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := [2]string{userID, groupID}
	if _, ok := r.s.members[k]; !ok {
		return false, nil
	}
	delete(r.s.members, k)
	return true, nil
}

func (r memMemberships) filter(keep func(*models.Membership) bool) []*models.Membership {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Membership
	for _, m := range r.s.members {
		if keep(m) {
			cp := *m
			cp.UserName = r.s.userName(m.UserID)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].UserName < out[j].UserName
	})
	return out
}

func (r memMemberships) ListPending(ctx context.Context, groupID string) ([]*models.Membership, error) {
	return r.filter(func(m *models.Membership) bool { return m.GroupID == groupID && !m.Approved }), nil
}

func (r memMemberships) ListForUser(ctx context.Context, userID string) ([]*models.Membership, error) {
	return r.filter(func(m *models.Membership) bool { return m.UserID == userID }), nil
}

func (r memMemberships) EarliestApproved(ctx context.Context, groupID, exclude string) (*models.Membership, error) {
	all := r.filter(func(m *models.Membership) bool {
		return m.GroupID == groupID && m.Approved && m.UserID != exclude
	})
	if len(all) == 0 {
		return nil, common.ErrorNotFound
	}
	return all[0], nil
}

// --- messages ---

type memMessages struct{ s *memStore }

func (r memMessages) CreatePrivate(ctx context.Context, m *models.PrivateMessage) (*models.PrivateMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seq++
	m.ID = r.s.seq
	m.CreatedAt = r.s.tick()
	cp := *m
	r.s.privates = append(r.s.privates, &cp)
	return m, nil
}

func (r memMessages) Conversation(ctx context.Context, a, b string) ([]*models.PrivateMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.PrivateMessage
	for _, m := range r.s.privates {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memMessages) CreateGroup(ctx context.Context, m *models.GroupMessage) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	mem, ok := r.s.members[[2]string{m.SenderID, m.GroupID}]
	if !ok || !mem.Approved {
		return false, nil
	}
	r.s.seq++
	m.ID = r.s.seq
	m.CreatedAt = r.s.tick()
	cp := *m
	r.s.groupMsgs = append(r.s.groupMsgs, &cp)
	return true, nil
}

func (r memMessages) GroupConversation(ctx context.Context, groupID string) ([]*models.GroupMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.GroupMessage
	for _, m := range r.s.groupMsgs {
		if m.GroupID == groupID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- files ---

type memFiles struct {
	s         *memStore
	createErr error
}

func (r memFiles) Create(ctx context.Context, f *models.File) (*models.File, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.nextID()
	f.CreatedAt = r.s.tick()
	cp := *f
	r.s.files[f.ID] = &cp
	return f, nil
}

func (r memFiles) ListBetween(ctx context.Context, a, b string) ([]*models.File, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.File
	for _, f := range r.s.files {
		if (f.SenderID == a && f.ReceiverID == b) || (f.SenderID == b && f.ReceiverID == a) {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memFiles) GetByID(ctx context.Context, id string) (*models.File, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.files[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *f
	return &cp, nil
}

// --- bans ---

type memBans struct{ s *memStore }

func (r memBans) Create(ctx context.Context, b *models.BanRequest) (*models.BanRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.nextID()
	b.Status = models.BanPending
	b.CreatedAt = r.s.tick()
	cp := *b
	r.s.bans[b.ID] = &cp
	return b, nil
}

func (r memBans) ListPending(ctx context.Context) ([]*models.BanRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.BanRequest
	for _, b := range r.s.bans {
		if b.Status == models.BanPending {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memBans) GetByID(ctx context.Context, id string) (*models.BanRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bans[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *b
	return &cp, nil
}

func (r memBans) Decide(ctx context.Context, id string, status models.BanStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bans[id]
	if !ok || b.Status != models.BanPending {
		return false, nil
	}
	b.Status = status
	now := r.s.tick()
	b.DecidedAt = &now
	return true, nil
}

// --- manager ---

type fakeRepoManager struct {
	s              *memStore
	filesCreateErr error
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return memUsers{m.s} }
func (m *fakeRepoManager) Groups(dbx.DBTX) groups.Repository           { return memGroups{m.s} }
func (m *fakeRepoManager) Memberships(dbx.DBTX) memberships.Repository { return memMemberships{m.s} }
func (m *fakeRepoManager) Messages(dbx.DBTX) messages.Repository       { return memMessages{m.s} }
func (m *fakeRepoManager) Files(dbx.DBTX) files.Repository {
	return memFiles{s: m.s, createErr: m.filesCreateErr}
}
func (m *fakeRepoManager) Bans(dbx.DBTX) bans.Repository { return memBans{m.s} }

// plainHasher stores "pw-"+password so tests can seed users without bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(p string) ([]byte, error)  { return []byte("pw-" + p), nil }
func (plainHasher) Verify(p string, h []byte) bool { return string(h) == "pw-"+p }
