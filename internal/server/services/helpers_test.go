package services

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/blobstore"
	"github.com/dmitrijs2005/whatsut/internal/server/config"
)

type fixture struct {
	store   *memStore
	rm      *fakeRepoManager
	blobs   *blobstore.MemoryStore
	users   *UserService
	members *MembershipService
	msgs    *MessageService
	files   *FileService
	bans    *BanService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := newMemStore()
	rm := &fakeRepoManager{s: st}
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
	blobs := blobstore.NewMemoryStore()

	f := &fixture{
		store:   st,
		rm:      rm,
		blobs:   blobs,
		users:   NewUserService(nil, rm, plainHasher{}, cfg),
		members: NewMembershipService(nil, rm, logging.Nop()),
		msgs:    NewMessageService(nil, rm),
		files:   NewFileService(nil, rm, blobs, 16, logging.Nop()),
		bans:    NewBanService(nil, rm, logging.Nop()),
	}
	f.members.runTx = dbx.Direct(nil)
	f.bans.runTx = dbx.Direct(nil)
	return f
}

// seed registers users whose password equals their name.
func (f *fixture) seed(names ...string) {
	for _, n := range names {
		f.store.addUser(n)
	}
}
