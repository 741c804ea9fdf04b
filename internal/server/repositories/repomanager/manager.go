package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/bans"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/files"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/groups"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/memberships"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/messages"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Groups(db dbx.DBTX) groups.Repository
	Memberships(db dbx.DBTX) memberships.Repository
	Messages(db dbx.DBTX) messages.Repository
	Files(db dbx.DBTX) files.Repository
	Bans(db dbx.DBTX) bans.Repository
}
