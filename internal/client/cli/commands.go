package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/filex"
)

const (
	timeLayout  = "2006-01-02 15:04:05"
	downloadDir = "downloads"
)

func (a *App) commands() map[string]command {
	return map[string]command{
		"register": {usage: "register", run: a.register},
		"login":    {usage: "login", run: a.login},
		"ping":     {usage: "ping", run: a.ping},

		"logout":     {usage: "logout", auth: true, run: a.logout},
		"users":      {usage: "users", auth: true, run: a.users},
		"status":     {usage: "status <user>", minArgs: 1, auth: true, run: a.userStatus},
		"msg":        {usage: "msg <user> <text>", minArgs: 2, auth: true, run: a.sendMessage},
		"conv":       {usage: "conv <user>", minArgs: 1, auth: true, run: a.conversation},
		"sendfile":   {usage: "sendfile <user> <path>", minArgs: 2, auth: true, run: a.sendFile},
		"files":      {usage: "files <user>", minArgs: 1, auth: true, run: a.files},
		"download":   {usage: "download <file-id> [path]", minArgs: 1, auth: true, run: a.download},
		"groups":     {usage: "groups", auth: true, run: a.groups},
		"create":     {usage: "create <group> [transfer|delete]", minArgs: 1, auth: true, run: a.createGroup},
		"join":       {usage: "join <group>", minArgs: 1, auth: true, run: a.join},
		"pending":    {usage: "pending <group>", minArgs: 1, auth: true, run: a.pending},
		"approve":    {usage: "approve <group> <user>", minArgs: 2, auth: true, run: a.approve},
		"add":        {usage: "add <group> <user>", minArgs: 2, auth: true, run: a.addMember},
		"leave":      {usage: "leave <group>", minArgs: 1, auth: true, run: a.leave},
		"kick":       {usage: "kick <group> <user>", minArgs: 2, auth: true, run: a.kick},
		"delgroup":   {usage: "delgroup <group>", minArgs: 1, auth: true, run: a.deleteGroup},
		"gmsg":       {usage: "gmsg <group> <text>", minArgs: 2, auth: true, run: a.sendGroupMessage},
		"gconv":      {usage: "gconv <group>", minArgs: 1, auth: true, run: a.groupConversation},
		"ban":        {usage: "ban <user> <reason>", minArgs: 2, auth: true, run: a.requestBan},
		"bans":       {usage: "bans", auth: true, run: a.banRequests},
		"approveban": {usage: "approveban <request-id>", minArgs: 1, auth: true, run: a.approveBan},
		"rejectban":  {usage: "rejectban <request-id>", minArgs: 1, auth: true, run: a.rejectBan},
		"inbox":      {usage: "inbox", auth: true, run: a.showInbox},
	}
}

func (a *App) say(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

func (a *App) credentials(defUser string) (string, []byte, error) {
	userName, err := GetTextWithDefault(a.reader, "Enter username", defUser, a.out)
	if err != nil {
		return "", nil, err
	}
	if userName == "" {
		return "", nil, fmt.Errorf("username is required")
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	userName, password, err := a.credentials("")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, userName, password); err != nil {
		return err
	}
	a.say("User %s registered, you can login now", userName)
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	userName, password, err := a.credentials(a.session.LastUserName(ctx))
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, userName, password); err != nil {
		return err
	}
	a.say("Logged in as %s", userName)
	return a.showInbox(ctx, nil)
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.say("Logged out")
	return nil
}

func (a *App) ping(ctx context.Context, _ []string) error {
	msg, err := a.api.Ping(ctx)
	if err != nil {
		return err
	}
	a.say("%s", msg)
	return nil
}

func (a *App) users(ctx context.Context, _ []string) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	online, err := a.api.StatusMap(ctx)
	if err != nil {
		return err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserName < users[j].UserName })
	for _, u := range users {
		state := "offline"
		switch {
		case u.Banned:
			state = "banned"
		case online[u.UserName]:
			state = "online"
		}
		a.say("%-20s %s", u.UserName, state)
	}
	return nil
}

func (a *App) userStatus(ctx context.Context, args []string) error {
	ok, err := a.api.IsOnline(ctx, args[0])
	if err != nil {
		return err
	}
	if ok {
		a.say("%s is online", args[0])
	} else {
		a.say("%s is offline", args[0])
	}
	return nil
}

func (a *App) sendMessage(ctx context.Context, args []string) error {
	if err := a.api.SendMessage(ctx, a.user(), args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.say("sent")
	return nil
}

func (a *App) conversation(ctx context.Context, args []string) error {
	msgs, err := a.api.Conversation(ctx, a.user(), args[0])
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		a.say("no messages")
	}
	for _, m := range msgs {
		a.say("[%s] %s: %s", m.Timestamp.Local().Format(timeLayout), m.Sender, m.Content)
	}
	return nil
}

func (a *App) sendFile(ctx context.Context, args []string) error {
	path := args[1]
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > common.MaxFileSize {
		return fmt.Errorf("%s is %d bytes, limit is %d", path, info.Size(), common.MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	id, err := a.api.SendFile(ctx, a.user(), args[0], filepath.Base(path), data)
	if err != nil {
		return err
	}
	a.say("file sent, id %s", id)
	return nil
}

func (a *App) files(ctx context.Context, args []string) error {
	files, err := a.api.Files(ctx, a.user(), args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.say("no files")
	}
	for _, f := range files {
		a.say("%s  %s -> %s  %s (%d bytes) %s", f.ID, f.Sender, f.Receiver, f.FileName, f.Size,
			f.Timestamp.Local().Format(timeLayout))
	}
	return nil
}

func (a *App) download(ctx context.Context, args []string) error {
	name, data, err := a.api.DownloadFile(ctx, args[0])
	if err != nil {
		return err
	}
	var dest string
	if len(args) > 1 {
		dest = args[1]
	} else {
		dir, err := filex.EnsureSubdDir(downloadDir)
		if err != nil {
			return err
		}
		if dest, err = filex.SafeJoin(dir, name); err != nil {
			return err
		}
	}
	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return err
	}
	a.say("saved %s (%d bytes)", dest, len(data))
	return nil
}

func (a *App) groups(ctx context.Context, _ []string) error {
	groups, err := a.api.GroupsWithStatus(ctx, a.user())
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		a.say("no groups")
	}
	for _, g := range groups {
		a.say("%-20s admin %-15s %s", g.Name, g.AdminName, g.Status)
	}
	return nil
}

func (a *App) createGroup(ctx context.Context, args []string) error {
	policy := ""
	if len(args) > 1 {
		policy = args[1]
	}
	if err := a.api.CreateGroup(ctx, a.user(), args[0], policy); err != nil {
		return err
	}
	a.say("group %s created", args[0])
	return nil
}

func (a *App) join(ctx context.Context, args []string) error {
	if err := a.api.RequestJoin(ctx, a.user(), args[0]); err != nil {
		return err
	}
	a.say("join request sent to %s", args[0])
	return nil
}

func (a *App) pending(ctx context.Context, args []string) error {
	names, err := a.api.PendingRequests(ctx, a.user(), args[0])
	if err != nil {
		return err
	}
	if len(names) == 0 {
		a.say("no pending requests")
	}
	for _, n := range names {
		a.say("%s", n)
	}
	return nil
}

func (a *App) approve(ctx context.Context, args []string) error {
	if err := a.api.ApproveMember(ctx, a.user(), args[0], args[1]); err != nil {
		return err
	}
	a.say("%s approved in %s", args[1], args[0])
	return nil
}

func (a *App) addMember(ctx context.Context, args []string) error {
	if err := a.api.AddMember(ctx, a.user(), args[0], args[1]); err != nil {
		return err
	}
	a.say("%s added to %s", args[1], args[0])
	return nil
}

func (a *App) leave(ctx context.Context, args []string) error {
	msg, err := a.api.LeaveGroup(ctx, a.user(), args[0])
	if err != nil {
		return err
	}
	a.say("%s", msg)
	return nil
}

func (a *App) kick(ctx context.Context, args []string) error {
	if err := a.api.KickMember(ctx, a.user(), args[0], args[1]); err != nil {
		return err
	}
	a.say("%s removed from %s", args[1], args[0])
	return nil
}

func (a *App) deleteGroup(ctx context.Context, args []string) error {
	if err := a.api.DeleteGroup(ctx, a.user(), args[0]); err != nil {
		return err
	}
	a.say("group %s deleted", args[0])
	return nil
}

func (a *App) sendGroupMessage(ctx context.Context, args []string) error {
	if err := a.api.SendGroupMessage(ctx, a.user(), args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.say("sent")
	return nil
}

func (a *App) groupConversation(ctx context.Context, args []string) error {
	msgs, err := a.api.GroupConversation(ctx, args[0])
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		a.say("no messages")
	}
	for _, m := range msgs {
		a.say("[%s] %s: %s", m.Timestamp.Local().Format(timeLayout), m.Sender, m.Content)
	}
	return nil
}

func (a *App) requestBan(ctx context.Context, args []string) error {
	id, err := a.api.RequestBan(ctx, a.user(), args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	a.say("ban request %s filed", id)
	return nil
}

func (a *App) banRequests(ctx context.Context, _ []string) error {
	reqs, err := a.api.BanRequests(ctx)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		a.say("no ban requests")
	}
	for _, r := range reqs {
		a.say("%s  %s -> %s  %s  %q  %s", r.ID, r.Requester, r.Target, r.Status, r.Reason,
			r.Timestamp.Local().Format(time.DateOnly))
	}
	return nil
}

func (a *App) approveBan(ctx context.Context, args []string) error {
	if err := a.api.ApproveBan(ctx, args[0]); err != nil {
		return err
	}
	a.say("ban approved")
	return nil
}

func (a *App) rejectBan(ctx context.Context, args []string) error {
	if err := a.api.RejectBan(ctx, args[0]); err != nil {
		return err
	}
	a.say("ban rejected")
	return nil
}

func (a *App) showInbox(ctx context.Context, _ []string) error {
	items, err := a.inbox.Unread(ctx, a.user())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		a.say("no new notifications")
		return nil
	}
	for _, n := range items {
		a.say("%s", n)
	}
	return nil
}
