// Package models defines client-side data models used by the WhatsUT CLI.
package models

import (
	"fmt"
	"time"
)

type NotificationKind string

const (
	NotificationMessage NotificationKind = "message"
	NotificationFile    NotificationKind = "file"
)

// Notification is a server push recorded in the local inbox.
type Notification struct {
	ID         int64
	Kind       NotificationKind
	Sender     string
	Receiver   string
	FileName   string
	ReceivedAt time.Time
	Read       bool
}

func (n Notification) String() string {
	ts := n.ReceivedAt.Local().Format("15:04:05")
	if n.Kind == NotificationFile {
		return fmt.Sprintf("[%s] %s sent you a file: %s", ts, n.Sender, n.FileName)
	}
	return fmt.Sprintf("[%s] new message from %s", ts, n.Sender)
}
