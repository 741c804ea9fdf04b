package models

import "time"

// PrivateMessage is a direct message between two users. Sender and receiver
// names are resolved by the repository for display.
type PrivateMessage struct {
	ID           int64
	SenderID     string
	ReceiverID   string
	SenderName   string
	ReceiverName string
	Content      string
	CreatedAt    time.Time
}

// GroupMessage is a message posted to a group by an approved member.
type GroupMessage struct {
	ID         int64
	GroupID    string
	SenderID   string
	SenderName string
	Content    string
	CreatedAt  time.Time
}
