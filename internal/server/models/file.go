package models

import "time"

// File describes a file transfer. The payload itself lives in the blob
// store under StorageKey.
type File struct {
	ID           string
	SenderID     string
	ReceiverID   string
	SenderName   string
	ReceiverName string
	FileName     string
	Size         int64
	StorageKey   string
	CreatedAt    time.Time
}
