package models

import "time"

// BanStatus is the lifecycle state of a ban request. A request leaves
// BanPending exactly once.
type BanStatus string

const (
	BanPending  BanStatus = "pending"
	BanApproved BanStatus = "approved"
	BanRejected BanStatus = "rejected"
)

// BanRequest records one user asking for another to be banned.
type BanRequest struct {
	ID            string
	RequesterID   string
	TargetID      string
	RequesterName string
	TargetName    string
	Reason        string
	Status        BanStatus
	CreatedAt     time.Time
	DecidedAt     *time.Time
}
