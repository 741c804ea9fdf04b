package models

import (
	"fmt"
	"time"
)

// LeavePolicy decides what happens to a group when its admin leaves.
type LeavePolicy string

const (
	LeavePolicyTransfer LeavePolicy = "transfer"
	LeavePolicyDelete   LeavePolicy = "delete"
)

// ParseLeavePolicy validates s. An empty value selects LeavePolicyTransfer.
func ParseLeavePolicy(s string) (LeavePolicy, error) {
	switch LeavePolicy(s) {
	case "", LeavePolicyTransfer:
		return LeavePolicyTransfer, nil
	case LeavePolicyDelete:
		return LeavePolicyDelete, nil
	default:
		return "", fmt.Errorf("unknown leave policy %q", s)
	}
}

// Group is a named chat room with exactly one admin.
type Group struct {
	ID        string
	Name      string
	AdminID   string
	AdminName string
	OnLeave   LeavePolicy
	CreatedAt time.Time
}

// MembershipStatus is the state of a (user, group) pair.
type MembershipStatus string

const (
	MembershipNone     MembershipStatus = "none"
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
)

// Membership relates a user to a group. A pair has at most one row.
type Membership struct {
	UserID   string
	UserName string
	GroupID  string
	Approved bool
	JoinedAt time.Time
}

// Status derives the membership state from the row.
func (m *Membership) Status() MembershipStatus {
	if m == nil {
		return MembershipNone
	}
	if m.Approved {
		return MembershipApproved
	}
	return MembershipPending
}

// GroupWithStatus is a group listing as seen by one user.
type GroupWithStatus struct {
	Name      string
	AdminName string
	Status    MembershipStatus
}
