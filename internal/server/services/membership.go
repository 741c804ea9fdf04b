package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/whatsut/internal/common"
	"github.com/dmitrijs2005/whatsut/internal/dbx"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/models"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
)

// LeaveOutcome describes what a successful leave did to the group.
type LeaveOutcome struct {
	GroupDeleted bool
	// NewAdmin is set when the departing admin was succeeded.
	NewAdmin string
}

// MembershipService implements the group membership state machine:
// NONE -> PENDING -> APPROVED, removal back to NONE, and admin succession.
//
// Every admin-checked mutation reads the group row FOR UPDATE inside its
// transaction. Leave and DeleteGroup additionally hold a per-group lock so
// two departures from the same group never elect different successors.
type MembershipService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	runTx       dbx.Runner
	groupLocks  *keyedMutex
	log         logging.Logger
}

func NewMembershipService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *MembershipService {
	return &MembershipService{
		db:          db,
		repomanager: m,
		runTx:       dbx.NewRunner(db, nil),
		groupLocks:  newKeyedMutex(),
		log:         log.With("module", "membership"),
	}
}

// CreateGroup creates the group and an approved membership for its creator
// in one transaction. An empty policy selects transfer.
func (s *MembershipService) CreateGroup(ctx context.Context, creator, name, policy string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyField
	}
	onLeave, err := models.ParseLeavePolicy(policy)
	if err != nil {
		return nil, ErrBadLeavePolicy
	}

	var group *models.Group
	err = s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		admin, err := lookupUser(ctx, s.repomanager, tx, creator)
		if err != nil {
			return err
		}

		group, err = s.repomanager.Groups(tx).Create(ctx, &models.Group{
			Name:      name,
			AdminID:   admin.ID,
			AdminName: admin.UserName,
			OnLeave:   onLeave,
		})
		if err != nil {
			if errors.Is(err, common.ErrorConflict) {
				return ErrGroupExists
			}
			return err
		}

		return s.repomanager.Memberships(tx).AddApproved(ctx, admin.ID, group.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "group created", "group", name, "admin", creator, "on_leave", string(onLeave))
	return group, nil
}

// RequestJoin records a pending membership. Existing rows are left as they
// are, so repeating the call is harmless.
func (s *MembershipService) RequestJoin(ctx context.Context, username, groupName string) error {
	user, err := lookupUser(ctx, s.repomanager, s.db, username)
	if err != nil {
		return err
	}
	group, err := lookupGroup(ctx, s.repomanager, s.db, groupName, false)
	if err != nil {
		return err
	}
	return s.repomanager.Memberships(s.db).Request(ctx, user.ID, group.ID)
}

// Approve flips member's pending request to approved.
func (s *MembershipService) Approve(ctx context.Context, admin, groupName, member string) error {
	return s.asAdmin(ctx, admin, groupName, func(ctx context.Context, tx dbx.DBTX, g *models.Group) error {
		target, err := lookupUser(ctx, s.repomanager, tx, member)
		if err != nil {
			return err
		}
		ok, err := s.repomanager.Memberships(tx).Approve(ctx, target.ID, g.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoPendingJoin
		}
		return nil
	})
}

// AddDirect makes member an approved member without a prior request.
func (s *MembershipService) AddDirect(ctx context.Context, admin, groupName, member string) error {
	return s.asAdmin(ctx, admin, groupName, func(ctx context.Context, tx dbx.DBTX, g *models.Group) error {
		target, err := lookupUser(ctx, s.repomanager, tx, member)
		if err != nil {
			return err
		}
		return s.repomanager.Memberships(tx).AddApproved(ctx, target.ID, g.ID)
	})
}

// Kick removes member's row whatever its state.
func (s *MembershipService) Kick(ctx context.Context, admin, groupName, member string) error {
	return s.asAdmin(ctx, admin, groupName, func(ctx context.Context, tx dbx.DBTX, g *models.Group) error {
		target, err := lookupUser(ctx, s.repomanager, tx, member)
		if err != nil {
			return err
		}
		if target.ID == g.AdminID {
			return ErrKickAdmin
		}
		ok, err := s.repomanager.Memberships(tx).Remove(ctx, target.ID, g.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotMember
		}
		return nil
	})
}

// DeleteGroup removes the group with its memberships and messages.
func (s *MembershipService) DeleteGroup(ctx context.Context, admin, groupName string) error {
	unlock := s.groupLocks.Lock(groupName)
	defer unlock()

	err := s.asAdmin(ctx, admin, groupName, func(ctx context.Context, tx dbx.DBTX, g *models.Group) error {
		return s.repomanager.Groups(tx).Delete(ctx, g.ID)
	})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "group deleted", "group", groupName, "admin", admin)
	return nil
}

// ListPending returns the users waiting for approval. Admin only.
func (s *MembershipService) ListPending(ctx context.Context, admin, groupName string) ([]*models.Membership, error) {
	var pending []*models.Membership
	err := s.asAdmin(ctx, admin, groupName, func(ctx context.Context, tx dbx.DBTX, g *models.Group) error {
		var err error
		pending, err = s.repomanager.Memberships(tx).ListPending(ctx, g.ID)
		return err
	})
	return pending, err
}

// Leave removes username from the group. When the admin leaves, the group
// is either deleted or handed to the earliest-joined approved member,
// depending on its policy; a group with nobody to hand over to is deleted
// whatever the policy says.
func (s *MembershipService) Leave(ctx context.Context, username, groupName string) (LeaveOutcome, error) {
	unlock := s.groupLocks.Lock(groupName)
	defer unlock()

	var out LeaveOutcome
	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		out = LeaveOutcome{}

		user, err := lookupUser(ctx, s.repomanager, tx, username)
		if err != nil {
			return err
		}
		group, err := lookupGroup(ctx, s.repomanager, tx, groupName, true)
		if err != nil {
			return err
		}

		members := s.repomanager.Memberships(tx)

		if user.ID != group.AdminID {
			ok, err := members.Remove(ctx, user.ID, group.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNotMember
			}
			return nil
		}

		if group.OnLeave == models.LeavePolicyTransfer {
			next, err := members.EarliestApproved(ctx, group.ID, user.ID)
			switch {
			case err == nil:
				if err := s.repomanager.Groups(tx).SetAdmin(ctx, group.ID, next.UserID); err != nil {
					return err
				}
				if _, err := members.Remove(ctx, user.ID, group.ID); err != nil {
					return err
				}
				out.NewAdmin = next.UserName
				return nil
			case !errors.Is(err, common.ErrorNotFound):
				return err
			}
		}

		out.GroupDeleted = true
		return s.repomanager.Groups(tx).Delete(ctx, group.ID)
	})
	if err != nil {
		return LeaveOutcome{}, err
	}

	switch {
	case out.GroupDeleted:
		s.log.Info(ctx, "admin left, group deleted", "group", groupName, "admin", username)
	case out.NewAdmin != "":
		s.log.Info(ctx, "admin succession", "group", groupName, "from", username, "to", out.NewAdmin)
	}
	return out, nil
}

// Status reports the state of the (user, group) pair. The group admin is
// always approved.
func (s *MembershipService) Status(ctx context.Context, username, groupName string) (models.MembershipStatus, error) {
	user, err := lookupUser(ctx, s.repomanager, s.db, username)
	if err != nil {
		return models.MembershipNone, err
	}
	group, err := lookupGroup(ctx, s.repomanager, s.db, groupName, false)
	if err != nil {
		return models.MembershipNone, err
	}
	if group.AdminID == user.ID {
		return membershipStatus(group, user.ID, nil), nil
	}

	m, err := s.repomanager.Memberships(s.db).Get(ctx, user.ID, group.ID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return models.MembershipNone, err
		}
		m = nil
	}
	return membershipStatus(group, user.ID, m), nil
}

// membershipStatus derives userID's status in g from its membership row,
// which may be nil. The admin is approved regardless of the row.
func membershipStatus(g *models.Group, userID string, m *models.Membership) models.MembershipStatus {
	if g.AdminID == userID {
		return models.MembershipApproved
	}
	return m.Status()
}

func (s *MembershipService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.repomanager.Groups(s.db).List(ctx)
}

// ListWithStatus lists every group together with username's status in it.
func (s *MembershipService) ListWithStatus(ctx context.Context, username string) ([]*models.GroupWithStatus, error) {
	user, err := lookupUser(ctx, s.repomanager, s.db, username)
	if err != nil {
		return nil, err
	}

	groups, err := s.repomanager.Groups(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	mine, err := s.repomanager.Memberships(s.db).ListForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string]*models.Membership, len(mine))
	for _, m := range mine {
		byGroup[m.GroupID] = m
	}

	result := make([]*models.GroupWithStatus, 0, len(groups))
	for _, g := range groups {
		status := membershipStatus(g, user.ID, byGroup[g.ID])
		result = append(result, &models.GroupWithStatus{Name: g.Name, AdminName: g.AdminName, Status: status})
	}
	return result, nil
}

// asAdmin runs fn in a transaction after locking the group row and checking
// that admin is its current admin.
func (s *MembershipService) asAdmin(ctx context.Context, admin, groupName string, fn func(context.Context, dbx.DBTX, *models.Group) error) error {
	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		caller, err := lookupUser(ctx, s.repomanager, tx, admin)
		if err != nil {
			return err
		}
		group, err := lookupGroup(ctx, s.repomanager, tx, groupName, true)
		if err != nil {
			return err
		}
		if group.AdminID != caller.ID {
			return ErrNotAdmin
		}
		return fn(ctx, tx, group)
	})
	if errors.Is(err, common.ErrorUnauthorized) {
		s.log.Warn(ctx, "admin operation rejected", "group", groupName, "caller", admin)
	}
	if err != nil && !IsBusinessError(err) {
		return fmt.Errorf("group %s: %w", groupName, err)
	}
	return err
}
