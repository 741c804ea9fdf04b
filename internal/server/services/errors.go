package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/whatsut/internal/common"
)

// Business-rule failures. Each wraps one of the common sentinels so callers
// can classify with errors.Is, while the text stays presentable to users.
var (
	ErrUserNotFound   = fmt.Errorf("user %w", common.ErrorNotFound)
	ErrGroupNotFound  = fmt.Errorf("group %w", common.ErrorNotFound)
	ErrFileNotFound   = fmt.Errorf("file %w", common.ErrorNotFound)
	ErrBanNotFound    = fmt.Errorf("ban request %w", common.ErrorNotFound)
	ErrNoPendingJoin  = fmt.Errorf("pending request %w", common.ErrorNotFound)
	ErrNotMember      = fmt.Errorf("membership %w", common.ErrorNotFound)
	ErrUserExists     = fmt.Errorf("username %w", common.ErrorConflict)
	ErrGroupExists    = fmt.Errorf("group name %w", common.ErrorConflict)
	ErrBanDecided     = fmt.Errorf("ban request decision %w", common.ErrorConflict)
	ErrNotAdmin       = fmt.Errorf("not the group admin: %w", common.ErrorUnauthorized)
	ErrNotApproved    = fmt.Errorf("not an approved member: %w", common.ErrorUnauthorized)
	ErrEmptyField     = fmt.Errorf("empty field: %w", common.ErrorValidation)
	ErrFileTooLarge   = fmt.Errorf("file too large: %w", common.ErrorValidation)
	ErrBadLeavePolicy = fmt.Errorf("unknown leave policy: %w", common.ErrorValidation)
	ErrSelfBan        = fmt.Errorf("cannot ban yourself: %w", common.ErrorValidation)
	ErrKickAdmin      = fmt.Errorf("admin cannot kick themselves: %w", common.ErrorValidation)
)

// IsBusinessError reports whether err is one of the classified failures
// rather than a storage or programming error.
func IsBusinessError(err error) bool {
	for _, target := range []error{
		common.ErrorNotFound,
		common.ErrorConflict,
		common.ErrorUnauthorized,
		common.ErrorValidation,
		common.ErrorBanned,
		common.ErrorWrongPassword,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
