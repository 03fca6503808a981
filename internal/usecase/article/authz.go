package article

import (
	"strings"

	"dan-papers/internal/domain/entity"
)

// Action is a write operation subject to authorization.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Authorize decides whether caller may perform action on target. It is the
// single authorization point for the normal write path:
//
//   - no caller: ErrUnauthenticated
//   - seed articles are immutable here, whatever the caller's role
//   - update is owner-only
//   - delete is owner-or-admin
func Authorize(caller *entity.User, target *entity.Article, action Action, admins map[string]bool) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if target.IsSeed() {
		return ErrForbidden
	}

	owner := target.OwnedBy(caller.ID)
	admin := admins[strings.ToLower(caller.Username)]

	switch action {
	case ActionUpdate:
		if owner {
			return nil
		}
	case ActionDelete:
		if owner || admin {
			return nil
		}
	}
	return ErrForbidden
}
