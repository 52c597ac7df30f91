package access

import (
	"taskboard/internal/domain/entities"
)

// Principal is the authenticated identity for one request. It is built by
// the auth middleware from token claims and passed into every operation;
// nothing reads identity from ambient state.
type Principal struct {
	UserID   uint
	Username string
	Role     entities.Role
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != 0
}

// CanAccess reports whether the actor may read or mutate the task. The rule
// is strict ownership; admins get no implicit pass on task operations.
func CanAccess(actor Principal, task *entities.Task) bool {
	if task == nil || !actor.IsAuthenticated() {
		return false
	}
	return task.UserID == actor.UserID
}

// IsAdmin gates the cross-user operations: list all users, delete any user.
func IsAdmin(actor Principal) bool {
	return actor.IsAuthenticated() && actor.Role == entities.RoleAdmin
}
