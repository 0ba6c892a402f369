package services

import "github.com/jomariabejo/orpha/models"

// Identity is the verified (userId, role) pair extracted from a valid
// session token. A nil *Identity means "no session"; there is no
// half-authenticated state in between.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func (id *Identity) Authenticated() bool {
	return id != nil && id.UserID != "" && models.ValidRole(id.Role)
}

func (id *Identity) IsAdmin() bool {
	return id.Authenticated() && id.Role == models.RoleAdmin
}

// requireAdmin is the access-guard precondition on every plan-repository
// operation: it runs before any storage access, so a rejected caller
// causes zero side effects.
func requireAdmin(caller *Identity) error {
	if !caller.IsAdmin() {
		return ErrUnauthorized
	}
	return nil
}

// requireStaff admits either role; monitoring routes are open to all
// authenticated staff.
func requireStaff(caller *Identity) error {
	if !caller.Authenticated() {
		return ErrUnauthorized
	}
	return nil
}
