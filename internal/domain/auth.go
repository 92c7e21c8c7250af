package domain

// Role is the coarse permission tier attached to a user account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
	RoleUser  Role = "USER"

	// RoleNone is the sentinel for requests presenting no valid
	// credential. It never appears on a stored user.
	RoleNone Role = "none"
)

// ValidRole reports whether r is one of the three stored roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleUser:
		return true
	}
	return false
}

// AuthStatus is the per-request authentication outcome. It is derived
// once per request from the Authorization header and never persisted.
type AuthStatus struct {
	IsAuthenticated bool
	Role            Role
}

// Anonymous is the AuthStatus for requests with no usable credential.
func Anonymous() AuthStatus {
	return AuthStatus{IsAuthenticated: false, Role: RoleNone}
}
