package auth

import "github.com/kawaf/petcafe-service/internal/domain"

// Access policy matrix. Pure predicates over the resolved role,
// evaluated per request; each resource family carries its own pair so
// the table stays a closed lookup rather than a hierarchy.
//
//	resource     view-all        restricted read       mutate
//	animals      ADMIN, STAFF    isAdopted = false     ADMIN, STAFF, USER
//	menu items   ADMIN, STAFF    isAvailable = true    ADMIN, STAFF, USER
//	events       ADMIN, STAFF    date >= now - 7d      ADMIN, STAFF, USER
//	users        ADMIN           (denied entirely)     ADMIN
//
// Restricted reads are always allowed; only the result set narrows.
// Any authenticated role may mutate animals, menu items and events.

func isStaffOrAdmin(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleStaff
}

func isAuthenticatedRole(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleStaff || role == domain.RoleUser
}

// CanViewAllAnimals reports whether role sees adopted animals too.
func CanViewAllAnimals(role domain.Role) bool {
	return isStaffOrAdmin(role)
}

// CanMutateAnimals reports whether role may create, update or delete
// animal records.
func CanMutateAnimals(role domain.Role) bool {
	return isAuthenticatedRole(role)
}

// CanViewAllMenuItems reports whether role sees unavailable items too.
func CanViewAllMenuItems(role domain.Role) bool {
	return isStaffOrAdmin(role)
}

// CanMutateMenuItems reports whether role may create, update or
// delete menu items.
func CanMutateMenuItems(role domain.Role) bool {
	return isAuthenticatedRole(role)
}

// CanViewAllEvents reports whether role sees events older than the
// public threshold.
func CanViewAllEvents(role domain.Role) bool {
	return isStaffOrAdmin(role)
}

// CanMutateEvents reports whether role may create, update or delete
// events.
func CanMutateEvents(role domain.Role) bool {
	return isAuthenticatedRole(role)
}

// CanManageUsers gates listing, creating, updating and deleting user
// accounts. Strictly ADMIN; STAFF and USER are denied entirely.
func CanManageUsers(role domain.Role) bool {
	return role == domain.RoleAdmin
}
