package accesscontrol

import (
	"strings"

	"github.com/forshine-dev/shinebuilder/shared"
)

// ParseRole is the single canonicalization point for the role strings the
// identity provider sends. The provider is known to be sloppy about casing
// ("admin", "ADMIN", "Auditor") and historically reported Spanish role
// names, so both spellings are accepted. Anything unknown degrades to
// guest.
func ParseRole(raw string) shared.Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin", "administrador":
		return shared.RoleAdmin
	case "auditor", "auditora":
		return shared.RoleAuditor
	case "methodologist", "metodologo", "metodólogo", "metodóloga":
		return shared.RoleMethodologist
	case "curator", "curador", "curadora":
		return shared.RoleCurator
	default:
		return shared.RoleGuest
	}
}

// The permission checks below are pure predicates over the role enum. They
// are the only place transition permissions are defined.

// CanApprove reports whether the role may move an asset from review to
// validated.
func CanApprove(role shared.Role) bool {
	return role == shared.RoleAdmin || role == shared.RoleAuditor
}

// CanReject reports whether the role may send an asset back to draft.
func CanReject(role shared.Role) bool {
	return role == shared.RoleAdmin || role == shared.RoleAuditor
}

// CanEditValidated reports whether the role may touch an asset that already
// reached validated. Only admins may, and only with an override reason.
func CanEditValidated(role shared.Role) bool {
	return role == shared.RoleAdmin
}

// CanDelete reports whether the role may hard-delete an asset.
func CanDelete(role shared.Role) bool {
	return role == shared.RoleAdmin || role == shared.RoleMethodologist
}

// CanCurate reports whether the role may create assets and submit them for
// review. Every authenticated curator may; guests may not.
func CanCurate(role shared.Role) bool {
	return role != shared.RoleGuest
}

// roleRank orders the roles for the coarse route guards. Fine-grained
// permissions stay in the predicates above; the rank only answers "is this
// role at least a curator".
var roleRank = map[shared.Role]int{
	shared.RoleGuest:         0,
	shared.RoleCurator:       1,
	shared.RoleMethodologist: 2,
	shared.RoleAuditor:       3,
	shared.RoleAdmin:         4,
}

// AtLeast reports whether role ranks at or above min.
func AtLeast(role, min shared.Role) bool {
	return roleRank[role] >= roleRank[min]
}
