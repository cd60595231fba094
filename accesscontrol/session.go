package accesscontrol

import (
	"github.com/forshine-dev/shinebuilder/shared"
)

// Session is the concrete AuthSession attached to every request by the
// session middleware.
type Session struct {
	userID string
	role   shared.Role
}

func NewSession(userID string, role shared.Role) Session {
	return Session{userID: userID, role: role}
}

// NoSession is used when the identity provider reported nothing. It might
// still be allowed to read public resources.
var NoSession = Session{userID: "", role: shared.RoleGuest}

func (s Session) GetUserID() string {
	return s.userID
}

func (s Session) GetRole() shared.Role {
	return s.role
}
