// Copyright (C) 2025 forshine-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"fmt"
	"log/slog"

	"github.com/forshine-dev/shinebuilder/accesscontrol"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/labstack/echo/v4"
)

// RequireRole is the coarse route guard: it rejects requests whose session
// role ranks below minRole. The fine-grained transition permissions (who may
// approve, who may edit a validated asset) stay inside the services - this
// guard only keeps guests and under-privileged roles off the write routes.
func RequireRole(minRole shared.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)
			if !accesscontrol.AtLeast(session.GetRole(), minRole) {
				slog.Warn("access denied", "user", session.GetUserID(), "role", session.GetRole(), "required", minRole, "path", ctx.Request().URL.Path)
				return echo.NewHTTPError(403, fmt.Sprintf("this operation requires at least the %s role", minRole))
			}
			return next(ctx)
		}
	}
}

// NewRBACMiddleware exposes RequireRole to the routers through fx.
func NewRBACMiddleware() shared.RBACMiddleware {
	return RequireRole
}
