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
	"strings"

	"github.com/forshine-dev/shinebuilder/accesscontrol"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware attaches the caller identity to the request context.
// Identity is asserted by the upstream gateway via the X-User-Id and
// X-User-Role headers; the role header is canonicalized through
// accesscontrol.ParseRole so downstream code only ever sees the role enum.
// Requests without an identity get NoSession - they might still be allowed
// to read public resources.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID := strings.TrimSpace(ctx.Request().Header.Get("X-User-Id"))
			if userID == "" {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			role := accesscontrol.ParseRole(ctx.Request().Header.Get("X-User-Role"))
			shared.SetSession(ctx, accesscontrol.NewSession(userID, role))
			return next(ctx)
		}
	}
}
