package shared

import (
	"github.com/labstack/echo/v4"
)

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// GetActor converts the request session into the actor a lifecycle
// operation runs as.
func GetActor(ctx Context) Actor {
	session := GetSession(ctx)
	return Actor{ID: session.GetUserID(), Role: session.GetRole()}
}

func GetParam(ctx Context, param string) string {
	return SanitizeParam(ctx.Param(param))
}

func GetAssetHumanID(ctx Context) (string, error) {
	humanID := GetParam(ctx, "assetID")
	if humanID == "" {
		return "", echo.NewHTTPError(400, "missing asset id")
	}
	return humanID, nil
}
