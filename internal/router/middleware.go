package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hotelier/internal/auth"
	"hotelier/internal/errors"
	"hotelier/internal/model"
)

// RequireRoles restricts a route to callers whose token carries one of
// the given roles. The role is taken from the verified claims as
// embedded at issuance; it is not re-read from storage.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.FromEchoContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Msg:  "No token, authorization denied",
					Code: "UNAUTHENTICATED",
				})
			}

			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Msg:  "User role not authorized",
				Code: "FORBIDDEN",
			})
		}
	}
}
