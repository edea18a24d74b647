package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/palrajin0126/admin-panel/pkg/response"
)

// IsLoggedIn verifies the bearer token on admin read endpoints before any
// store access happens. A missing token is a 400 and a rejected one a 403;
// the sub-cases (malformed, expired, bad signature) are not distinguished.
func IsLoggedIn(jwtSecret string) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(jwtSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			if errors.Is(err, middleware.ErrJWTMissing) {
				return response.WriteErrorResponse(c, errs.ErrMissingToken, nil)
			}

			return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
		},
	})
}
