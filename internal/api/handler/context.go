package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the identity claims injected by the Auth middleware.
// Role presence proves the middleware ran; a token without an id is
// structurally valid but useless downstream, so it is rejected with 401.
func ctxClaims(c echo.Context) (id, username, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ = c.Get("user_id").(string)
	if id == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	username, _ = c.Get("username").(string)
	return id, username, role, nil
}
