package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both user id and role
// must be present, their absence means the middleware did not run or the
// token carried no identity.
func ctxCaller(c echo.Context) (domain.Caller, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Caller{ID: id, Role: role}, nil
}
