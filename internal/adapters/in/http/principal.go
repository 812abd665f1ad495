package http

import (
	"net/http"
	"strconv"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderActorID carries the numeric id of the calling actor.
	HeaderActorID = "X-Actor-Id"
	// HeaderActorRole carries the calling actor's role: customer, courier
	// or admin.
	HeaderActorRole = "X-Actor-Role"

	principalContextKey = "principal"
)

// PrincipalMiddleware resolves the calling actor from the identity headers
// and stores a validated kernel.Principal on the request context. Requests
// with missing or malformed identity headers are rejected with 401 before
// any handler runs.
//
// Authentication proper happens upstream; this layer trusts the headers and
// only enforces that they form a coherent principal.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawID := ctx.Request().Header.Get(HeaderActorID)
			rawRole := ctx.Request().Header.Get(HeaderActorRole)

			actorID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid " + HeaderActorID + " header",
				})
			}

			role, err := kernel.RoleFromString(rawRole)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid " + HeaderActorRole + " header",
				})
			}

			principal, err := kernel.NewPrincipal(kernel.ActorID(actorID), role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid actor identity",
				})
			}

			ctx.Set(principalContextKey, principal)

			return next(ctx)
		}
	}
}

// principalFrom retrieves the principal stored by PrincipalMiddleware.
func principalFrom(ctx echo.Context) (kernel.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(kernel.Principal)
	return principal, ok
}

// requireRole rejects the request unless the principal satisfies the given
// role check. When ok is false the response has already been written and
// the handler should return err as-is.
func requireRole(
	ctx echo.Context,
	check func(kernel.Principal) bool,
) (principal kernel.Principal, ok bool, err error) {
	principal, found := principalFrom(ctx)
	if !found {
		return kernel.Principal{}, false, ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	if !check(principal) {
		return kernel.Principal{}, false, ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Operation not permitted for this role",
		})
	}

	return principal, true, nil
}
