package middleware

import (
	"net/http"
	"strings"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"
	"vexadrive/pkg"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "auth.user"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Caller lacks the required role", http.StatusForbidden)
)

// Authentication resolves the bearer token through the identity provider and
// stores the caller on the request context. Role and ownership checks happen
// here at the boundary; use cases never see tokens.
func Authentication(identity interfaces.IIdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		user, err := identity.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireRole gates a route group to a single role.
func RequireRole(role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller stored by Authentication.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}

// SetCurrentUser injects a caller directly, for handler tests.
func SetCurrentUser(c *gin.Context, user entities.User) {
	c.Set(contextUserKey, user)
}
