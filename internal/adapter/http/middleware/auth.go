package middleware

import (
	"net/http"
	"strings"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"
	"autocare360/pkg"

	"github.com/gin-gonic/gin"
)

// ClaimsContextKey is where RequireAuth stores the authenticated claims on
// the gin context.
const ClaimsContextKey = "auth_claims"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// RequireAuth validates the Authorization bearer token and, when roles are
// given, requires the principal to hold one of them. Authorization is a
// pre-condition of every usecase operation; the usecases themselves never
// inspect the caller.
func RequireAuth(tokens interfaces.ITokenManager, roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
				return
			}
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(c *gin.Context) (interfaces.TokenClaims, bool) {
	v, ok := c.Get(ClaimsContextKey)
	if !ok {
		return interfaces.TokenClaims{}, false
	}
	claims, ok := v.(interfaces.TokenClaims)
	return claims, ok
}
