package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/pkg"
)

const ContextPrincipalKey = "principal"

type principalCtxKey struct{}

// Auth requires a valid bearer token. The verified principal is stored on
// the gin context and on the request context; the wrapped handler never runs
// for a missing or invalid token.
func Auth(tokens *pkg.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization format"})
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			msg := "Token is not valid"
			if errors.Is(err, pkg.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Set(ContextPrincipalKey, *p)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), *p))
		c.Next()
	}
}

// RequireRole lets the request through only when the authenticated principal
// holds one of roles. It must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		if !slices.Contains(roles, p.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (pkg.Principal, bool) {
	v, ok := c.Get(ContextPrincipalKey)
	if !ok {
		return pkg.Principal{}, false
	}
	p, ok := v.(pkg.Principal)
	return p, ok
}

func WithPrincipal(ctx context.Context, p pkg.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (pkg.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(pkg.Principal)
	return p, ok
}
