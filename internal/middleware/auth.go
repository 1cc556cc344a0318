package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/pkg/response"
	"github.com/nabeelsyed11/Kimia/internal/pkg/token"
)

const (
	// ContextKeySubject holds the authenticated token subject.
	ContextKeySubject = "auth_subject"
	// ContextKeyRole holds the authenticated token role.
	ContextKeyRole = "auth_role"
)

// Auth enforces bearer-token authentication. A missing, malformed, or
// unverifiable token aborts with 401 before any handler runs.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := NormalizeToken(c.GetHeader("Authorization"))
		if raw == "" {
			response.Unauthorized(c, "Could not validate credentials")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			response.Unauthorized(c, "Could not validate credentials")
			return
		}
		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose role claim is not
// "admin". This is a distinct failure mode from Auth: the token verified
// fine, the principal just lacks the role, so the status is 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != token.RoleAdmin {
			response.Forbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return role
}

// CurrentSubject extracts the authenticated subject from context.
func CurrentSubject(c *gin.Context) string {
	v, _ := c.Get(ContextKeySubject)
	sub, _ := v.(string)
	return sub
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(t), "bearer ") {
		return strings.TrimSpace(t[7:])
	}
	return t
}
