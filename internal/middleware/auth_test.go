package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"bare token", "abc.def.ghi", "abc.def.ghi"},
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase bearer", "bearer abc.def.ghi", "abc.def.ghi"},
		{"surrounding spaces", "  Bearer abc.def.ghi  ", "abc.def.ghi"},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeToken(tt.raw))
		})
	}
}

func newProtectedRouter(tokens *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": CurrentSubject(c), "role": CurrentRole(c)})
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingAndInvalidTokens(t *testing.T) {
	tokens := token.NewManager("test-secret")
	r := newProtectedRouter(tokens)

	foreign, err := token.NewManager("other-secret").Sign("admin", token.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"empty bearer", "Bearer "},
		{"garbage", "Bearer garbage"},
		{"foreign secret", "Bearer " + foreign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestAuthAcceptsValidTokenAndExposesClaims(t *testing.T) {
	tokens := token.NewManager("test-secret")
	r := newProtectedRouter(tokens)

	tok, err := tokens.Sign("admin", token.RoleAdmin)
	require.NoError(t, err)

	w := get(r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"admin"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequireAdminRejectsOtherRoles(t *testing.T) {
	tokens := token.NewManager("test-secret")
	r := newProtectedRouter(tokens)

	tok, err := tokens.Sign("visitor", "viewer")
	require.NoError(t, err)

	w := get(r, "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
