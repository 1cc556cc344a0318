package token

import (
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim required on admin routes.
const RoleAdmin = "admin"

// Claims is the JWT payload: a subject plus a role used for authorization.
type Claims struct {
	Role string `json:"role"`
	jwtlib.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens under a shared secret.
// Tokens carry no expiry; once signed they stay valid until the secret
// rotates. Kept as the documented baseline behavior.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Sign creates a signed token for the given subject and role.
func (m *Manager) Sign(subject, role string) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject: subject,
		},
	}
	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse validates a token string and returns its claims. Any verification
// failure (bad signature, malformed token, unexpected algorithm) is an error.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	t, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
