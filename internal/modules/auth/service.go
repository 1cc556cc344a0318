package auth

import (
	"crypto/subtle"

	"github.com/nabeelsyed11/Kimia/internal/config"
	"github.com/nabeelsyed11/Kimia/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// Service validates the single fixed admin credential pair and issues
// session tokens. The configured password is hashed once at construction;
// the plaintext is never kept around after that.
type Service struct {
	username     string
	passwordHash []byte
	tokens       *token.Manager
}

func NewService(cfg *config.AppConfig, tokens *token.Manager) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		username:     cfg.Admin.Username,
		passwordHash: hash,
		tokens:       tokens,
	}, nil
}

// Login checks the credential pair and returns a signed admin token.
// Username and password mismatches are indistinguishable to the caller.
func (s *Service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", errInvalidCredentials
	}
	return s.tokens.Sign(token.RoleAdmin, token.RoleAdmin)
}
