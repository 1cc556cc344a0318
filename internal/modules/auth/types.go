package auth

import "errors"

// LoginDTO is the request body for admin login.
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

var errInvalidCredentials = errors.New("invalid credentials")
