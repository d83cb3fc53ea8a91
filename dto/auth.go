package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims carried by an access token. The subject
// registered claim holds the username.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// LoginRequest represents the form-encoded credentials posted to /token.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
