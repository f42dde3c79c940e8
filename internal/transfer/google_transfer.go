package transfer

import "github.com/golang-jwt/jwt/v5"

type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// CustomClaims carries the authenticated user's id and role in the session
// token so every request can enforce role gates server-side.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
