package types

import "github.com/google/uuid"

// TokenClaims is the authenticated identity carried by a validated JWT.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
}
