package dto

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/hikeup-backend/models"
)

// TokenClaims represents the claims carried by identity-provider tokens
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// VerifiedIdentity is the result of a successful credential verification.
type VerifiedIdentity struct {
	ExternalID string
	Email      string
	Name       string
}

// DevIdentity is the structured payload accepted from the X-Dev-User header
// when dev mode is enabled. Unknown or malformed payloads are ignored, not
// rejected. A requested admin role is only honored when the allowlist
// confirms it.
type DevIdentity struct {
	ExternalID string `json:"externalId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

// Principal is the identity resolved for one request. It is derived fresh
// per request and never cached. Persisted is false when the account could
// not be stored (or looked up); such a principal has no stable UserID and
// must not be treated as having a database identity.
type Principal struct {
	UserID     string      `json:"userId"`
	ExternalID string      `json:"externalId"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	Persisted  bool        `json:"-"`
}

// Visitor returns the default unauthenticated principal.
func Visitor() Principal {
	return Principal{Role: models.RoleVisitor}
}

// IsAuthenticated reports whether the principal carries a verified identity.
func (p Principal) IsAuthenticated() bool {
	return p.Role != models.RoleVisitor
}
