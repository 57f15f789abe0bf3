package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hikeup-backend/config"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/repositories"
)

// ErrAccountDeleted is returned by Resolve when a soft-deleted account
// presents an otherwise valid identity. It is the only way resolution
// fails a request; every other problem degrades to the visitor principal.
var ErrAccountDeleted = errors.New("account deleted")

// UserStore is the persistence surface the identity resolver needs.
type UserStore interface {
	FindByExternalIDOrEmail(externalID, email string) (*models.User, error)
	Create(user *models.User) error
	UpdateRoleCache(id string, role models.Role) error
}

// TokenVerifier checks a bearer credential against the identity provider.
// Implementations return nil on any failure: a bad credential is not an
// error, it is the default unauthenticated outcome.
type TokenVerifier interface {
	Verify(token string) *dto.VerifiedIdentity
}

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for HS256 identity tokens
func NewJWTVerifier(secret string) TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(tokenString string) *dto.VerifiedIdentity {
	if tokenString == "" || len(v.secret) == 0 {
		return nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || claims.Subject == "" {
		return nil
	}

	return &dto.VerifiedIdentity{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
	}
}

// GenerateToken mints an identity token. Used by the dev tooling and tests;
// in production tokens come from the external identity provider.
func GenerateToken(secret, externalID, email, name string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("AUTH_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(ttl)

	claims := dto.TokenClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   externalID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// DecideRole returns the effective role from the advisory cached role and
// the authoritative allowlist decision. The allowlist always wins for the
// admin decision: membership grants admin regardless of the cache, and a
// cached admin role without membership is downgraded.
func DecideRole(cached models.Role, allowlisted bool) models.Role {
	if allowlisted {
		return models.RoleAdmin
	}
	switch cached {
	case models.RoleHiker, models.RoleGuide:
		return cached
	default:
		return models.RoleHiker
	}
}

// AuthService resolves the principal for each request, provisioning user
// records on first sight.
type AuthService struct {
	verifier  TokenVerifier
	users     UserStore
	allowlist *config.AdminAllowlist
	devMode   bool
}

// NewAuthService creates a new auth service instance
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		verifier:  NewJWTVerifier(cfg.AuthSecret),
		users:     repositories.NewUserRepository(),
		allowlist: cfg.AdminAllowlist,
		devMode:   cfg.DevMode,
	}
}

// NewAuthServiceWith wires explicit collaborators. Used by tests and
// non-default setups.
func NewAuthServiceWith(verifier TokenVerifier, users UserStore, allowlist *config.AdminAllowlist, devMode bool) *AuthService {
	return &AuthService{verifier: verifier, users: users, allowlist: allowlist, devMode: devMode}
}

// Resolve derives the principal for one request. devPayload is the raw
// X-Dev-User header value and bearerToken the credential from the
// Authorization header; either may be empty. Resolution only fails for
// soft-deleted accounts (ErrAccountDeleted); everything else degrades to
// the visitor principal because routes independently re-check the
// required role.
func (s *AuthService) Resolve(devPayload, bearerToken string) (dto.Principal, error) {
	// Trusted development identity takes precedence when enabled. A
	// malformed payload silently falls through to bearer resolution.
	if s.devMode && devPayload != "" {
		var ident dto.DevIdentity
		if err := json.Unmarshal([]byte(devPayload), &ident); err == nil && ident.ExternalID != "" {
			return s.resolveDev(ident)
		}
	}

	verified := s.verifier.Verify(bearerToken)
	if verified == nil {
		return dto.Visitor(), nil
	}
	return s.resolveVerified(verified)
}

func (s *AuthService) resolveDev(ident dto.DevIdentity) (dto.Principal, error) {
	principal := dto.Principal{
		ExternalID: ident.ExternalID,
		Email:      ident.Email,
		Name:       ident.Name,
	}

	requested := models.Role(ident.Role)

	// A lookup failure here is a persistence hiccup, not an auth failure;
	// the principal just carries no database identity.
	user, err := s.users.FindByExternalIDOrEmail(ident.ExternalID, ident.Email)
	if err == nil && user != nil {
		if user.IsDeleted() {
			return dto.Visitor(), ErrAccountDeleted
		}
		principal.UserID = user.ID
		principal.Persisted = true
		if requested == "" {
			requested = user.Role
		}
	}

	// The payload can never self-assert admin: DecideRole downgrades a
	// requested admin role unless the allowlist confirms it.
	principal.Role = DecideRole(requested, s.allowlist.IsAdmin(ident.ExternalID))
	return principal, nil
}

func (s *AuthService) resolveVerified(verified *dto.VerifiedIdentity) (dto.Principal, error) {
	allowlisted := s.allowlist.IsAdmin(verified.ExternalID)

	principal := dto.Principal{
		ExternalID: verified.ExternalID,
		Email:      verified.Email,
		Name:       verified.Name,
	}

	user, err := s.users.FindByExternalIDOrEmail(verified.ExternalID, verified.Email)
	if err != nil {
		// Persistence hiccup: the verified credential still yields a usable
		// in-memory principal with no stable database identity.
		principal.Role = DecideRole("", allowlisted)
		return principal, nil
	}

	if user == nil {
		return s.provision(principal, verified, allowlisted)
	}

	if user.IsDeleted() {
		return dto.Visitor(), ErrAccountDeleted
	}

	principal.UserID = user.ID
	principal.Persisted = true
	principal.Role = DecideRole(user.Role, allowlisted)

	// Reconcile the advisory cache when it disagrees with the computed
	// role. Best effort: a failed update never changes this request's
	// decision.
	if user.Role != principal.Role {
		_ = s.users.UpdateRoleCache(user.ID, principal.Role)
	}

	return principal, nil
}

func (s *AuthService) provision(principal dto.Principal, verified *dto.VerifiedIdentity, allowlisted bool) (dto.Principal, error) {
	role := models.RoleHiker
	if allowlisted {
		role = models.RoleAdmin
	}

	externalID := verified.ExternalID
	user := &models.User{
		ExternalID: &externalID,
		Email:      verified.Email,
		Name:       verified.Name,
		Role:       role,
		Status:     models.UserStatusActive,
	}

	if err := s.users.Create(user); err != nil {
		// Creation failure must not block the request; the principal is
		// usable but unpersisted.
		principal.Role = role
		return principal, nil
	}

	principal.UserID = user.ID
	principal.Persisted = true
	principal.Role = role
	return principal, nil
}
