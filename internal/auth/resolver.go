package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kawaf/petcafe-service/internal/domain"
)

// Resolver turns a request's Authorization header into an AuthStatus.
// Every handler calls it first, even for public reads, so role state
// is normalized uniformly.
type Resolver struct {
	tokens *TokenManager
}

// NewResolver constructs a resolver backed by the token manager.
func NewResolver(tokens *TokenManager) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve extracts and verifies a bearer token from c. A missing or
// malformed header is the normal anonymous outcome, not an error, and
// any verification failure collapses to the same anonymous status.
// Resolve is idempotent and side-effect-free.
func (r *Resolver) Resolve(c *fiber.Ctx) domain.AuthStatus {
	return r.ResolveHeader(c.Get(fiber.HeaderAuthorization))
}

// ResolveHeader resolves a raw Authorization header value.
func (r *Resolver) ResolveHeader(header string) domain.AuthStatus {
	token, ok := bearerToken(header)
	if !ok {
		return domain.Anonymous()
	}

	claims, err := r.tokens.Parse(token)
	if err != nil {
		return domain.Anonymous()
	}

	return domain.AuthStatus{IsAuthenticated: true, Role: claims.Role}
}

// ResolveClaims resolves the header and additionally returns the
// verified claims for callers that need the subject identity, such as
// the change-password flow.
func (r *Resolver) ResolveClaims(c *fiber.Ctx) (domain.AuthStatus, *Claims) {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return domain.Anonymous(), nil
	}

	claims, err := r.tokens.Parse(token)
	if err != nil {
		return domain.Anonymous(), nil
	}

	return domain.AuthStatus{IsAuthenticated: true, Role: claims.Role}, claims
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
