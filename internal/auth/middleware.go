package auth

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/repository"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal is the authenticated tenant whose Halo credentials scope the
// backend client for this request.
type Principal struct {
	Creds *domain.HelpDeskCreds
}

// Middleware validates Zendesk-style API token credentials and loads the
// tenant's Halo credential pair.
type Middleware struct {
	creds repository.CredentialsRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(creds repository.CredentialsRepository) *Middleware {
	return &Middleware{creds: creds}
}

// Handle enforces authentication. Callers authenticate the Zendesk way:
// basic auth with username "email/token" and the API token as password.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	email, token, ok := basicCredentials(c.Get("Authorization"))
	if !ok {
		return apperrors.NewUnauthorized("missing or malformed authorization header")
	}

	creds, err := m.creds.GetByZendeskEmail(c.Context(), email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("unknown caller")
		}
		return apperrors.MapError(err)
	}

	if err := CompareToken(creds.ZendeskTokenHash, token); err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{Creds: creds})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated tenant.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// basicCredentials extracts (email, token) from a Zendesk-style basic auth
// header. The username suffix "/token" marks API-token authentication.
func basicCredentials(header string) (string, string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	username, token, found := strings.Cut(string(decoded), ":")
	if !found || token == "" {
		return "", "", false
	}
	email := strings.TrimSuffix(username, "/token")
	if email == "" {
		return "", "", false
	}
	return email, token, true
}
