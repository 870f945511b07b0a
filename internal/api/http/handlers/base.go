package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/uktrade/help-desk-api/internal/auth"
	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/service"
	apperrors "github.com/uktrade/help-desk-api/pkg/util/errorutil"
)

// ManagerFactory builds a tenant-scoped HaloManager from the authenticated
// caller's credentials. Each request gets a fresh manager so one tenant's
// backend session never leaks into another's.
type ManagerFactory func(creds *domain.HelpDeskCreds) *service.HaloManager

// managerFor resolves the request principal into a per-request manager.
func managerFor(c *fiber.Ctx, factory ManagerFactory) (*service.HaloManager, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Creds == nil {
		return nil, apperrors.NewUnauthorized("credentials required")
	}
	return factory(principal.Creds), nil
}

func pathID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, apperrors.NewValidationError("id must be an integer", nil)
	}
	return id, nil
}
