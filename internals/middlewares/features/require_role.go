package features

import (
	"github.com/gofiber/fiber/v2"

	"campushq_backend/internals/constants"
	helper "campushq_backend/internals/helpers"
)

// RequireRoles gates a route group behind a role allow-list. The role comes
// from the JWT locals hydrated by the auth middleware.
func RequireRoles(allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(helper.LocRole).(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role missing from token")
		}
		if _, ok := set[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Access denied for role "+role)
		}
		return c.Next()
	}
}

// IsInstituteAdmin: admin group guard (owner/admin/finance).
func IsInstituteAdmin() fiber.Handler {
	return RequireRoles(constants.AdminRoles...)
}

// IsVerifier: transaction approval guard.
func IsVerifier() fiber.Handler {
	return RequireRoles(constants.VerifierRoles...)
}

// UseInstituteScope rejects requests whose token carries no institute scope;
// every admin query is filtered by it downstream.
func UseInstituteScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helper.GetInstituteIDFromToken(c); err != nil {
			return err
		}
		return c.Next()
	}
}
