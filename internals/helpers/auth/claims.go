package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"agencyhub_backend/internals/constants"
)

// Claims are placed into c.Locals by the auth middleware; everything here
// only reads them back. Keys must stay in sync with middlewares/auth.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user id in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user id in token")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func hasRole(c *fiber.Ctx, allowed []string) bool {
	role := GetRole(c)
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// EnsureDecisionMaker gates pipeline decisions and budget writes to
// PM / admin / super admin.
func EnsureDecisionMaker(c *fiber.Ctx) error {
	if !hasRole(c, constants.DecisionMakerRoles) {
		return fiber.NewError(fiber.StatusForbidden, "only project managers and admins can perform this action")
	}
	return nil
}

// EnsureStaff gates ordinary write actions (toggling checklist items,
// submitting approvals) to agency staff.
func EnsureStaff(c *fiber.Ctx) error {
	if !hasRole(c, constants.StaffRoles) {
		return fiber.NewError(fiber.StatusForbidden, "staff role required")
	}
	return nil
}
