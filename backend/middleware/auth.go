package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gurukul/backend/config"
	"gurukul/backend/models"
	"gurukul/backend/store"
	"gurukul/backend/utils"
)

const (
	// Locals keys set by the auth middleware chain.
	LocalClaims = "authClaims"
	LocalUser   = "currentUser"
)

// Claims returns the token claims stashed by RequireAuth.
func Claims(c *fiber.Ctx) utils.AuthClaims {
	claims, _ := c.Locals(LocalClaims).(utils.AuthClaims)
	return claims
}

// CurrentUser returns the user row stashed by RequireUser/RequireRoles.
func CurrentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(LocalUser).(models.User)
	return user
}

// RequireAuth verifies the bearer token and stashes its claims. It does
// not touch storage; routes that need the user row chain RequireUser.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// loadUser fetches the authenticated user's row. Roles live in the
// database, not in the token, so every role check goes through here.
func loadUser(c *fiber.Ctx, st store.Store) (models.User, error) {
	if user, ok := c.Locals(LocalUser).(models.User); ok {
		return user, nil
	}
	claims := Claims(c)
	user, err := st.GetUser(claims.UserID)
	if err != nil {
		return models.User{}, err
	}
	c.Locals(LocalUser, user)
	return user, nil
}

// RequireRoles gates the route on the user's role. The allowed list is
// stated per route; there is no generic policy engine.
func RequireRoles(st store.Store, roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(c *fiber.Ctx) error {
		user, err := loadUser(c, st)
		if errors.Is(err, store.ErrNotFound) {
			return utils.Forbidden(c, "Forbidden")
		}
		if err != nil {
			return utils.InternalServerError(c, "Could not load user")
		}
		if !allowed[user.Role] {
			return utils.Forbidden(c, "Forbidden")
		}
		return c.Next()
	}
}

// RequireBatchAccess lets staff through unconditionally and students
// only when actively enrolled in the :batchId batch. Content access is
// gated purely by enrollment membership.
func RequireBatchAccess(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchID, err := strconv.Atoi(c.Params("batchId"))
		if err != nil {
			return utils.BadRequest(c, "Invalid batch ID")
		}

		user, err := loadUser(c, st)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return utils.InternalServerError(c, "Could not load user")
		}
		if models.IsStaffRole(user.Role) {
			return c.Next()
		}

		enrolled, err := st.IsEnrolled(Claims(c).UserID, uint(batchID))
		if err != nil {
			return utils.InternalServerError(c, "Could not check enrollment")
		}
		if !enrolled {
			return utils.Forbidden(c, "Not enrolled in this batch")
		}
		return c.Next()
	}
}
