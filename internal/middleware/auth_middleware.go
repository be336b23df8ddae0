package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Jason26214/MoviesApi/internal/auth"
)

const actorKey = "actor"

// RequireAuth validates the Bearer token and stores the resulting actor in
// the request locals. A missing or malformed header fails with 401 before
// any handler logic runs; role and ownership decisions belong to the
// authorization engine, not here.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing token"})
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token format"})
		}

		actor, err := tokens.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// ActorFromCtx returns the actor stored by RequireAuth, or nil on routes
// that never passed through it.
func ActorFromCtx(c *fiber.Ctx) *auth.Actor {
	actor, _ := c.Locals(actorKey).(*auth.Actor)
	return actor
}
