package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dmarquez-dev/picboard/core"
)

// requireAuth gates protected routes. A request whose token resolves to a
// live session and user continues with both stashed in the context locals;
// anything else is sent to the login form. No other side effects.
func (a *Adapter) requireAuth(pb *core.App) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Redirect().Status(fiber.StatusSeeOther).To("/login")
		}

		sessionData, err := pb.Auth.GetSession(c.Context(), token)
		if err != nil {
			return c.Redirect().Status(fiber.StatusSeeOther).To("/login")
		}

		// Store user and session in context for downstream handlers
		c.Locals("user", sessionData.User)
		c.Locals("session", sessionData.Session)

		return c.Next()
	}
}

// currentUser returns the user stashed by requireAuth, if any.
func currentUser(c fiber.Ctx) *core.User {
	user, _ := c.Locals("user").(*core.User)
	return user
}

// extractToken extracts the session token from the request.
// Checks the session cookie first, then falls back to a Bearer header.
func extractToken(c fiber.Ctx) string {
	if token := c.Cookies(SessionCookieName); token != "" {
		return token
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	return ""
}
