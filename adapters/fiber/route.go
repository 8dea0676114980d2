// Package fiber adapts the application to the Fiber web framework: route
// registration, form-bound handlers and the auth guard middleware.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dmarquez-dev/picboard/core"
)

// SessionCookieName carries the opaque session token.
const SessionCookieName = "pb_session"

type Adapter struct {
	app *fiber.App
}

var _ core.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(pb *core.App) error {
	guard := a.requireAuth(pb)

	// Public routes
	a.app.Get("/", a.home)
	a.app.Get("/signup", a.signupForm)
	a.app.Post("/signup", a.signup(pb))
	a.app.Get("/login", a.loginForm)
	a.app.Post("/login", a.login(pb))
	a.app.Get("/posts", a.listPosts(pb))
	a.app.Get("/details/:postId", a.postDetails(pb))
	a.app.Post("/logout", a.logout(pb))

	// Protected routes. Handlers run in registration order, so the guard
	// must come first.
	a.app.Get("/post-form", guard, a.postForm)
	a.app.Post("/post", guard, a.createPost(pb))
	a.app.Get("/userProfile", guard, a.profile)

	return nil
}
