package fiber

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dmarquez-dev/picboard/core"
)

// Form pages

func (a *Adapter) home(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{"user": currentUser(c)})
}

func (a *Adapter) signupForm(c fiber.Ctx) error {
	return c.Render("auth/signup", fiber.Map{})
}

func (a *Adapter) loginForm(c fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{})
}

func (a *Adapter) postForm(c fiber.Ctx) error {
	return c.Render("posts/post-form", fiber.Map{"user": currentUser(c)})
}

func (a *Adapter) profile(c fiber.Ctx) error {
	return c.Render("users/user-profile", fiber.Map{"user": currentUser(c)})
}

// signup processes the registration form: store the uploaded photo, run the
// signup workflow, attach the session cookie, send the user to their profile.
func (a *Adapter) signup(pb *core.App) fiber.Handler {
	return func(c fiber.Ctx) error {
		input := core.SignUpInput{
			Username: strings.TrimSpace(c.FormValue("username")),
			Email:    strings.TrimSpace(c.FormValue("email")),
			Password: c.FormValue("password"),
		}

		// A submitted photo with no store configured is a deployment fault,
		// not something to drop silently.
		if fh, err := c.FormFile("photo"); err == nil {
			if pb.Uploads == nil {
				return core.ErrUploadsRequired
			}
			stored, err := pb.Uploads.Save(fh)
			if err != nil {
				return err
			}
			input.AvatarPath = stored.Path
		}

		result, err := pb.Auth.SignUp(c.Context(), input)
		if err != nil {
			if isFormError(err) {
				return c.Status(mapErrorToStatus(err)).Render("auth/signup", fiber.Map{
					"errorMessage": err.Error(),
				})
			}
			return err
		}

		setSessionCookie(c, result.Token, pb.Sessions.MaxAge())
		return c.Redirect().Status(fiber.StatusSeeOther).To("/userProfile")
	}
}

func (a *Adapter) login(pb *core.App) fiber.Handler {
	return func(c fiber.Ctx) error {
		input := core.SignInInput{
			Email:    strings.TrimSpace(c.FormValue("email")),
			Password: c.FormValue("password"),
		}

		result, err := pb.Auth.SignIn(c.Context(), input)
		if err != nil {
			if isFormError(err) {
				return c.Status(mapErrorToStatus(err)).Render("auth/login", fiber.Map{
					"errorMessage": err.Error(),
				})
			}
			return err
		}

		setSessionCookie(c, result.Token, pb.Sessions.MaxAge())
		return c.Redirect().Status(fiber.StatusSeeOther).To("/userProfile")
	}
}

func (a *Adapter) logout(pb *core.App) fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := pb.Auth.SignOut(c.Context(), extractToken(c)); err != nil {
			return err
		}

		clearSessionCookie(c)
		return c.Redirect().Status(fiber.StatusSeeOther).To("/")
	}
}

func (a *Adapter) createPost(pb *core.App) fiber.Handler {
	return func(c fiber.Ctx) error {
		input := core.CreatePostInput{
			Content:   c.FormValue("content"),
			MediaName: c.FormValue("picName"),
		}
		if user := currentUser(c); user != nil {
			input.CreatorID = user.ID
		}

		if fh, err := c.FormFile("photo"); err == nil {
			if pb.Uploads == nil {
				return core.ErrUploadsRequired
			}
			stored, err := pb.Uploads.Save(fh)
			if err != nil {
				return err
			}
			input.MediaPath = stored.Path
			if input.MediaName == "" {
				input.MediaName = stored.Name
			}
		}

		if _, err := pb.Posts.Create(c.Context(), input); err != nil {
			if errors.Is(err, core.ErrUnauthorized) {
				return c.Redirect().Status(fiber.StatusSeeOther).To("/login")
			}
			return err
		}

		return c.Redirect().Status(fiber.StatusSeeOther).To("/userProfile")
	}
}

func (a *Adapter) listPosts(pb *core.App) fiber.Handler {
	return func(c fiber.Ctx) error {
		posts, err := pb.Posts.List(c.Context())
		if err != nil {
			return err
		}

		return c.Render("posts/posts", fiber.Map{"posts": posts})
	}
}

func (a *Adapter) postDetails(pb *core.App) fiber.Handler {
	return func(c fiber.Ctx) error {
		post, err := pb.Posts.Get(c.Context(), c.Params("postId"))
		if err != nil {
			if errors.Is(err, core.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).SendString(core.ErrPostNotFound.Error())
			}
			return err
		}

		return c.Render("posts/post-details", fiber.Map{"post": post})
	}
}

// Cookie helpers

func setSessionCookie(c fiber.Ctx, token string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(maxAge),
	})
}

func clearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
	})
}

// isFormError reports whether a failure is handled locally by re-rendering
// the form with a message. Anything else propagates to the error handler.
func isFormError(err error) bool {
	return errors.Is(err, core.ErrFieldsRequired) ||
		errors.Is(err, core.ErrWeakPassword) ||
		errors.Is(err, core.ErrUserExists) ||
		errors.Is(err, core.ErrEmailNotRegistered) ||
		errors.Is(err, core.ErrIncorrectPassword) ||
		errors.Is(err, core.ErrInvalidCredentials)
}

// mapErrorToStatus maps domain errors to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, core.ErrFieldsRequired),
		errors.Is(err, core.ErrWeakPassword):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrUserExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrEmailNotRegistered),
		errors.Is(err, core.ErrIncorrectPassword),
		errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrSessionNotFound),
		errors.Is(err, core.ErrSessionExpired),
		errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrPostNotFound),
		errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
