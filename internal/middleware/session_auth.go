package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/repositories"
	"github.com/yatube-project/yatube/pkg/session"
)

// UserContextKey is where LoadUser stores the requesting identity.
const UserContextKey = "user"

// LoginPath is the entry point unauthenticated requests are redirected to.
const LoginPath = "/auth/login/"

// LoadUser resolves the session cookie to a user and stores it in the request
// context. A missing or stale session just leaves the request anonymous.
func LoadUser(sessions *session.Store, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id, ok := sessions.UserID(c.Request()); ok {
				if user, err := users.GetUserByID(id); err == nil {
					c.Set(UserContextKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous requests to the login page, preserving the
// intended destination in the next parameter.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request().RequestURI))
			}
			return next(c)
		}
	}
}

// CurrentUser returns the requesting identity, or nil for anonymous requests.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(UserContextKey).(*models.User)
	return user
}
