package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/repositories"
	"github.com/yatube-project/yatube/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles the signup, login and logout pages
type AuthHandler struct {
	userRepository repositories.UserRepository
	sessions       *session.Store
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		sessions:       sessions,
	}
}

// SignupPage renders the empty signup form
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return h.renderSignup(c, models.SignupForm{}, "")
}

// Signup registers a local account, signs the new user in and sends them to
// the listing page
func (h *AuthHandler) Signup(c echo.Context) error {
	form := models.SignupForm{
		Username:    strings.TrimSpace(c.FormValue("username")),
		DisplayName: strings.TrimSpace(c.FormValue("display_name")),
		Password:    c.FormValue("password"),
	}

	if err := validator.New().Struct(form); err != nil {
		return h.renderSignup(c, form, "Username must be 3-150 alphanumeric characters and password at least 8")
	}

	if _, err := h.userRepository.GetUserByUsername(form.Username); err == nil {
		return h.renderSignup(c, form, "This username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username:     form.Username,
		DisplayName:  form.DisplayName,
		PasswordHash: string(hash),
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.sessions.SignIn(c.Request(), c.Response(), user.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/")
}

// LoginPage renders the empty login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.renderLogin(c, models.LoginForm{}, "")
}

// Login checks the credentials and restores the intended destination carried
// in the next parameter. Unknown user and wrong password render the same
// message.
func (h *AuthHandler) Login(c echo.Context) error {
	form := models.LoginForm{
		Username: strings.TrimSpace(c.FormValue("username")),
		Password: c.FormValue("password"),
	}

	if err := validator.New().Struct(form); err != nil {
		return h.renderLogin(c, form, "Username and password are required")
	}

	user, err := h.userRepository.GetUserByUsername(form.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return h.renderLogin(c, form, "Wrong username or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)) != nil {
		return h.renderLogin(c, form, "Wrong username or password")
	}

	if err := h.sessions.SignIn(c.Request(), c.Response(), user.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	next := c.QueryParam("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	return c.Redirect(http.StatusFound, next)
}

// Logout tears the session down and returns to the listing page
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.SignOut(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderSignup(c echo.Context, form models.SignupForm, msg string) error {
	return c.Render(http.StatusOK, "signup.html", pageContext(c, "Sign up", echo.Map{
		"Error":       msg,
		"Username":    form.Username,
		"DisplayName": form.DisplayName,
	}))
}

func (h *AuthHandler) renderLogin(c echo.Context, form models.LoginForm, msg string) error {
	return c.Render(http.StatusOK, "login.html", pageContext(c, "Log in", echo.Map{
		"Error":    msg,
		"Username": form.Username,
		"Next":     c.QueryParam("next"),
	}))
}
