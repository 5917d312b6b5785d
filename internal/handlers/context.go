package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/internal/middleware"
	"github.com/yatube-project/yatube/internal/models"
	"gorm.io/gorm"
)

// currentUser returns the requesting identity loaded by the session middleware.
func currentUser(c echo.Context) *models.User {
	return middleware.CurrentUser(c)
}

// pageContext seeds the template context with the keys every page expects.
func pageContext(c echo.Context, title string, data echo.Map) echo.Map {
	if data == nil {
		data = echo.Map{}
	}
	data["Title"] = title
	data["User"] = currentUser(c)
	return data
}

// parseIDParam parses a numeric path parameter. A malformed id resolves to
// NotFound, the same as an id that matches no row.
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Page not found")
	}
	return uint(id), nil
}

// postDetailPath builds the canonical detail URL for a post.
func postDetailPath(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}

func formatGroupID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// notFoundIfMissing converts a storage miss into the not-found page.
func notFoundIfMissing(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, what+" not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
