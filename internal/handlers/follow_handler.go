package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/pagination"
	"github.com/yatube-project/yatube/internal/repositories"
)

// FollowHandler handles the follow feed and the follow/unfollow toggles
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, postRepo repositories.PostRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		postRepository:   postRepo,
	}
}

// FollowIndex renders the paginated posts of every author the requester
// follows. An empty follow set is an empty page, not an error.
func (h *FollowHandler) FollowIndex(c echo.Context) error {
	user := currentUser(c)

	authorIDs, err := h.followRepository.GetFollowedAuthorIDs(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	total, err := h.postRepository.CountPostsByAuthorIDs(authorIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.New(int(total), pagination.ParseNumber(c.QueryParam("page")))
	posts, err := h.postRepository.GetPostsByAuthorIDs(authorIDs, page.Offset(), page.Limit())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "follow.html", pageContext(c, "My feed", echo.Map{
		"Posts": posts,
		"Page":  page,
	}))
}

// FollowUser subscribes the requester to the target author. Following
// yourself or someone you already follow is a no-op; either way the request
// lands back on the requester's profile.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user := currentUser(c)

	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return notFoundIfMissing(err, "User")
	}

	target := "/profile/" + user.Username + "/"

	if author.ID == user.ID {
		return c.Redirect(http.StatusFound, target)
	}
	following, err := h.followRepository.IsFollowing(user.ID, author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if following {
		return c.Redirect(http.StatusFound, target)
	}

	if err := h.followRepository.CreateFollow(&models.Follow{UserID: user.ID, AuthorID: author.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, target)
}

// UnfollowUser removes the subscription if present; absence is not an error.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user := currentUser(c)

	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return notFoundIfMissing(err, "User")
	}

	if err := h.followRepository.DeleteFollow(user.ID, author.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}
