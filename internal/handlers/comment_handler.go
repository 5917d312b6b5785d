package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/internal/forms"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/repositories"
	"github.com/yatube-project/yatube/pkg/session"
)

// CommentHandler handles comment submissions
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	sessions          *session.Store
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, sessions *session.Store) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		sessions:          sessions,
	}
}

// AddComment attaches a comment to the post and redirects back to the detail
// page. An invalid submission also redirects there, but the rejection is
// flashed into the session instead of being dropped silently.
func (h *CommentHandler) AddComment(c echo.Context) error {
	user := currentUser(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return notFoundIfMissing(err, "Post")
	}

	form := &forms.CommentForm{Text: c.FormValue("text")}
	if !form.Validate(validator.New()) {
		_ = h.sessions.Flash(c.Request(), c.Response(), "Comment was not added: text is required")
		return c.Redirect(http.StatusFound, postDetailPath(post.ID))
	}

	comment := &models.Comment{
		Text:     form.Text,
		PostID:   &post.ID,
		AuthorID: &user.ID,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, postDetailPath(post.ID))
}
