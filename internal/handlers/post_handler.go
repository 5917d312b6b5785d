package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/internal/forms"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/pagination"
	"github.com/yatube-project/yatube/internal/repositories"
	"github.com/yatube-project/yatube/pkg/images"
	"github.com/yatube-project/yatube/pkg/session"
	"gorm.io/gorm"
)

// PostHandler handles the post listing, reading and writing pages
type PostHandler struct {
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
	groupRepository   repositories.GroupRepository
	followRepository  repositories.FollowRepository
	commentRepository repositories.CommentRepository
	imageRepository   repositories.ImageRepository
	sessions          *session.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	groupRepo repositories.GroupRepository,
	followRepo repositories.FollowRepository,
	commentRepo repositories.CommentRepository,
	imageRepo repositories.ImageRepository,
	sessions *session.Store,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		userRepository:    userRepo,
		groupRepository:   groupRepo,
		followRepository:  followRepo,
		commentRepository: commentRepo,
		imageRepository:   imageRepo,
		sessions:          sessions,
	}
}

// Index renders the paginated global listing. The route is wrapped by the
// page-cache middleware, so within the cache window this handler is not hit.
func (h *PostHandler) Index(c echo.Context) error {
	total, err := h.postRepository.CountAllPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.New(int(total), pagination.ParseNumber(c.QueryParam("page")))
	posts, err := h.postRepository.GetAllPosts(page.Offset(), page.Limit())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "index.html", pageContext(c, "Latest updates", echo.Map{
		"Posts": posts,
		"Page":  page,
	}))
}

// GroupPosts renders the listing of a single group, resolved by slug
func (h *PostHandler) GroupPosts(c echo.Context) error {
	group, err := h.groupRepository.GetGroupBySlug(c.Param("slug"))
	if err != nil {
		return notFoundIfMissing(err, "Group")
	}

	total, err := h.postRepository.CountPostsByGroupID(group.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.New(int(total), pagination.ParseNumber(c.QueryParam("page")))
	posts, err := h.postRepository.GetPostsByGroupID(group.ID, page.Offset(), page.Limit())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "group_list.html", pageContext(c, group.Title, echo.Map{
		"Group": group,
		"Posts": posts,
		"Page":  page,
	}))
}

// Profile renders an author's listing plus whether the requesting user
// already follows them (false for anonymous visitors and for the author
// viewing their own page).
func (h *PostHandler) Profile(c echo.Context) error {
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return notFoundIfMissing(err, "User")
	}

	total, err := h.postRepository.CountPostsByAuthorID(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.New(int(total), pagination.ParseNumber(c.QueryParam("page")))
	posts, err := h.postRepository.GetPostsByAuthorID(author.ID, page.Offset(), page.Limit())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	following := false
	if user := currentUser(c); user != nil && user.ID != author.ID {
		following, err = h.followRepository.IsFollowing(user.ID, author.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Render(http.StatusOK, "profile.html", pageContext(c, author.Name(), echo.Map{
		"Author":    author,
		"Posts":     posts,
		"Page":      page,
		"PostCount": total,
		"Following": following,
	}))
}

// PostDetail renders one post with its comments. The comment form is part of
// the page for everyone; submitting it is gated by the comment handler.
func (h *PostHandler) PostDetail(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return notFoundIfMissing(err, "Post")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "post_detail.html", pageContext(c, post.Text, echo.Map{
		"Post":     post,
		"Comments": comments,
		"Form":     &forms.CommentForm{},
		"Flashes":  h.sessions.PopFlashes(c.Request(), c.Response()),
	}))
}

// CreatePostPage renders the empty post form
func (h *PostHandler) CreatePostPage(c echo.Context) error {
	return h.renderPostForm(c, &forms.PostForm{}, nil)
}

// CreatePost validates the submission and persists a new post owned by the
// requesting identity, then redirects to their profile. Validation failure
// redisplays the form with field errors and nothing is written.
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := currentUser(c)

	form, upload := h.bindPostForm(c)
	if !form.Valid() {
		return h.renderPostForm(c, form, nil)
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: user.ID,
	}
	if gid, ok := form.GroupID(); ok {
		post.GroupID = &gid
	}

	if upload != nil {
		if err := h.saveUpload(c, upload); err != nil {
			return err
		}
		post.ImagePath = upload.Path
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// EditPostPage renders the form prefilled with the post being edited. Any
// authenticated identity other than the author is silently redirected to the
// post detail page.
func (h *PostHandler) EditPostPage(c echo.Context) error {
	post, redirect, err := h.loadOwnPost(c)
	if err != nil || redirect {
		return err
	}

	form := &forms.PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = formatGroupID(*post.GroupID)
	}
	return h.renderPostForm(c, form, post)
}

// EditPost applies a valid submission to the existing post in place and
// redirects to the post detail page. The creation timestamp never changes.
func (h *PostHandler) EditPost(c echo.Context) error {
	post, redirect, err := h.loadOwnPost(c)
	if err != nil || redirect {
		return err
	}

	form, upload := h.bindPostForm(c)
	if !form.Valid() {
		return h.renderPostForm(c, form, post)
	}

	post.Text = form.Text
	post.GroupID = nil
	if gid, ok := form.GroupID(); ok {
		post.GroupID = &gid
	}
	if upload != nil {
		if err := h.saveUpload(c, upload); err != nil {
			return err
		}
		post.ImagePath = upload.Path
	}

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// ServeImage streams a stored post image blob
func (h *PostHandler) ServeImage(c echo.Context) error {
	img, err := h.imageRepository.GetImage(c.Request().Context(), images.PathPrefix+c.Param("name"))
	if err != nil {
		if errors.Is(err, repositories.ErrImageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, img.ContentType, img.Data)
}

// bindPostForm binds and validates the submitted fields, including the group
// existence check and the image payload check, both reported as field errors.
func (h *PostHandler) bindPostForm(c echo.Context) (*forms.PostForm, *images.Upload) {
	form := &forms.PostForm{
		Text:  c.FormValue("text"),
		Group: c.FormValue("group"),
	}
	form.Validate(validator.New())

	if form.Valid() {
		if gid, ok := form.GroupID(); ok {
			if _, err := h.groupRepository.GetGroupByID(gid); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					form.AddError("group", "Group does not exist")
				} else {
					form.AddError("group", "Group could not be checked")
				}
			}
		}
	}

	var upload *images.Upload
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		form.Image = fh
		upload, err = images.Process(fh)
		if err != nil {
			upload = nil
			form.AddError("image", "Upload a well-formed image")
		}
	}

	return form, upload
}

func (h *PostHandler) saveUpload(c echo.Context, upload *images.Upload) error {
	err := h.imageRepository.SaveImage(c.Request().Context(), &repositories.StoredImage{
		Path:        upload.Path,
		ContentType: upload.ContentType,
		Data:        upload.Data,
		Thumbnail:   upload.Thumbnail,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}

func (h *PostHandler) renderPostForm(c echo.Context, form *forms.PostForm, post *models.Post) error {
	groups, err := h.groupRepository.ListGroups()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	title := "New post"
	if post != nil {
		title = "Edit post"
	}
	return c.Render(http.StatusOK, "create_post.html", pageContext(c, title, echo.Map{
		"Form":   form,
		"Groups": groups,
		"IsEdit": post != nil,
		"Post":   post,
	}))
}

// loadOwnPost resolves the :id post and enforces ownership. A non-owner gets
// a silent redirect to the detail page (redirect=true, err carries the
// redirect response); a missing post is NotFound.
func (h *PostHandler) loadOwnPost(c echo.Context) (*models.Post, bool, error) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, false, err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return nil, false, notFoundIfMissing(err, "Post")
	}

	if user := currentUser(c); user == nil || user.ID != post.AuthorID {
		return nil, true, c.Redirect(http.StatusFound, postDetailPath(post.ID))
	}
	return post, false, nil
}
