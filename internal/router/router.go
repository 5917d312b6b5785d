package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/yatube-project/yatube/internal/handlers"
	"github.com/yatube-project/yatube/internal/middleware"
	"github.com/yatube-project/yatube/internal/models"
	"github.com/yatube-project/yatube/internal/repositories"
	"github.com/yatube-project/yatube/pkg/cache"
	"github.com/yatube-project/yatube/pkg/config"
	"github.com/yatube-project/yatube/pkg/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.HTTPErrorHandler = httpErrorHandler(e)
}

// SetupRoutes migrates the schema, builds the repositories and wires every
// handler. The image repository, page cache and session store are injected so
// tests can swap in in-memory implementations.
func SetupRoutes(
	e *echo.Echo,
	db *gorm.DB,
	imageRepo repositories.ImageRepository,
	pageCache cache.Cache,
	sessions *session.Store,
	pageCacheTTL time.Duration,
) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}
	config.Logger.Info("Database migrations completed")

	userRepo := repositories.NewPostgresUserRepository(db)
	groupRepo := repositories.NewPostgresGroupRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// Identity loading applies to every route; pages render differently for
	// signed-in users.
	e.Use(middleware.LoadUser(sessions, userRepo))

	e.GET("/healthz", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(userRepo, sessions)
	e.GET("/auth/signup/", authHandler.SignupPage)
	e.POST("/auth/signup/", authHandler.Signup)
	e.GET("/auth/login/", authHandler.LoginPage)
	e.POST("/auth/login/", authHandler.Login)
	e.GET("/auth/logout/", authHandler.Logout)

	postHandler := handlers.NewPostHandler(postRepo, userRepo, groupRepo, followRepo, commentRepo, imageRepo, sessions)
	e.GET("/", postHandler.Index, middleware.PageCache(pageCache, pageCacheTTL))
	e.GET("/group/:slug/", postHandler.GroupPosts)
	e.GET("/profile/:username/", postHandler.Profile)
	e.GET("/posts/:id/", postHandler.PostDetail)
	e.GET("/media/posts/:name", postHandler.ServeImage)

	authRequired := middleware.RequireAuth()
	e.GET("/create/", postHandler.CreatePostPage, authRequired)
	e.POST("/create/", postHandler.CreatePost, authRequired)
	e.GET("/posts/:id/edit/", postHandler.EditPostPage, authRequired)
	e.POST("/posts/:id/edit/", postHandler.EditPost, authRequired)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, sessions)
	e.POST("/posts/:id/comment", commentHandler.AddComment, authRequired)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, postRepo)
	e.GET("/follow/", followHandler.FollowIndex, authRequired)
	e.GET("/profile/:username/follow/", followHandler.FollowUser, authRequired)
	e.GET("/profile/:username/unfollow/", followHandler.UnfollowUser, authRequired)

	config.Logger.Info("All routes configured")
	return nil
}

// httpErrorHandler renders the custom not-found page for 404s and defers to
// Echo's default handler for everything else.
func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		if code == http.StatusNotFound {
			renderErr := c.Render(http.StatusNotFound, "not_found.html", echo.Map{
				"Title": "Page not found",
				"User":  middleware.CurrentUser(c),
			})
			if renderErr == nil {
				return
			}
		}

		if code >= http.StatusInternalServerError {
			config.Logger.Error("request failed",
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
