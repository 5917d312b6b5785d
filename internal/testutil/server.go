package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/yatube-project/yatube/internal/render"
	"github.com/yatube-project/yatube/internal/router"
	"github.com/yatube-project/yatube/pkg/cache"
	"github.com/yatube-project/yatube/pkg/config"
	"github.com/yatube-project/yatube/pkg/session"
	"github.com/yatube-project/yatube/validators"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PageCacheTTL is the cache window used by test servers.
const PageCacheTTL = 20 * time.Second

// ServerDeps exposes the injected dependencies for assertions and control.
type ServerDeps struct {
	Cache    *cache.Memory
	Sessions *session.Store
	Images   *MemoryImageRepository
}

// NewServer wires the full application against the test database, with the
// in-memory cache and blob store swapped in.
func NewServer(t *testing.T, db *gorm.DB) (*echo.Echo, *ServerDeps) {
	config.Logger = zap.NewNop()

	deps := &ServerDeps{
		Cache:    cache.NewMemory(),
		Sessions: session.NewCookieStore("yatube_session", []byte("test-session-secret")),
		Images:   NewMemoryImageRepository(),
	}

	e := echo.New()
	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	require.NoError(t, router.SetupRoutes(e, db, deps.Images, deps.Cache, deps.Sessions, PageCacheTTL))

	return e, deps
}

// SessionCookie returns a signed session cookie for the given user id.
func SessionCookie(t *testing.T, sessions *session.Store, userID uint) *http.Cookie {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, sessions.SignIn(req, rec, userID))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}
