package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/pkg/cache"
)

// PageCache serves byte-identical cached copies of successful GET responses
// for the route it wraps, keyed by request URI so each listing page caches
// independently. Concurrent misses race to populate; last writer wins.
func PageCache(store cache.Cache, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := c.Request().RequestURI
			ctx := c.Request().Context()

			if entry, ok, err := store.Get(ctx, key); err == nil && ok {
				return c.Blob(entry.Status, entry.ContentType, entry.Body)
			}

			rec := &responseRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec

			if err := next(c); err != nil {
				return err
			}

			if rec.status == http.StatusOK {
				_ = store.Set(ctx, key, &cache.Entry{
					Status:      rec.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        rec.body.Bytes(),
				}, ttl)
			}
			return nil
		}
	}
}

// responseRecorder tees the response body so it can be cached after writing.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
