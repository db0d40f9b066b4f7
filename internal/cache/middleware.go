package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwell/inkwell/pkg/logging"
)

// PageCache replays cached rendered bodies byte-identically within ttl.
// The key is the full request path including the query string, so each
// page of a paginated listing caches separately. Only successful GET
// responses are stored.
func PageCache(store Store, ttl time.Duration) gin.HandlerFunc {
	logger := logging.WithComponent("page-cache")

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || store == nil || ttl <= 0 {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()

		entry, ok, err := store.Get(c.Request.Context(), key)
		if err != nil && err != ErrCacheDisabled {
			logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture

		c.Next()

		if capture.Status() != http.StatusOK {
			return
		}
		stored := &Entry{
			Status:      capture.Status(),
			ContentType: capture.Header().Get("Content-Type"),
			Body:        capture.body.Bytes(),
		}
		if err := store.Set(c.Request.Context(), key, stored, ttl); err != nil && err != ErrCacheDisabled {
			logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// bodyCapture tees the response body while it streams to the client
type bodyCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
