package server

import (
	"crypto/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// requestIDKey is the gin context key carrying the per-request ULID.
const requestIDKey = "request_id"

// RequestIDHeader is echoed on every response.
const RequestIDHeader = "X-Request-Id"

// requestID assigns a ULID to each request. ULIDs sort by time, which keeps
// log correlation cheap without a tracing stack.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// accessLog emits one structured line per request.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	}
}
