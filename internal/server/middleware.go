package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionCookie = "vg_session"
	sessionKey    = "session"
)

// RequestLogger logs one line per request
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Debug("request", fields...)
		}
	}
}

// BindSession attaches the visitor's session, creating one when the cookie is
// missing or refers to an expired session
func BindSession(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := lookupSession(c, store)
		if !ok {
			sess = store.Create()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// PeekSession attaches the visitor's session if one exists. Otherwise the
// request sees a blank session that is never stored, so read-only visits
// leave nothing behind.
func PeekSession(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := lookupSession(c, store)
		if !ok {
			sess = store.Blank()
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func lookupSession(c *gin.Context, store *SessionStore) (*Session, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	return store.Get(id)
}

func currentSession(c *gin.Context) *Session {
	return c.MustGet(sessionKey).(*Session)
}
