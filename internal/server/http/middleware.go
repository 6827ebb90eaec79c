package http

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey    = "user_id"
	requestIDKey = "request_id"
)

type authenticator interface {
	Authenticate(header string) (string, error)
}

// RequireUser rejects requests without a valid bearer token and stores the
// caller's id in the gin context.
func RequireUser(a authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := a.Authenticate(c.GetHeader(common.AuthorizationHeaderName))
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// RequestLogger logs every request with its latency and a request id, taken
// from X-Request-ID when the client sends one.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := strings.TrimSpace(c.Request.Header.Get("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", requestID,
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if uid := callerID(c); uid != "" {
			args = append(args, "user_id", uid)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Error())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.Error(ctx, "http_request", args...)
		case status >= 400:
			logger.Warn(ctx, "http_request", args...)
		default:
			logger.Info(ctx, "http_request", args...)
		}
	}
}
