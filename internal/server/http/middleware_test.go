package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubAuth struct {
	userID string
	err    error
}

func (s stubAuth) Authenticate(string) (string, error) { return s.userID, s.err }

func TestRequireUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ok", RequireUser(stubAuth{userID: "u1"}), func(c *gin.Context) {
		c.String(http.StatusOK, callerID(c))
	})
	r.GET("/expired", RequireUser(stubAuth{err: common.ErrTokenExpired}), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/expired", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_expired")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(logging.NewZapLogger(zap.New(core))))
	r.GET("/fine", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { respondError(c, common.ErrorNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/fine?x=1", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "/fine?x=1", entries[0].ContextMap()["path"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.NotEmpty(t, entries[1].ContextMap()["request_id"])
	assert.Equal(t, "not found", entries[1].ContextMap()["error"])
}
