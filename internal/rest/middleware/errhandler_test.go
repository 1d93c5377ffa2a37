package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flexprice/playbill/internal/config"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/sentry"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()

	r := gin.New()
	r.Use(RequestIDMiddleware, ErrorHandler(log, sentry.NewSentryService(config.GetDefaultConfig(), log)))
	r.GET("/", handler)
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) {
		c.Error(ierr.NewError("play not found in catalog").
			WithHint("Unknown play: macbeth").
			WithReportableDetails(map[string]any{"play_id": "macbeth"}).
			Mark(ierr.ErrUnknownPlay))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ierr.ErrorResponse
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Unknown play: macbeth", resp.Error.Display)
	assert.Equal(t, "macbeth", resp.Error.Details["play_id"])
}

func TestErrorHandlerFallbackMessage(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) {
		c.Error(ierr.NewError("boom").Error())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ierr.ErrorResponse
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error.Display)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}
