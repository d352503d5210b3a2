package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/fairychess/internal/middleware"
	"github.com/mcoot/fairychess/internal/testutil"
)

func TestLoggingRecordsRequest(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "http request", line["msg"])
	assert.Equal(t, "/api/v1/games", line["path"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.NotEmpty(t, line["request_id"])
	assert.Equal(t, line["request_id"], rr.Header().Get(middleware.RequestIDHeader))
}

func TestLoggingKeepsCallerRequestID(t *testing.T) {
	var seen string
	handler := middleware.Logging(testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestID(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rr.Header().Get(middleware.RequestIDHeader))
}

func TestLoggingWriterSupportsFlushAndUnwrap(t *testing.T) {
	handler := middleware.Logging(testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := w.(http.Flusher)
		assert.True(t, ok)
		_, ok = w.(interface{ Unwrap() http.ResponseWriter })
		assert.True(t, ok)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRecoveryHandlesPanic(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	var recovered any
	handler := middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, err any) {
		recovered = err
		w.WriteHeader(http.StatusInternalServerError)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("board invariant broken")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/games/x/touch", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "board invariant broken", recovered)
	assert.True(t, strings.Contains(buf.String(), `"msg":"panic recovered"`))
}

func TestRecoveryDefaultHandler(t *testing.T) {
	handler := middleware.Recovery(testutil.NopLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
