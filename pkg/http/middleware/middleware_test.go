package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	applogger "SarosAnalytics/pkg/logger"
	"SarosAnalytics/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permissive() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"*"},
	}
}

func newEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.Use(mw...)
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"pong": "1"})
	})
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCORSWildcard(t *testing.T) {
	e := newEcho(CORS(permissive()))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dashboard.example")
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "GET, POST", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}

func TestCORSPreflight(t *testing.T) {
	e := newEcho(CORS(permissive()))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "x-custom")
	rec := serve(e, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}

func TestCORSOriginList(t *testing.T) {
	e := newEcho(CORS(CORSConfig{
		AllowOrigins: []string{"https://app.example"},
		AllowMethods: []string{http.MethodGet},
	}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	rec := serve(e, req)
	assert.Equal(t, "https://app.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, echo.HeaderOrigin, rec.Header().Get(echo.HeaderVary))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://other.example")
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRequestIDGenerated(t *testing.T) {
	e := newEcho(RequestID())

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestRequestIDPropagated(t *testing.T) {
	e := newEcho(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := serve(e, req)
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLoggingRecordsFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	l, err := applogger.New(&applogger.Config{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)
	e := newEcho(RequestID(), RequestLogging(l))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["message"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
	assert.Equal(t, "/missing", entry["uri"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRecover(t *testing.T) {
	e := echo.New()
	e.Use(Recover(applogger.Nop()))
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestMetricsMiddleware(t *testing.T) {
	r := metrics.New()
	e := newEcho(Metrics(r, applogger.Nop(), 0))

	serve(e, httptest.NewRequest(http.MethodGet, "/ping", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))

	body := scrape(t, r)
	assert.Contains(t, body, `saros_http_requests_total{method="GET",route="/ping",status="200"} 1`)
	assert.Contains(t, body, `route="not_found",status="404"} 1`)
}

func scrape(t *testing.T, r *metrics.Recorder) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
