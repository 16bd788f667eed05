package middleware

import (
	"net/http"
	"time"

	applogger "SarosAnalytics/pkg/logger"
	"SarosAnalytics/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request metrics labelled by route template (c.Path()) to
// keep cardinality low. Unmatched paths share the "not_found" label.
func Metrics(rec *metrics.Recorder, l *applogger.Logger, slowThreshold time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "" {
				route = "unknown"
			}
			method := c.Request().Method

			done := rec.Begin(route, method)
			start := time.Now()

			commit(c, next(c))

			done()
			res := c.Response()
			if res.Status == http.StatusNotFound {
				route = "not_found"
			}
			duration := time.Since(start)
			rec.RecordRequest(route, method, res.Status, duration, res.Size)

			if slowThreshold > 0 && duration >= slowThreshold {
				l.Warn("http request slow",
					applogger.String("route", route),
					applogger.String("method", method),
					applogger.Int("status", res.Status),
					applogger.Duration("duration_ms", duration),
					applogger.Int64("bytes", res.Size),
				)
			}
			return nil
		}
	}
}
