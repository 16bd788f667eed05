package middleware

import (
	"time"

	applogger "SarosAnalytics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per HTTP request.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			commit(c, next(c))

			l.Info("http request",
				applogger.String("method", req.Method),
				applogger.String("uri", req.RequestURI),
				applogger.String("remote", c.RealIP()),
				applogger.Int("status", res.Status),
				applogger.Duration("latency_ms", time.Since(start)),
				applogger.String("request_id", GetRequestID(c)),
			)

			return nil
		}
	}
}

// commit hands a handler error to echo's error handler so the final status
// is written before the caller inspects the response.
func commit(c echo.Context, err error) {
	if err != nil {
		c.Error(err)
	}
}
