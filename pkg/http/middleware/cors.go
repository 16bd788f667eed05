package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const wildcard = "*"

// CORSConfig holds CORS configuration. A "*" entry allows anything for that list.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// CORS returns CORS middleware. Headers are written on every response the
// origin is allowed for; OPTIONS requests are answered here with 204.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")
	anyOrigin := contains(cfg.AllowOrigins, wildcard)
	anyHeader := contains(cfg.AllowHeaders, wildcard)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			h := c.Response().Header()
			origin := req.Header.Get(echo.HeaderOrigin)

			switch {
			case anyOrigin:
				h.Set(echo.HeaderAccessControlAllowOrigin, wildcard)
			case origin != "" && contains(cfg.AllowOrigins, origin):
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			default:
				return next(c)
			}

			if methods != "" {
				h.Set(echo.HeaderAccessControlAllowMethods, methods)
			}
			if anyHeader {
				h.Set(echo.HeaderAccessControlAllowHeaders, wildcard)
			} else if headers != "" {
				h.Set(echo.HeaderAccessControlAllowHeaders, headers)
			}

			// Handle preflight
			if req.Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
