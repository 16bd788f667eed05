package http

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/labstack/echo/v4"
)

var queryBinder = &echo.DefaultBinder{}

// BindQuery fills dst from the URL query string only (tag `query`) and then
// applies `default` tags. The request body is never read.
func BindQuery(c echo.Context, dst interface{}) error {
	if err := queryBinder.BindQueryParams(c, dst); err != nil {
		return fmt.Errorf("bind query: %w", err)
	}
	if err := defaults.Set(dst); err != nil {
		return fmt.Errorf("query defaults: %w", err)
	}
	return nil
}

// HasQuery reports whether the query string carries key, even with an empty value.
func HasQuery(c echo.Context, key string) bool {
	return c.QueryParams().Has(key)
}
