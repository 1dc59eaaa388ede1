package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	errs "landingcms/internal/errors"
)

// respondError translates a domain error to the JSON envelope. Internal
// errors are logged server-side and reach the client as a generic message.
func respondError(c echo.Context, err error) error {
	status, body := errs.MapToHTTP(err)
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(status, body)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errs.NewValidation("id", "must be a positive integer")
	}
	return uint(id), nil
}

// queryInt parses an optional integer query parameter, falling back on junk.
func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
