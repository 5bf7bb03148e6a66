package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/decoders"
	"github.com/reoring/decoders/middleware"
)

// DecodeJSON decodes the request JSON with d, stores the decoded T in the
// request context on success, or returns 400 with the failure payload.
func DecodeJSON[T any](d decoders.Decoder[T], opt decoders.ReadOpt) echo.MiddlewareFunc {
	opt = middleware.OrDefault(opt)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, payload := middleware.Decode(c.Request(), d, opt)
			if payload != nil {
				return c.JSON(http.StatusBadRequest, payload)
			}
			ctx := middleware.ContextWithValue(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetValue fetches the decoded T from echo.Context.
func GetValue[T any](c echo.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request().Context())
}
