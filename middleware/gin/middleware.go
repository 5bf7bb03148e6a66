package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/decoders"
	"github.com/reoring/decoders/middleware"
)

// DecodeJSON decodes the incoming JSON with d using opt (or DefaultReadOpt when
// zero value), stores the decoded T in the context, and on failure returns 400
// with the failure payload.
func DecodeJSON[T any](d decoders.Decoder[T], opt decoders.ReadOpt) gin.HandlerFunc {
	opt = middleware.OrDefault(opt)
	return func(c *gin.Context) {
		v, payload := middleware.Decode(c.Request, d, opt)
		if payload != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, payload)
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithValue(c.Request.Context(), v))
		c.Next()
	}
}

// GetValue fetches the decoded T from gin.Context.
func GetValue[T any](c *gin.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request.Context())
}
