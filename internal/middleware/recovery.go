package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery converts a handler panic into a 500 response instead of a
// dropped connection, logging the stack for the admin API operator.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic in request handler",
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", r),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				ginext.H{"error": "internal server error"},
			)
		}()

		c.Next()
	}
}
