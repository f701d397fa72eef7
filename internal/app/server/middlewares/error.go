package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/pkg/ginx"
	"singsing/storefront/internal/app/pkg/logger"
)

// ErrorHandler logs errors handlers attached with c.Error and answers with
// an envelope when the handler wrote nothing.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.Errorf(c.Request.Context(), "%s %s: %v", c.Request.Method, c.FullPath(), e.Err)
		}
		if !c.Writer.Written() {
			ginx.InternalError(c, http.StatusText(http.StatusInternalServerError))
		}
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		ginx.InternalError(c, http.StatusText(http.StatusInternalServerError))
		c.Abort()
	})
}
