package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"singsing/storefront/internal/app/pkg/logger"
)

// HeaderRequestID carries the trace id in and out.
const HeaderRequestID = "X-Request-ID"

// Logger tags the request context with a trace id (and the cart id when
// the route has one) and logs every request once it completes.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(HeaderRequestID)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		ctx := logger.WithTraceID(c.Request.Context(), traceID)
		if cartID := c.Param("cart_id"); cartID != "" {
			ctx = logger.WithCartID(ctx, cartID)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, traceID)

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			log.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			log.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			log.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
