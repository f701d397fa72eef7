package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/services/svcart"
	"singsing/storefront/internal/app/pkg/errorx"
	"singsing/storefront/internal/app/pkg/ginx"
	"singsing/storefront/internal/app/pkg/logger"
)

// CartHandler cart HTTP handlers
type CartHandler struct {
	cartService *svcart.CartService
	logger      logger.Logger
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(cartService *svcart.CartService, log logger.Logger) *CartHandler {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &CartHandler{
		cartService: cartService,
		logger:      log,
	}
}

// fail answers with the mapped envelope. Server-side failures are attached to
// the context and logged by the error middleware.
func (h *CartHandler) fail(c *gin.Context, op string, err error) {
	if errorx.StatusOf(err) < http.StatusInternalServerError {
		h.logger.Debugf(c.Request.Context(), "%s rejected: %v", op, err)
	}
	ginx.FromError(c, err)
}
