package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// Create godoc
// @Summary      Issue a cart id
// @Description  Returns a new cart id for a shopper session. Carts are created lazily on first write.
// @Tags         carts
// @Produce      json
// @Success      200 {object} ginx.Response{data=response.NewCartResponse}
// @Router       /carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	ginx.Success(c, response.NewCartResponse{CartID: h.cartService.NewCartID()})
}
