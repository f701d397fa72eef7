package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// Count godoc
// @Summary      Badge count
// @Tags         carts
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Success      200 {object} ginx.Response{data=response.CountResponse}
// @Router       /carts/{cart_id}/count [get]
func (h *CartHandler) Count(c *gin.Context) {
	cartID := c.Param("cart_id")
	count, err := h.cartService.CartCount(c.Request.Context(), cartID)
	if err != nil {
		h.fail(c, "cart count", err)
		return
	}
	ginx.Success(c, response.CountResponse{CartID: cartID, Count: count})
}
