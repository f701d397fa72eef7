package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// Clear godoc
// @Summary      Clear cart
// @Tags         carts
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Success      200 {object} ginx.Response{data=response.CountResponse}
// @Router       /carts/{cart_id} [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	cartID := c.Param("cart_id")
	if err := h.cartService.ClearCart(c.Request.Context(), cartID); err != nil {
		h.fail(c, "clear cart", err)
		return
	}
	ginx.Success(c, response.CountResponse{CartID: cartID, Count: 0})
}
