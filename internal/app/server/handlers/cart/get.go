package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      Get cart
// @Description  Returns the normalized cart. Corrupt stored content is repaired on read.
// @Tags         carts
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Success      200 {object} ginx.Response{data=response.CartResponse}
// @Failure      503 {object} ginx.Response "storage unavailable"
// @Router       /carts/{cart_id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		h.fail(c, "get cart", err)
		return
	}
	ginx.Success(c, response.FromCartEntity(cart))
}
