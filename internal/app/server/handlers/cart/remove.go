package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/request"
	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// RemoveItem godoc
// @Summary      Remove from cart
// @Tags         carts
// @Produce      json
// @Param        cart_id    path  string true  "Cart ID"
// @Param        product_id query string true  "Product id or label"
// @Param        pack       query string false "Pack size, product default when omitted"
// @Success      200 {object} ginx.Response{data=response.CartResponse}
// @Failure      400 {object} ginx.Response
// @Router       /carts/{cart_id}/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		ginx.BadRequest(c, "product_id required")
		return
	}
	pack, ok := c.GetQuery("pack")

	cart, err := h.cartService.RemoveFromCart(c.Request.Context(), c.Param("cart_id"), productID, request.PackQuery(pack, ok))
	if err != nil {
		h.fail(c, "remove from cart", err)
		return
	}
	ginx.Success(c, response.FromCartEntity(cart))
}
