package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/request"
	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// Replace godoc
// @Summary      Replace cart
// @Description  Overwrites the cart. Rows are normalized, rows without a product are dropped and duplicates merged.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Param        request body request.ReplaceCartRequest true "Cart rows"
// @Success      200 {object} ginx.Response{data=response.CartResponse}
// @Failure      400 {object} ginx.Response
// @Router       /carts/{cart_id} [put]
func (h *CartHandler) Replace(c *gin.Context) {
	var req request.ReplaceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	cart, err := h.cartService.SetCart(c.Request.Context(), c.Param("cart_id"), req.ToRawItems())
	if err != nil {
		h.fail(c, "replace cart", err)
		return
	}
	ginx.Success(c, response.FromCartEntity(cart))
}
