package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/request"
	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// UpdateItem godoc
// @Summary      Update quantity
// @Description  Sets the quantity of the row matching product and pack. Unknown rows leave the cart unchanged.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Param        request body request.UpdateQtyRequest true "Row and quantity"
// @Success      200 {object} ginx.Response{data=response.CartResponse}
// @Failure      400 {object} ginx.Response
// @Router       /carts/{cart_id}/items [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req request.UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	cart, err := h.cartService.UpdateQty(c.Request.Context(), c.Param("cart_id"), req.ProductRef(), req.Pack, req.Qty)
	if err != nil {
		h.fail(c, "update qty", err)
		return
	}
	ginx.Success(c, response.FromCartEntity(cart))
}
