package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/request"
	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// AddItem godoc
// @Summary      Add to cart
// @Description  Adds a row, summing into an existing row of the same product and pack, and sends a toast.
// @Description  pack and qty accept numbers or strings ("3kg", "2").
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Param        request body request.AddItemRequest true "Row to add"
// @Success      200 {object} ginx.Response{data=response.AddItemResponse}
// @Failure      400 {object} ginx.Response "empty product"
// @Router       /carts/{cart_id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	res, err := h.cartService.AddToCart(c.Request.Context(), c.Param("cart_id"), req.ToRawItem(), req.ToastMsg)
	if err != nil {
		h.fail(c, "add to cart", err)
		return
	}
	ginx.Success(c, response.FromAddResult(res))
}
