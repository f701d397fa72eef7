package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// Summary godoc
// @Summary      Priced cart
// @Description  Prices each row with the loaded price table and adds the dispatch notice. Rows without a price are counted in unpriced.
// @Tags         carts
// @Produce      json
// @Param        cart_id path string true "Cart ID"
// @Success      200 {object} ginx.Response{data=response.SummaryResponse}
// @Router       /carts/{cart_id}/summary [get]
func (h *CartHandler) Summary(c *gin.Context) {
	summary, err := h.cartService.Summary(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		h.fail(c, "cart summary", err)
		return
	}
	ginx.Success(c, response.FromSummary(summary))
}
