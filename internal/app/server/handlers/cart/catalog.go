package cart

import (
	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/ginx"
)

// ListProducts godoc
// @Summary      Product catalog
// @Tags         catalog
// @Produce      json
// @Success      200 {object} ginx.Response{data=[]response.ProductResponse}
// @Router       /products [get]
func (h *CartHandler) ListProducts(c *gin.Context) {
	ginx.Success(c, response.FromCatalog(h.cartService.Catalog()))
}

// GetPrices godoc
// @Summary      Price table
// @Tags         catalog
// @Produce      json
// @Success      200 {object} ginx.Response{data=response.PriceTableResponse}
// @Failure      404 {object} ginx.Response "no price table loaded"
// @Router       /prices [get]
func (h *CartHandler) GetPrices(c *gin.Context) {
	table, err := h.cartService.PriceTable()
	if err != nil {
		h.fail(c, "price table", err)
		return
	}
	ginx.Success(c, response.FromPriceTable(table))
}
