package cart

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/domains/apimodel/response"
	"singsing/storefront/internal/app/pkg/errorx"
	"singsing/storefront/internal/app/pkg/ginx"
)

const (
	defaultToastWait = 10
	maxToastWait     = 30
)

// WaitToast godoc
// @Summary      Wait for the next toast
// @Description  Long-polls the cart's toast channel for up to wait seconds.
// @Description  When nothing arrives the response has code=3001 and the URL to poll again.
// @Tags         carts
// @Produce      json
// @Param        cart_id path  string true  "Cart ID"
// @Param        wait    query int    false "Seconds to wait (0-30, default 10)"
// @Success      200 {object} ginx.Response{data=response.ToastResponse}
// @Success      200 {object} ginx.Response{data=ginx.PendingData} "code=3001, nothing yet"
// @Failure      400 {object} ginx.Response "wait out of range"
// @Router       /carts/{cart_id}/toasts [get]
func (h *CartHandler) WaitToast(c *gin.Context) {
	cartID := c.Param("cart_id")
	wait := defaultToastWait
	if waitStr := c.Query("wait"); waitStr != "" {
		w, err := strconv.Atoi(waitStr)
		if err != nil || w < 0 || w > maxToastWait {
			h.fail(c, "wait toast", errorx.InvalidParam("wait",
				fmt.Sprintf("wait must be a whole number of seconds between 0 and %d", maxToastWait)))
			return
		}
		wait = w
	}

	toast, err := h.cartService.WaitToast(c.Request.Context(), cartID, time.Duration(wait)*time.Second)
	if errors.Is(err, errorx.ErrNoToast) {
		ginx.Pending(c, fmt.Sprintf("/api/v1/carts/%s/toasts?wait=%d", cartID, wait))
		return
	}
	if err != nil {
		h.fail(c, "wait toast", err)
		return
	}
	ginx.Success(c, response.FromToastEntity(toast))
}
