package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"singsing/storefront/internal/app/pkg/logger"
	"singsing/storefront/internal/app/server/handlers/cart"
	"singsing/storefront/internal/app/server/middlewares"
)

// SetupRoutes builds the engine with every route group.
func SetupRoutes(cartHandler *cart.CartHandler, log logger.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "storefront",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/products", cartHandler.ListProducts)
		v1.GET("/prices", cartHandler.GetPrices)

		carts := v1.Group("/carts")
		{
			carts.POST("", cartHandler.Create)
			carts.GET("/:cart_id", cartHandler.Get)
			carts.PUT("/:cart_id", cartHandler.Replace)
			carts.DELETE("/:cart_id", cartHandler.Clear)

			carts.POST("/:cart_id/items", cartHandler.AddItem)
			carts.PATCH("/:cart_id/items", cartHandler.UpdateItem)
			carts.DELETE("/:cart_id/items", cartHandler.RemoveItem)

			carts.GET("/:cart_id/count", cartHandler.Count)
			carts.GET("/:cart_id/summary", cartHandler.Summary)
			carts.GET("/:cart_id/toasts", cartHandler.WaitToast)
		}
	}

	return r
}
