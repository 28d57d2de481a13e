package httpt

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *ItemHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := h.router.Group("/api/v1")

	items := api.Group("/items")
	{
		items.POST("", h.createItemHandler)
		items.GET("", h.listItemsHandler)
		items.GET("/:id", h.getItemHandler)
		items.PUT("/:id", h.updateItemHandler)
		items.DELETE("/:id", h.deleteItemHandler)
	}
}
