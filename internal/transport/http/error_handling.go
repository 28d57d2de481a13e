package httpt

import (
	"errors"
	"net/http"

	"catalog/internal/entity"
	"catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *ItemHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, entity.ErrInvalidData):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, op+" rejected invalid data",
			logger.Any("error", err),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item data"})
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "item not found",
			logger.String("item_id", c.Param("id")),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal service error"})
	}
}

func (h *ItemHandler) handleInvalidID(c *gin.Context, op, value string) {
	h.log.Ctx(c.Request.Context()).
		LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid item id format",
			logger.String("op", op),
			logger.String("value", value),
			logger.String("client_ip", c.ClientIP()),
		)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item id"})
}

func (h *ItemHandler) handleInvalidBody(c *gin.Context, op string, err error) {
	h.log.Ctx(c.Request.Context()).
		LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid request body",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("client_ip", c.ClientIP()),
		)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}

func (h *ItemHandler) handleInvalidPagination(c *gin.Context, op, param, value string) {
	h.log.Ctx(c.Request.Context()).
		LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid pagination parameter",
			logger.String("op", op),
			logger.String("param", param),
			logger.String("value", value),
		)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
}
