package httpt

import (
	"net/http"
	"strconv"

	"catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_defaultSkip  = "0"
	_defaultLimit = "10"
)

func (h *ItemHandler) createItemHandler(c *gin.Context) {
	const op = "transport.createItemHandler"

	log := h.log.Ctx(c.Request.Context())

	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleInvalidBody(c, op, err)
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), req.toDraft())
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(c.Request.Context(), logger.InfoLevel, "item created",
		logger.Int64("item_id", item.ID),
	)

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) listItemsHandler(c *gin.Context) {
	const op = "transport.listItemsHandler"

	skip, err := strconv.Atoi(c.DefaultQuery("skip", _defaultSkip))
	if err != nil || skip < 0 {
		h.handleInvalidPagination(c, op, "skip", c.Query("skip"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", _defaultLimit))
	if err != nil || limit < 0 {
		h.handleInvalidPagination(c, op, "limit", c.Query("limit"))
		return
	}

	items, err := h.svc.ListItems(c.Request.Context(), skip, limit)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) getItemHandler(c *gin.Context) {
	const op = "transport.getItemHandler"

	id, ok := h.parseItemID(c, op)
	if !ok {
		return
	}

	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) updateItemHandler(c *gin.Context) {
	const op = "transport.updateItemHandler"

	id, ok := h.parseItemID(c, op)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleInvalidBody(c, op, err)
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), id, req.toPatch())
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) deleteItemHandler(c *gin.Context) {
	const op = "transport.deleteItemHandler"

	id, ok := h.parseItemID(c, op)
	if !ok {
		return
	}

	item, err := h.svc.DeleteItem(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) parseItemID(c *gin.Context, op string) (int64, bool) {
	idStr := c.Param("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		h.handleInvalidID(c, op, idStr)
		return 0, false
	}
	return id, true
}
