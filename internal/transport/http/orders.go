package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarpushin/shopfront/pkg/httpx"
)

type checkoutRequest struct {
	AddressID string `json:"address_id"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) listOrders(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	orders, err := h.orders.Orders(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// Пагинация поверх кэшированного списка: апстрим отдаёт заказы целиком.
	total := len(orders)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": toOrderViews(orders[offset:end]),
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) getOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	order, err := h.orders.Order(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(order))
}

func (h *Handler) cancelOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.orders.Cancel(ctx, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) doCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	order, err := h.checkout.Checkout(ctx, req.AddressID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderView(order))
}

func (h *Handler) setOrderStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty status"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.orders.SetStatus(ctx, id, req.Status); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) refundOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.orders.Refund(ctx, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
