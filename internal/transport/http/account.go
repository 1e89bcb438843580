package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarpushin/shopfront/internal/domain"
)

func (h *Handler) listAddresses(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	addresses, err := h.account.Addresses(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

func (h *Handler) createAddress(c *gin.Context) {
	var req domain.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	created, err := h.account.CreateAddress(ctx, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) deleteAddress(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.account.DeleteAddress(ctx, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) sendContact(c *gin.Context) {
	var req domain.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.account.SendContactMessage(ctx, &req); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) dashboardStats(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	stats, err := h.account.DashboardStats(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStatsView(stats))
}
