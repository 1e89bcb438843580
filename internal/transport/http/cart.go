package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/pkg/money"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

type cartAddRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	ImageURL  string  `json:"image_url"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) cartSummary(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	view := toCartView(h.cart.Items(ctx), h.cart.Total(ctx), h.cart.ItemCount(ctx), h.cart.IsOpen())
	c.JSON(http.StatusOK, view)
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item := domain.CartItem{
		ID:         domain.CartLineID(req.ProductID, req.Size),
		ProductID:  req.ProductID,
		Name:       req.Name,
		PriceCents: money.FromMajor(req.Price),
		Quantity:   req.Quantity,
		Size:       req.Size,
		ImageURL:   req.ImageURL,
	}
	if err := validate.CartItem(&item); err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	h.cart.Add(ctx, item)
	view := toCartView(h.cart.Items(ctx), h.cart.Total(ctx), h.cart.ItemCount(ctx), h.cart.IsOpen())
	c.JSON(http.StatusOK, view)
}

func (h *Handler) updateCartQuantity(c *gin.Context) {
	lineID := c.Param("id")
	if lineID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}
	var req cartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	h.cart.UpdateQuantity(ctx, lineID, req.Quantity)
	view := toCartView(h.cart.Items(ctx), h.cart.Total(ctx), h.cart.ItemCount(ctx), h.cart.IsOpen())
	c.JSON(http.StatusOK, view)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	lineID := c.Param("id")
	if lineID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	h.cart.Remove(ctx, lineID)
	view := toCartView(h.cart.Items(ctx), h.cart.Total(ctx), h.cart.ItemCount(ctx), h.cart.IsOpen())
	c.JSON(http.StatusOK, view)
}

func (h *Handler) clearCart(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	h.cart.Clear(ctx)
	c.Status(http.StatusNoContent)
}

func (h *Handler) toggleCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"is_open": h.cart.Toggle()})
}
