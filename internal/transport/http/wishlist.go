package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/pkg/money"
)

type wishlistRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
}

func (r *wishlistRequest) toDomain() domain.WishlistItem {
	return domain.WishlistItem{
		ProductID:  r.ProductID,
		Name:       r.Name,
		PriceCents: money.FromMajor(r.Price),
		ImageURL:   r.ImageURL,
	}
}

func (h *Handler) listWishlist(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	c.JSON(http.StatusOK, gin.H{"items": toWishlistViews(h.wishlist.Items(ctx))})
}

func (h *Handler) addWishlistItem(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty product_id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.wishlist.Add(ctx, req.toDomain()); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": toWishlistViews(h.wishlist.Items(ctx))})
}

func (h *Handler) removeWishlistItem(c *gin.Context) {
	productID := c.Param("productID")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty product_id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.wishlist.Remove(ctx, productID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": toWishlistViews(h.wishlist.Items(ctx))})
}

func (h *Handler) toggleWishlistItem(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty product_id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	added, err := h.wishlist.Toggle(ctx, req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_wishlist": added})
}

func (h *Handler) reconcileWishlist(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.wishlist.Reconcile(ctx); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": toWishlistViews(h.wishlist.Items(ctx))})
}
