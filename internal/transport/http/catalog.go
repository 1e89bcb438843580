package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/pkg/money"
)

// filterFromQuery — фильтр каталога из query-строки. Цены в запросе
// мажорные, во внутреннем фильтре — минорные.
func filterFromQuery(c *gin.Context) *domain.ProductFilter {
	f := &domain.ProductFilter{
		Search:     c.Query("search"),
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
		Sizes:      c.QueryArray("size"),
		SortBy:     c.Query("sort"),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil && v >= 0 {
		cents := money.FromMajor(v)
		f.MinPriceCents = &cents
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil && v >= 0 {
		cents := money.FromMajor(v)
		f.MaxPriceCents = &cents
	}
	return f
}

func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	products, err := h.catalog.Products(ctx, filterFromQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductViews(products)})
}

func (h *Handler) getProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	p, err := h.catalog.Product(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(p))
}

func (h *Handler) filterMeta(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	meta, err := h.catalog.FilterMeta(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	InStock     bool     `json:"in_stock"`
}

func (r *productRequest) toDomain(id string) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Brand:       r.Brand,
		Category:    r.Category,
		Sizes:       r.Sizes,
		PriceCents:  money.FromMajor(r.Price),
		ImageURL:    r.ImageURL,
		InStock:     r.InStock,
	}
}

func (h *Handler) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	created, err := h.catalog.CreateProduct(ctx, req.toDomain(""))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductView(created))
}

func (h *Handler) updateProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	updated, err := h.catalog.UpdateProduct(ctx, req.toDomain(id))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(updated))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.catalog.DeleteProduct(ctx, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
