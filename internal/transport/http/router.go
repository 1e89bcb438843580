package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/internal/upstream"
	"github.com/mkarpushin/shopfront/internal/usecase"
	"github.com/mkarpushin/shopfront/pkg/httpx"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

// Services — набор юзкейсов, которые обслуживает HTTP-слой.
type Services struct {
	Catalog  *usecase.CatalogService
	Orders   *usecase.OrderService
	Checkout *usecase.CheckoutService
	Auth     *usecase.AuthService
	Wishlist *usecase.WishlistService
	Account  *usecase.AccountService
	Cart     ports.CartStore
}

type Handler struct {
	catalog  *usecase.CatalogService
	orders   *usecase.OrderService
	checkout *usecase.CheckoutService
	auth     *usecase.AuthService
	wishlist *usecase.WishlistService
	account  *usecase.AccountService
	cart     ports.CartStore
	log      ports.Logger
	timeout  time.Duration
}

// NewHandler — timeout <= 0 отключает ограничение времени обработки.
func NewHandler(s Services, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{
		catalog:  s.Catalog,
		orders:   s.Orders,
		checkout: s.Checkout,
		auth:     s.Auth,
		wishlist: s.Wishlist,
		account:  s.Account,
		cart:     s.Cart,
		log:      log,
		timeout:  timeout,
	}
}

func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/products", h.listProducts)
	api.GET("/products/filters", h.filterMeta)
	api.GET("/products/:id", h.getProduct)

	cart := api.Group("/cart")
	cart.GET("", h.cartSummary)
	cart.POST("/items", h.addCartItem)
	cart.PATCH("/items/:id", h.updateCartQuantity)
	cart.DELETE("/items/:id", h.removeCartItem)
	cart.DELETE("", h.clearCart)
	cart.POST("/toggle", h.toggleCart)

	wl := api.Group("/wishlist")
	wl.GET("", h.listWishlist)
	wl.POST("", h.addWishlistItem)
	wl.DELETE("/:productID", h.removeWishlistItem)
	wl.POST("/toggle", h.toggleWishlistItem)
	wl.POST("/reconcile", h.reconcileWishlist)

	auth := api.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/register", h.register)
	auth.POST("/logout", h.logout)
	auth.GET("/me", h.profile)

	orders := api.Group("/orders")
	orders.GET("", h.listOrders)
	orders.GET("/:id", h.getOrder)
	orders.POST("/:id/cancel", h.cancelOrder)

	api.POST("/checkout", h.doCheckout)

	api.GET("/addresses", h.listAddresses)
	api.POST("/addresses", h.createAddress)
	api.DELETE("/addresses/:id", h.deleteAddress)
	api.POST("/contact", h.sendContact)

	admin := api.Group("/admin")
	admin.GET("/stats", h.dashboardStats)
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
	admin.PATCH("/orders/:id/status", h.setOrderStatus)
	admin.POST("/orders/:id/refund", h.refundOrder)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// reqCtx — контекст обработки запроса с опциональным таймаутом хендлера.
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// writeError — единая точка маппинга ошибок на HTTP-статусы.
// Ошибки апстрима проксируются с исходным статусом: клиент видит то же,
// что увидел бы при прямом обращении к API.
func (h *Handler) writeError(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	switch {
	case errors.Is(err, validate.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Status)
		}
		c.JSON(apiErr.Status, gin.H{"error": msg})
	default:
		h.log.Errorf(c.Request.Context(), "request failed path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
