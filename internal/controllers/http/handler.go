package http

import (
	"grocery-store/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	products *services.ProductService
	carts    *services.CartService
	orders   *services.OrderService
}

func NewHandler(products *services.ProductService, carts *services.CartService, orders *services.OrderService) *Handler {
	return &Handler{products: products, carts: carts, orders: orders}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	products := r.Group("/api/products")
	{
		products.GET("", h.GetAllProducts)
		products.GET("/search", h.SearchProducts)
		products.GET("/:category", h.GetProductsByCategory)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	cart := r.Group("/api/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("", h.AddToCart)
		cart.PUT("/:itemId", h.UpdateCartItem)
		cart.DELETE("/clear", h.ClearCart)
		cart.DELETE("/:itemId", h.RemoveFromCart)
		cart.GET("/count", h.GetCartItemCount)
		cart.GET("/check", h.CheckProductInCart)
	}

	order := r.Group("/api/order")
	{
		order.POST("/checkout", h.ProcessCheckout)
		order.GET("/user/:userId", h.GetUserOrders)
		order.GET("/user/:userId/count", h.GetUserOrderCount)
		order.GET("/health", h.HealthCheck)
		order.GET("/:orderId", h.GetOrder)
		order.PUT("/:orderId/status", h.UpdateOrderStatus)
		order.DELETE("/:orderId/cancel", h.CancelOrder)
	}
}
