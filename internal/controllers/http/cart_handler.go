package http

import (
	"errors"
	"net/http"
	"strconv"

	"grocery-store/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId required"})
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.carts.AddToCart(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding item to cart"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	userID := c.Query("userId")

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Ownership gate: a line that exists but belongs to someone else looks
	// exactly like a missing one.
	owned, err := h.carts.GetCartItem(c.Request.Context(), itemID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating cart item"})
		return
	}
	if owned == nil {
		c.Status(http.StatusNotFound)
		return
	}

	item, err := h.carts.UpdateCartItemQuantity(c.Request.Context(), itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating cart item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	userID := c.Query("userId")

	removed, err := h.carts.RemoveFromCart(c.Request.Context(), itemID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error removing item from cart"})
		return
	}
	if !removed {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearCart(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId required"})
		return
	}

	if err := h.carts.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error clearing cart"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetCartItemCount(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId required"})
		return
	}

	count, err := h.carts.GetCartItemCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *Handler) CheckProductInCart(c *gin.Context) {
	userID := c.Query("userId")
	productID, err := strconv.ParseUint(c.Query("productId"), 10, 64)
	if userID == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and productId required"})
		return
	}

	inCart, err := h.carts.IsProductInCart(c.Request.Context(), userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inCart)
}
