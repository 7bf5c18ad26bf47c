package http

import (
	"errors"
	"net/http"
	"strconv"

	"grocery-store/internal/domain"
	"grocery-store/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ProcessCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CheckoutInput{
		UserID:               req.UserID,
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		AddressLine1:         req.AddressLine1,
		AddressLine2:         req.AddressLine2,
		City:                 req.City,
		State:                req.State,
		ZipCode:              req.ZipCode,
		Country:              req.Country,
		PaymentMethod:        method,
		PaymentTransactionID: req.PaymentTransactionID,
		DeliveryInstructions: req.DeliveryInstructions,
	}

	order, err := h.orders.ProcessCheckout(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "checkout error: " + err.Error()})
		case errors.Is(err, services.ErrPaymentDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment error: " + err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred while processing your order, please try again"})
		}
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(order))
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

func (h *Handler) GetUserOrders(c *gin.Context) {
	userID := c.Param("userId")

	orders, err := h.orders.GetUserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	status, err := domain.ParseOrderStatus(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateOrderStatus(c.Request.Context(), orderID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating order status"})
		return
	}
	if order == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

func (h *Handler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	userID := c.Query("userId")

	cancelled, err := h.orders.CancelOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error cancelling order"})
		return
	}
	if !cancelled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to cancel order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order cancelled successfully"})
}

func (h *Handler) GetUserOrderCount(c *gin.Context) {
	userID := c.Param("userId")

	count, err := h.orders.GetUserOrderCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "order service is running"})
}
