package http

import (
	"net/http"
	"strconv"

	"grocery-store/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetAllProducts(c *gin.Context) {
	products, err := h.products.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

func (h *Handler) GetProductsByCategory(c *gin.Context) {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.products.GetProductsByCategory(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

func (h *Handler) SearchProducts(c *gin.Context) {
	name := c.Query("name")
	products, err := h.products.SearchProductsByName(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewProductListResponse(products))
}

func (h *Handler) CreateProduct(c *gin.Context) {
	product, ok := h.bindProduct(c)
	if !ok {
		return
	}

	if err := h.products.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(*product))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	details, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), id, details)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if product == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(*product))
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	deleted, err := h.products.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bindProduct(c *gin.Context) (*domain.Product, bool) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return nil, false
	}

	return &domain.Product{
		Name:        req.Name,
		Category:    category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}, true
}
