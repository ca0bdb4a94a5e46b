package router

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"madhurfashion.in/storefront/pkg/catalog"
	"madhurfashion.in/storefront/pkg/global"
	"madhurfashion.in/storefront/pkg/models"
	"madhurfashion.in/storefront/pkg/mongo"
)

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

// GetProducts serves the grid: filter by search or category, optionally
// in-stock only, capped by limit. The response keeps both the id-keyed map
// and the ordered array the storefront expects.
func GetProducts(c *gin.Context) {
	// An explicit limit is honored as given, including zero; anything absent
	// or unparseable falls back to the gateway's default cap.
	limit := -1
	if raw, ok := c.GetQuery("limit"); ok {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}

	result, err := gateway.List(c.Request.Context(), catalog.ListFilters{
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		InStockOnly: c.Query("inStock") == "true",
		Limit:       limit,
	})
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"products":      gin.H{},
			"productsArray": []*models.Product{},
			"totalFound":    0,
			"hasInventory":  false,
			"message":       "Error fetching products from database",
			"success":       false,
			"error":         err.Error(),
		})
		return
	}

	byID := make(map[string]*models.Product, len(result.Products))
	for _, p := range result.Products {
		byID[p.ID] = p
	}

	c.JSON(http.StatusOK, gin.H{
		"products":      byID,
		"productsArray": result.Products,
		"totalFound":    result.TotalFound,
		"hasInventory":  result.HasInventory,
		"message":       result.Message,
		"success":       true,
	})
}

func CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	product, err := gateway.Create(c.Request.Context(), &req)
	if errors.Is(err, catalog.ErrMissingFields) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required fields: name, price, category",
		})
		return
	}
	if err != nil {
		log.Printf("Error adding product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to add product to database",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product added successfully to database",
		"product": product,
	})
}

func GetProduct(c *gin.Context) {
	product, err := gateway.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Product not found in database",
		})
		return
	}
	if err != nil {
		log.Printf("Error fetching product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch product from database",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

func UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	product, err := gateway.Update(c.Request.Context(), c.Param("id"), &req)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Product not found in database",
		})
		return
	}
	if err != nil {
		log.Printf("Error updating product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update product in database",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully in database",
		"product": product,
	})
}

func DeleteProduct(c *gin.Context) {
	err := gateway.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Product not found in database",
		})
		return
	}
	if err != nil {
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete product from database",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully from database",
	})
}
