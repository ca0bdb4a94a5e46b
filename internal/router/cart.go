package router

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madhurfashion.in/storefront/pkg/cart"
	"madhurfashion.in/storefront/pkg/global"
	"madhurfashion.in/storefront/pkg/models"
)

func cartSnapshot(items []models.CartLineItem) gin.H {
	return gin.H{
		"items":     items,
		"total":     cart.Total(items),
		"itemCount": cart.ItemCount(items),
	}
}

func GetCart(c *gin.Context) {
	items, err := carts.Items(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cartSnapshot(items)))
}

func AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	items, err := carts.Add(c.Request.Context(), c.Param("sessionId"), req.Product, req.Size, req.Color)
	if err != nil {
		log.Printf("Error adding to cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cartSnapshot(items)))
}

func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	items, err := carts.SetQuantity(c.Request.Context(), c.Param("sessionId"), req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		log.Printf("Error updating cart item: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cartSnapshot(items)))
}

func RemoveFromCart(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	items, err := carts.Remove(c.Request.Context(), c.Param("sessionId"), req.ProductID, req.Size, req.Color)
	if err != nil {
		log.Printf("Error removing from cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cartSnapshot(items)))
}

func ClearCart(c *gin.Context) {
	if err := carts.Clear(c.Request.Context(), c.Param("sessionId")); err != nil {
		log.Printf("Error clearing cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to clear cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cartSnapshot([]models.CartLineItem{})))
}
