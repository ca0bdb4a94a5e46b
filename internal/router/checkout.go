package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"madhurfashion.in/storefront/pkg/checkout"
)

type checkoutSessionRequest struct {
	SessionID       string `json:"sessionId" binding:"required"`
	FulfillmentMode string `json:"fulfillmentMode"`
	DeliveryAddress string `json:"deliveryAddress"`
}

type checkoutResultRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// CreateCheckoutSession submits one checkout attempt. Pickup confirms
// locally and clears the cart; delivery returns the payment provider's
// redirect URL and leaves the cart for the confirmation callback.
func CreateCheckoutSession(c *gin.Context) {
	var req checkoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	mode := checkout.FulfillmentMode(req.FulfillmentMode)
	if mode == "" {
		mode = checkout.ModeDelivery
	}

	result, err := orchestrator.Submit(c.Request.Context(), checkout.Request{
		SessionID:       req.SessionID,
		Mode:            mode,
		DeliveryAddress: req.DeliveryAddress,
	})
	switch {
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrMissingAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, checkout.ErrCheckoutInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		// The remote provider's message goes to the user verbatim.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.State == checkout.StatePickupConfirmed {
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.RedirectURL})
}

// CheckoutResult is the redirect-back callback: success clears the cart.
func CheckoutResult(c *gin.Context) {
	var req checkoutResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and status are required"})
		return
	}

	message, err := orchestrator.ConfirmResult(c.Request.Context(), req.SessionID, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
