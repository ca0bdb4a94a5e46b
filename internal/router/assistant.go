package router

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madhurfashion.in/storefront/pkg/ai"
	"madhurfashion.in/storefront/pkg/models"
	"madhurfashion.in/storefront/pkg/recommend"
)

// ProductRecommendations matches the query against the in-stock catalog.
func ProductRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	query := req.SearchQuery()
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Query is required"})
		return
	}

	catalog, err := products.All(c.Request.Context())
	if err != nil {
		log.Printf("Error getting product recommendations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":            false,
			"products":           []*models.Product{},
			"totalFound":         0,
			"hasRecommendations": false,
			"hasInventory":       false,
			"message":            "Error getting recommendations from database",
			"error":              err.Error(),
		})
		return
	}

	result := recommend.Recommend(query, catalog)

	reason := "Text matching"
	if !result.MatchedQuery {
		reason = "Showing all products"
	}
	if !result.HasInventory {
		reason = "No inventory available"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"products":           result.Products,
		"totalFound":         result.TotalFound,
		"hasRecommendations": result.HasRecommendations,
		"hasInventory":       result.HasInventory,
		"message":            result.Message,
		"analysis": gin.H{
			"query":  query,
			"reason": reason,
		},
	})
}

// AIChat proxies one stylist turn. The caller always gets a reply: remote
// failures and missing credentials come back as the canned fallback.
func AIChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	if !ai.IsEnabled() {
		c.JSON(http.StatusOK, gin.H{
			"error":            "AI service not configured",
			"fallbackResponse": ai.NotConfiguredResponse(req.Language, req.Message),
		})
		return
	}

	reply, usedFallback := stylist.Respond(c.Request.Context(), req.Message, req.Language, req.ConversationHistory)
	if usedFallback {
		c.JSON(http.StatusOK, gin.H{
			"response": reply,
			"error":    "API temporarily unavailable - using enhanced fallback",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": reply,
		"language": req.Language,
		"success":  true,
	})
}

// AssistantTurn runs the recommendation matcher and the stylist concurrently
// for one user turn and joins both results.
func AssistantTurn(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	turn := shopAssistant.HandleTurn(c.Request.Context(), req.Message, req.Language, req.ConversationHistory)
	c.JSON(http.StatusOK, turn)
}
