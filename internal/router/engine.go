package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var Router *gin.Engine

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://madhurfashion.in"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Admin-Email", "X-Admin-Password"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		products := api.Group("/products")
		{
			products.GET("", GetProducts)
			products.POST("", CreateProduct)
			products.GET("/:id", GetProduct)
			products.PUT("/:id", UpdateProduct)
			products.DELETE("/:id", DeleteProduct)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/:sessionId", GetCart)
			cart.POST("/:sessionId/items", AddToCart)
			cart.PUT("/:sessionId/items", UpdateCartItem)
			cart.DELETE("/:sessionId/items", RemoveFromCart)
			cart.DELETE("/:sessionId/clear", ClearCart)
		}

		api.POST("/checkout-session", CreateCheckoutSession)
		api.POST("/checkout-result", CheckoutResult)

		api.POST("/product-recommendations", ProductRecommendations)
		api.POST("/ai-chat", AIChat)
		api.POST("/assistant-turn", AssistantTurn)

		admin := api.Group("/admin")
		{
			admin.POST("/login", AdminLogin)

			staff := admin.Group("/staff")
			staff.Use(AdminAuthMiddleware())
			{
				staff.GET("", ListStaff)
				staff.POST("", CreateStaff)
				staff.DELETE("/:id", DeleteStaff)
			}
		}
	}
}
