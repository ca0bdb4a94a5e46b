package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"madhurfashion.in/storefront/pkg/global"
)

// AdminAuthMiddleware guards staff management with credential headers checked
// against the credential store.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader("X-Admin-Email")
		password := c.GetHeader("X-Admin-Password")
		if email == "" || password == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Admin credentials required", []global.ValidationError{
				{Field: "headers", Message: "X-Admin-Email and X-Admin-Password headers are required", Code: "required"},
			}))
			c.Abort()
			return
		}

		staff, err := staffService.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password.", nil))
			c.Abort()
			return
		}

		c.Set("staff", staff)
		c.Next()
	}
}
