package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"madhurfashion.in/storefront/pkg/auth"
	"madhurfashion.in/storefront/pkg/global"
	"madhurfashion.in/storefront/pkg/models"
)

func AdminLogin(c *gin.Context) {
	var req models.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	staff, err := staffService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password.", nil))
		return
	}
	if err != nil {
		log.Printf("Error authenticating staff: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to authenticate", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(staff))
}

func ListStaff(c *gin.Context) {
	staff, err := staffService.ListStaff(c.Request.Context())
	if err != nil {
		log.Printf("Error listing staff: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch staff", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(staff))
}

func CreateStaff(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	staff, err := staffService.AddStaff(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, auth.ErrEmailTaken) {
		c.JSON(http.StatusConflict, global.ErrorResponse("Email already registered", []global.ValidationError{
			{Field: "email", Message: "This email is already in use", Code: "duplicate_email"},
		}))
		return
	}
	if err != nil {
		log.Printf("Error creating staff: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create staff", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(staff))
}

func DeleteStaff(c *gin.Context) {
	err := staffService.RemoveStaff(c.Request.Context(), c.Param("id"))
	if errors.Is(err, auth.ErrStaffNotFound) {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Staff not found", []global.ValidationError{
			{Field: "id", Message: "No staff exists with this ID", Code: "not_found"},
		}))
		return
	}
	if err != nil {
		log.Printf("Error deleting staff: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete staff", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(gin.H{"deleted": true}))
}
