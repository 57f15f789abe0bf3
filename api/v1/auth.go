package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/middleware"
	"github.com/hikeup-backend/services"
)

// AuthController handles account-related API endpoints
type AuthController struct {
	userService *services.UserService
}

// NewAuthController creates a new auth controller
func NewAuthController() *AuthController {
	return &AuthController{userService: services.NewUserService()}
}

// requirePersisted returns the principal when it carries a stable database
// identity. An authenticated but unpersisted principal (provisioning
// failed mid-request) cannot own durable records, so mutating operations
// respond 503 rather than writing against a missing user row.
func requirePersisted(ctx *gin.Context) (dto.Principal, bool) {
	principal, exists := middleware.GetPrincipal(ctx)
	if !exists || !principal.IsAuthenticated() {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
		return principal, false
	}
	if !principal.Persisted {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Account provisioning is temporarily unavailable, please retry",
		})
		return principal, false
	}
	return principal, true
}

// GetCurrentUser returns the currently authenticated user's profile
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	principal, exists := middleware.GetPrincipal(ctx)
	if !exists || !principal.IsAuthenticated() {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	// An unpersisted principal still has a usable identity for this
	// request; serve it from memory.
	if !principal.Persisted {
		ctx.JSON(http.StatusOK, gin.H{
			"status": "success",
			"user":   principal,
		})
		return
	}

	user, err := c.userService.GetUser(principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}

// UpdateProfile edits the current user's profile
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, err := c.userService.UpdateProfile(principal.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}

// BecomeGuide upgrades the current hiker to a guide
func (c *AuthController) BecomeGuide(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	user, err := c.userService.BecomeGuide(principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}

// DeleteAccount soft-deletes the current user's account
func (c *AuthController) DeleteAccount(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteAccount(principal.UserID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Account deleted",
	})
}
