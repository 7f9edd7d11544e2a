package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawfirm-server/database"
	"lawfirm-server/models"
	"lawfirm-server/services"
	"lawfirm-server/utils"
)

// AdminAuthMiddleware gates dashboard routes behind the admin role. It runs
// after middleware.AuthMiddleware, which has already verified the token and
// placed the user in the context.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		user, ok := value.(models.User)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			log.Printf("🚫 User %d is not admin, role: %s", user.ID, user.Role)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminLogin handles admin login with email and password
func AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		log.Printf("❌ Admin login failed for email %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Role != models.RoleAdmin {
		log.Printf("❌ Login attempt by non-admin user %d with role %s", user.ID, user.Role)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
		return
	}

	if !user.IsActive {
		log.Printf("❌ Login attempt by inactive admin user %d", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Printf("❌ Invalid password for admin user %d", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	jwtService := services.NewJWTService()
	tokens, err := jwtService.GenerateTokenPair(&user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		log.Printf("❌ Failed to generate tokens for admin user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	log.Printf("✅ Admin user %d logged in", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"tokens":  tokens,
		"user":    user,
	})
}

// AdminRefreshToken exchanges a refresh token for a new access token
func AdminRefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	jwtService := services.NewJWTService()
	tokens, err := jwtService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		log.Printf("❌ Token refresh failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

// AdminLogout revokes the presented refresh token
func AdminLogout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	jwtService := services.NewJWTService()
	if err := jwtService.RevokeRefreshToken(req.RefreshToken); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentAdmin returns the authenticated admin user
func GetCurrentAdmin(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetDashboardStats returns the counters shown on the dashboard landing cards
func GetDashboardStats(c *gin.Context) {
	var totalBookings, pendingBookings, confirmedBookings, completedBookings int64
	database.DB.Model(&models.Booking{}).Count(&totalBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&pendingBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusConfirmed).Count(&confirmedBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusCompleted).Count(&completedBookings)

	var publishedPosts, draftPosts int64
	database.DB.Model(&models.BlogPost{}).Where("status = ?", models.PostPublished).Count(&publishedPosts)
	database.DB.Model(&models.BlogPost{}).Where("status = ?", models.PostDraft).Count(&draftPosts)

	var activeEmployees int64
	database.DB.Model(&models.Employee{}).Where("status = ?", models.EmployeeActive).Count(&activeEmployees)

	var unreadMessages int64
	database.DB.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&unreadMessages)

	c.JSON(http.StatusOK, gin.H{
		"bookings": gin.H{
			"total":     totalBookings,
			"pending":   pendingBookings,
			"confirmed": confirmedBookings,
			"completed": completedBookings,
		},
		"blog": gin.H{
			"published": publishedPosts,
			"drafts":    draftPosts,
		},
		"employees": gin.H{
			"active": activeEmployees,
		},
		"contact": gin.H{
			"unread": unreadMessages,
		},
	})
}
