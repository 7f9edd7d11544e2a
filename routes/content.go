package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lawfirm-server/database"
	"lawfirm-server/models"
	"lawfirm-server/utils"
)

// RegisterContentRoutes adds the public site content endpoints
func RegisterContentRoutes(rg *gin.RouterGroup) {
	rg.GET("/blog", GetPublishedPosts)
	rg.GET("/blog/:id", GetPublishedPost)
	rg.GET("/packages", GetPackageTiers)
	rg.GET("/practice-areas", GetPracticeAreas)
	rg.POST("/contact", SubmitContactMessage)
}

// GetPublishedPosts returns published posts, newest first
func GetPublishedPosts(c *gin.Context) {
	var posts []models.BlogPost
	if err := database.DB.
		Where("status = ?", models.PostPublished).
		Order("date DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetPublishedPost returns one post. Drafts are invisible here even with
// a direct link.
func GetPublishedPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.BlogPost
	if err := database.DB.
		Where("status = ?", models.PostPublished).
		First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// GetPackageTiers returns the priced service bundles in display order
func GetPackageTiers(c *gin.Context) {
	var tiers []models.PackageTier
	if err := database.DB.Order("sort_order ASC, price ASC").Find(&tiers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": tiers})
}

// GetPracticeAreas returns the practice area blocks in display order
func GetPracticeAreas(c *gin.Context) {
	var areas []models.PracticeArea
	if err := database.DB.Order("sort_order ASC, id ASC").Find(&areas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load practice areas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"practice_areas": areas})
}

// SubmitContactMessage stores a contact form submission
func SubmitContactMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != "" && !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if req.Phone != "" && !utils.ValidatePhoneNumber(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := database.DB.WithContext(c.Request.Context()).Create(&msg).Error; err != nil {
		log.Printf("❌ Failed to store contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// RegisterAdminContentRoutes adds the dashboard inbox endpoints
func RegisterAdminContentRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact-messages", GetContactMessages)
	rg.PATCH("/contact-messages/:id/read", MarkContactMessageRead)
	rg.DELETE("/contact-messages/:id", DeleteContactMessage)
}

// GetContactMessages returns the contact inbox, unread first
func GetContactMessages(c *gin.Context) {
	query := database.DB.Order("is_read ASC, created_at DESC")
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

// MarkContactMessageRead flags a contact message as handled
func MarkContactMessageRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	result := database.DB.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// DeleteContactMessage removes a contact message from the inbox
func DeleteContactMessage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	result := database.DB.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
