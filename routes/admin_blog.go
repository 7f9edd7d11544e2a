package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lawfirm-server/database"
	"lawfirm-server/models"
	"lawfirm-server/utils"
)

// RegisterAdminBlogRoutes adds the dashboard blog management endpoints
func RegisterAdminBlogRoutes(rg *gin.RouterGroup) {
	rg.GET("/blog", GetAllPosts)
	rg.GET("/blog/:id", GetPost)
	rg.POST("/blog", CreatePost)
	rg.PUT("/blog/:id", UpdatePost)
	rg.PATCH("/blog/:id/publish", PublishPost)
	rg.PATCH("/blog/:id/unpublish", UnpublishPost)
	rg.DELETE("/blog/:id", DeletePost)
	rg.POST("/blog/:id/cover", UploadPostCover)
}

type blogPostRequest struct {
	Title   string            `json:"title" binding:"required"`
	Excerpt string            `json:"excerpt"`
	Content string            `json:"content"`
	Date    string            `json:"date"`
	Status  models.PostStatus `json:"status"`
}

// GetAllPosts returns every post, drafts included
func GetAllPosts(c *gin.Context) {
	query := database.DB.Order("date DESC, id DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var posts []models.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetPost returns one post regardless of status
func GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.BlogPost
	if err := database.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost creates a post. Without an explicit status it starts as a
// draft; without a date it is stamped with today.
func CreatePost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	if !utils.IsISODate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.Status == "" {
		req.Status = models.PostDraft
	}
	if req.Status != models.PostPublished && req.Status != models.PostDraft {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown post status"})
		return
	}

	post := models.BlogPost{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Date:    req.Date,
		Status:  req.Status,
	}

	if err := database.DB.WithContext(c.Request.Context()).Create(&post).Error; err != nil {
		log.Printf("❌ Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

// UpdatePost replaces the editable fields of a post
func UpdatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.BlogPost
	if err := database.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Date != "" && !utils.IsISODate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	if req.Date != "" {
		post.Date = req.Date
	}
	if req.Status != "" {
		if req.Status != models.PostPublished && req.Status != models.PostDraft {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown post status"})
			return
		}
		post.Status = req.Status
	}

	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated",
		"post":    post,
	})
}

// PublishPost makes a post visible on the public blog
func PublishPost(c *gin.Context) {
	setPostStatus(c, models.PostPublished)
}

// UnpublishPost pulls a post back to draft
func UnpublishPost(c *gin.Context) {
	setPostStatus(c, models.PostDraft)
}

func setPostStatus(c *gin.Context, status models.PostStatus) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	result := database.DB.Model(&models.BlogPost{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated",
		"status":  status,
	})
}

// DeletePost removes a post permanently
func DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	result := database.DB.Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	log.Printf("✅ Post %d deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
