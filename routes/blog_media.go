package routes

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"lawfirm-server/database"
	"lawfirm-server/models"
)

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// UploadPostCover uploads a blog cover image to Cloudinary and stores its
// secure URL on the post
func UploadPostCover(c *gin.Context) {
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

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil { // 10MB
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	header, err := c.FormFile("cover")
	if err != nil || header == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No cover file provided"})
		return
	}
	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cover must be a jpg/png/webp up to 5MB"})
		return
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("❌ Cloudinary environment variables not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Media storage not configured"})
		return
	}

	cld, err := cloudinary.NewFromURL(fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName))
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Media storage unavailable"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read cover file"})
		return
	}
	defer file.Close()

	ow := true
	uf := true
	up, err := cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{
		Folder:         "blog/covers/" + strconv.Itoa(int(post.ID)),
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		Overwrite:      &ow,
		UniqueFilename: &uf,
		ResourceType:   "image",
	})
	if err != nil {
		log.Printf("❌ Cover upload failed for post %d: %v", post.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Cover upload failed"})
		return
	}

	post.ImageURL = up.SecureURL
	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save post"})
		return
	}

	log.Printf("✅ Cover uploaded for post %d: %s", post.ID, up.SecureURL)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Cover uploaded",
		"image_url": up.SecureURL,
	})
}
