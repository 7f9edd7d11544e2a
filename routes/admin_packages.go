package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"lawfirm-server/database"
	"lawfirm-server/models"
)

// RegisterAdminPackageRoutes adds the package tier management endpoints
func RegisterAdminPackageRoutes(rg *gin.RouterGroup) {
	rg.POST("/packages", CreatePackageTier)
	rg.PUT("/packages/:id", UpdatePackageTier)
	rg.DELETE("/packages/:id", DeletePackageTier)
}

type packageTierRequest struct {
	Title     string   `json:"title" binding:"required"`
	TitleAr   string   `json:"title_ar"`
	Price     float64  `json:"price" binding:"required"`
	Features  []string `json:"features"`
	SortOrder int      `json:"sort_order"`
}

// CreatePackageTier adds a priced service bundle
func CreatePackageTier(c *gin.Context) {
	var req packageTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	tier := models.PackageTier{
		Title:     req.Title,
		TitleAr:   req.TitleAr,
		Price:     req.Price,
		Features:  pq.StringArray(req.Features),
		SortOrder: req.SortOrder,
	}

	if err := database.DB.WithContext(c.Request.Context()).Create(&tier).Error; err != nil {
		log.Printf("❌ Failed to create package tier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Package created successfully",
		"package": tier,
	})
}

// UpdatePackageTier replaces the editable fields of a package tier
func UpdatePackageTier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	var tier models.PackageTier
	if err := database.DB.First(&tier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	var req packageTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	tier.Title = req.Title
	tier.TitleAr = req.TitleAr
	tier.Price = req.Price
	tier.Features = pq.StringArray(req.Features)
	tier.SortOrder = req.SortOrder

	if err := database.DB.Save(&tier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Package updated",
		"package": tier,
	})
}

// DeletePackageTier removes a package tier
func DeletePackageTier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
		return
	}

	result := database.DB.Delete(&models.PackageTier{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	log.Printf("✅ Package %d deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}
