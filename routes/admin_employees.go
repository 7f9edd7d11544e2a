package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lawfirm-server/database"
	"lawfirm-server/i18n"
	"lawfirm-server/models"
	"lawfirm-server/utils"
)

// RegisterAdminEmployeeRoutes adds the staff directory endpoints
func RegisterAdminEmployeeRoutes(rg *gin.RouterGroup) {
	rg.GET("/employees", GetEmployees)
	rg.GET("/employees/:id", GetEmployee)
	rg.POST("/employees", CreateEmployee)
	rg.PUT("/employees/:id", UpdateEmployee)
	rg.PATCH("/employees/:id/status", SetEmployeeStatus)
	rg.DELETE("/employees/:id", DeleteEmployee)
}

type employeeRequest struct {
	Name   string                `json:"name" binding:"required"`
	Email  string                `json:"email" binding:"required"`
	Role   models.EmployeeRole   `json:"role" binding:"required"`
	Status models.EmployeeStatus `json:"status"`
}

// GetEmployees returns the staff list, optionally filtered by role or status
func GetEmployees(c *gin.Context) {
	query := database.DB.Order("name ASC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": employees,
		"count":     len(employees),
	})
}

// GetEmployee returns one staff record with the localized role label
func GetEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	loc := i18n.ParseLocale(c.Query("lang"))
	c.JSON(http.StatusOK, gin.H{
		"employee":   employee,
		"role_label": i18n.EmployeeRoleLabel(employee.Role, loc),
	})
}

// CreateEmployee adds a staff record
func CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidEmployeeRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown employee role"})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if req.Status == "" {
		req.Status = models.EmployeeActive
	}

	employee := models.Employee{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	}

	if err := database.DB.WithContext(c.Request.Context()).Create(&employee).Error; err != nil {
		log.Printf("❌ Failed to create employee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

// UpdateEmployee replaces the editable fields of a staff record
func UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidEmployeeRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown employee role"})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.Role = req.Role
	if req.Status != "" {
		employee.Status = req.Status
	}

	if err := database.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Employee updated",
		"employee": employee,
	})
}

// SetEmployeeStatus toggles a staff record between Active and Inactive
func SetEmployeeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var req struct {
		Status models.EmployeeStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.EmployeeActive && req.Status != models.EmployeeInactive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown employee status"})
		return
	}

	result := database.DB.Model(&models.Employee{}).
		Where("id = ?", id).
		Update("status", req.Status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Employee updated",
		"status":  req.Status,
	})
}

// DeleteEmployee removes a staff record
func DeleteEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	result := database.DB.Delete(&models.Employee{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	log.Printf("✅ Employee %d deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
