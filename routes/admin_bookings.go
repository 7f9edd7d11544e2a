package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lawfirm-server/config"
	"lawfirm-server/database"
	"lawfirm-server/i18n"
	"lawfirm-server/models"
	"lawfirm-server/services"
	"lawfirm-server/utils"
)

// RegisterAdminBookingRoutes adds the schedule and moderation endpoints
func RegisterAdminBookingRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule", GetSchedule)
	rg.GET("/schedule/days", GetBookingDays)
	rg.GET("/bookings", GetAllBookings)
	rg.GET("/bookings/:id", GetBookingById)
	rg.POST("/bookings", AdminCreateBooking)
	rg.POST("/bookings/:id/accept", AcceptBooking)
	rg.POST("/bookings/:id/reject", RejectBooking)
	rg.POST("/bookings/:id/complete", CompleteBooking)
}

// GetSchedule returns the filtered booking list for the schedule view.
// With ?date=YYYY-MM-DD it returns that day's bookings (mode A); without
// a selection it returns the upcoming window sorted by date (mode B).
func GetSchedule(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		log.Printf("❌ Failed to load bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	selected := c.Query("date")
	if selected != "" {
		if !utils.IsISODate(selected) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		filtered := services.FilterByDate(bookings, selected)
		c.JSON(http.StatusOK, gin.H{
			"mode":     "day",
			"date":     selected,
			"bookings": filtered,
			"count":    len(filtered),
			"summary":  services.Summarize(filtered),
		})
		return
	}

	windowDays := config.AppConfig.Booking.UpcomingWindowDays
	now := time.Now()
	filtered := services.FilterUpcoming(bookings, now, windowDays)
	from, to := services.UpcomingWindow(now, windowDays)
	c.JSON(http.StatusOK, gin.H{
		"mode":     "upcoming",
		"from":     from,
		"to":       to,
		"bookings": filtered,
		"count":    len(filtered),
		"summary":  services.Summarize(filtered),
	})
}

// GetBookingDays returns the days of a month that have bookings, used to
// draw the event dots on the calendar grid
func GetBookingDays(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	marked := services.DaysWithBookings(bookings, year, time.Month(monthNum))
	days := make([]int, 0, len(marked))
	for d := 1; d <= 31; d++ {
		if marked[d] {
			days = append(days, d)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": monthNum,
		"days":  days,
	})
}

// GetAllBookings returns every booking, optionally filtered by status
func GetAllBookings(c *gin.Context) {
	query := database.DB.Order("date ASC, time ASC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetBookingById returns one booking with the transitions valid for its
// status and the localized labels the details modal renders
func GetBookingById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	loc := i18n.ParseLocale(c.Query("lang"))
	c.JSON(http.StatusOK, gin.H{
		"booking":           booking,
		"available_actions": booking.AvailableActions(),
		"labels": gin.H{
			"status":       i18n.StatusLabel(booking.Status, loc),
			"type":         i18n.ConsultationTypeLabel(booking.Type, loc),
			"service_type": i18n.ServiceTypeLabel(booking.ServiceType, loc),
			"time":         i18n.SlotLabel(booking.Time, loc),
		},
	})
}

// AdminCreateBooking lets the admin register a booking directly from the
// schedule view. Same slot and field rules as the public wizard, except
// email is required here.
func AdminCreateBooking(c *gin.Context) {
	var req struct {
		ClientName        string                  `json:"client_name" binding:"required"`
		Phone             string                  `json:"phone" binding:"required"`
		Email             string                  `json:"email" binding:"required"`
		Date              string                  `json:"date" binding:"required"`
		Time              string                  `json:"time" binding:"required"`
		Type              models.ConsultationType `json:"type"`
		ServiceType       models.ServiceType      `json:"service_type"`
		ConsultationTopic string                  `json:"consultation_topic"`
		Notes             string                  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsISODate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if !models.IsValidSlot(req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown time slot"})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if req.ServiceType == "" {
		req.ServiceType = models.ServiceTypeGeneral
	}
	if !models.IsValidServiceType(req.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service type"})
		return
	}

	booking := models.Booking{
		ClientName:        req.ClientName,
		Email:             req.Email,
		Phone:             req.Phone,
		Date:              req.Date,
		Time:              req.Time,
		Type:              models.NormalizeConsultationType(req.Time, req.Type),
		ServiceType:       req.ServiceType,
		ConsultationTopic: req.ConsultationTopic,
		Notes:             req.Notes,
		Status:            models.BookingStatusPending,
	}

	if err := database.DB.WithContext(c.Request.Context()).Create(&booking).Error; err != nil {
		log.Printf("❌ Failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	if bookingHub != nil {
		bookingHub.NotifyBookingCreated(booking)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// AcceptBooking confirms a pending booking
func AcceptBooking(c *gin.Context) {
	transitionBooking(c, models.ActionAccept)
}

// RejectBooking rejects a pending booking, optionally recording a reason
func RejectBooking(c *gin.Context) {
	transitionBooking(c, models.ActionReject)
}

// CompleteBooking completes a confirmed booking
func CompleteBooking(c *gin.Context) {
	transitionBooking(c, models.ActionComplete)
}

// transitionBooking applies a state machine action to the stored booking.
// The new status is committed before anything is broadcast, so the list
// and any open detail view always reflect the store.
func transitionBooking(c *gin.Context, action models.BookingAction) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	switch action {
	case models.ActionAccept:
		err = booking.Accept()
	case models.ActionReject:
		var req struct {
			Reason string `json:"reason"`
		}
		// Reason is optional; an empty body is fine
		_ = c.ShouldBindJSON(&req)
		err = booking.Reject(req.Reason)
	case models.ActionComplete:
		err = booking.Complete()
	}

	var invalid *models.InvalidTransitionError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "InvalidTransition",
			"from":   invalid.From,
			"action": invalid.Action,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	if err := database.DB.WithContext(c.Request.Context()).Save(&booking).Error; err != nil {
		log.Printf("❌ Failed to persist %s for booking %d: %v", action, booking.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	if bookingHub != nil {
		bookingHub.NotifyBookingStatusChanged(booking)
	}

	log.Printf("✅ Booking %d %sed, status now %s", booking.ID, action, booking.Status)
	c.JSON(http.StatusOK, gin.H{
		"message":           "Booking updated",
		"booking":           booking,
		"available_actions": booking.AvailableActions(),
	})
}
