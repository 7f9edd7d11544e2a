package routes

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawfirm-server/database"
	"lawfirm-server/i18n"
	"lawfirm-server/models"
	"lawfirm-server/services"
	ws "lawfirm-server/websocket"
)

// bookingHub pushes booking events to connected admin dashboards
var bookingHub *ws.Hub

// InitBookingHub wires the dashboard hub into the booking routes
func InitBookingHub(hub *ws.Hub) {
	bookingHub = hub
}

// dbBookingStore persists bookings through the shared GORM handle.
type dbBookingStore struct{}

func (dbBookingStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return database.DB.WithContext(ctx).Create(booking).Error
}

// BookingCreateRequest is the payload of the public wizard's final submit.
type BookingCreateRequest struct {
	ClientName        string                  `json:"client_name" binding:"required"`
	Phone             string                  `json:"phone" binding:"required"`
	Email             string                  `json:"email"`
	Date              string                  `json:"date" binding:"required"`
	Time              string                  `json:"time" binding:"required"`
	Type              models.ConsultationType `json:"type"`
	ServiceType       models.ServiceType      `json:"service_type" binding:"required"`
	ConsultationTopic string                  `json:"consultation_topic"`
	Notes             string                  `json:"notes"`
}

// RegisterBookingRoutes adds the public booking endpoints
func RegisterBookingRoutes(rg *gin.RouterGroup) {
	rg.POST("", CreateBooking)
	rg.POST("/", CreateBooking)
	rg.GET("/slots", GetTimeSlots)
	rg.GET("/service-types", GetServiceTypes)
}

// CreateBooking creates a new booking in Pending status. The wizard service
// applies the same step validations the site runs client-side, so a crafted
// request cannot bypass them.
func CreateBooking(c *gin.Context) {
	var req BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidServiceType(req.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service type"})
		return
	}

	wizard := services.NewBookingWizardFromRequest(
		req.Date, req.Time, req.Type,
		req.ClientName, req.Phone, req.Email,
		req.ServiceType, req.ConsultationTopic, req.Notes,
	)

	// Walk the wizard to the review step; a validation error on either
	// step blocks the create exactly as it blocks the site's Next button.
	for wizard.Step() < services.StepReview {
		if err := wizard.Next(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var created models.Booking
	err := wizard.Submit(c.Request.Context(), dbBookingStore{}, func(b models.Booking) {
		created = b
	})
	if err != nil {
		log.Printf("❌ Failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	if bookingHub != nil {
		bookingHub.NotifyBookingCreated(created)
	}

	log.Printf("✅ Booking %d created for %s on %s %s", created.ID, created.ClientName, created.Date, created.Time)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": created,
	})
}

// GetTimeSlots returns the enumerated slot sets with localized labels
func GetTimeSlots(c *gin.Context) {
	loc := i18n.ParseLocale(c.Query("lang"))

	type slot struct {
		Value   string `json:"value"`
		Label   string `json:"label"`
		Evening bool   `json:"evening"`
	}

	build := func(values []string, evening bool) []slot {
		out := make([]slot, 0, len(values))
		for _, v := range values {
			out = append(out, slot{Value: v, Label: i18n.SlotLabel(v, loc), Evening: evening})
		}
		return out
	}

	c.JSON(http.StatusOK, gin.H{
		"morning": build(models.MorningSlots(), false),
		"evening": build(models.EveningSlots(), true),
	})
}

// GetServiceTypes returns the consultation categories with localized labels
func GetServiceTypes(c *gin.Context) {
	loc := i18n.ParseLocale(c.Query("lang"))

	type serviceType struct {
		Value models.ServiceType `json:"value"`
		Label string             `json:"label"`
	}

	out := make([]serviceType, 0, len(models.ServiceTypes))
	for _, st := range models.ServiceTypes {
		out = append(out, serviceType{Value: st, Label: i18n.ServiceTypeLabel(st, loc)})
	}

	c.JSON(http.StatusOK, gin.H{"service_types": out})
}
