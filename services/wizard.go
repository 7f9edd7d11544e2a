package services

import (
	"context"
	"errors"
	"time"

	"lawfirm-server/models"
	"lawfirm-server/utils"
)

// The public booking wizard walks a visitor through three steps: schedule,
// personal info, then review and submit. Steps are forward-only with
// explicit back navigation; going back never loses entered values.

const (
	StepSchedule = 1
	StepPersonal = 2
	StepReview   = 3
)

var (
	ErrDateRequired        = errors.New("consultation date is required")
	ErrDateInPast          = errors.New("consultation date must be today or later")
	ErrTimeRequired        = errors.New("time slot is required")
	ErrInvalidSlot         = errors.New("time slot is not one of the offered slots")
	ErrNameRequired        = errors.New("client name is required")
	ErrPhoneRequired       = errors.New("phone number is required")
	ErrServiceTypeRequired = errors.New("service type is required")
	ErrInvalidEmail        = errors.New("email format is invalid")
	ErrSubmitInFlight      = errors.New("submission already in progress")
	ErrNotAtReviewStep     = errors.New("wizard has not reached the review step")
)

// BookingCreator persists a new booking. Satisfied by the bookings store;
// tests substitute a fake.
type BookingCreator interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
}

// BookingWizard collects a booking across the three steps.
type BookingWizard struct {
	step       int
	submitting bool

	// clock is swappable for tests; defaults to time.Now.
	clock func() time.Time

	Date              string
	Time              string
	Type              models.ConsultationType
	ClientName        string
	Phone             string
	Email             string
	ServiceType       models.ServiceType
	ConsultationTopic string
	Notes             string
}

// NewBookingWizard starts a wizard at the schedule step with the default
// in-person consultation type.
func NewBookingWizard() *BookingWizard {
	return &BookingWizard{
		step:  StepSchedule,
		clock: time.Now,
		Type:  models.ConsultationInPerson,
	}
}

// NewBookingWizardFromRequest builds a wizard pre-filled from an API
// request, still positioned at the schedule step so every gate runs.
func NewBookingWizardFromRequest(date, slot string, ctype models.ConsultationType, name, phone, email string, serviceType models.ServiceType, topic, notes string) *BookingWizard {
	w := NewBookingWizard()
	w.SetSchedule(date, slot, ctype)
	w.ClientName = name
	w.Phone = phone
	w.Email = email
	w.ServiceType = serviceType
	w.ConsultationTopic = topic
	w.Notes = notes
	return w
}

// Step returns the current wizard step.
func (w *BookingWizard) Step() int {
	return w.step
}

// Submitting checks if a store write is in flight
func (w *BookingWizard) Submitting() bool {
	return w.submitting
}

// SetSchedule records the chosen date, slot and consultation type.
// Evening slots force the online type; the in-person control is disabled
// for them, so a stale in-person choice is coerced rather than rejected.
func (w *BookingWizard) SetSchedule(date, slot string, ctype models.ConsultationType) {
	w.Date = date
	w.Time = slot
	w.Type = models.NormalizeConsultationType(slot, ctype)
}

// Next advances to the following step after validating the current one.
// A validation error blocks the advance and leaves all fields intact.
func (w *BookingWizard) Next() error {
	switch w.step {
	case StepSchedule:
		if err := w.validateSchedule(); err != nil {
			return err
		}
	case StepPersonal:
		if err := w.validatePersonal(); err != nil {
			return err
		}
	case StepReview:
		return nil // Submit finishes the wizard, not Next
	}
	w.step++
	return nil
}

// Back returns to the previous step. Entered values are preserved.
func (w *BookingWizard) Back() {
	if w.step > StepSchedule {
		w.step--
	}
}

func (w *BookingWizard) validateSchedule() error {
	if w.Date == "" {
		return ErrDateRequired
	}
	if w.Time == "" {
		return ErrTimeRequired
	}
	if !utils.IsISODate(w.Date) {
		return ErrDateRequired
	}
	today := w.clock().Format("2006-01-02")
	if w.Date < today {
		return ErrDateInPast
	}
	if !models.IsValidSlot(w.Time) {
		return ErrInvalidSlot
	}
	return nil
}

func (w *BookingWizard) validatePersonal() error {
	if w.ClientName == "" {
		return ErrNameRequired
	}
	if w.Phone == "" {
		return ErrPhoneRequired
	}
	if w.ServiceType == "" {
		return ErrServiceTypeRequired
	}
	if w.Email != "" && !utils.ValidateEmail(w.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Booking materializes the collected input as a new Pending booking.
// The slot rule is applied again so the stored type can never contradict
// the slot even if SetSchedule was bypassed.
func (w *BookingWizard) Booking() models.Booking {
	return models.Booking{
		ClientName:        w.ClientName,
		Email:             w.Email,
		Phone:             w.Phone,
		Date:              w.Date,
		Time:              w.Time,
		Type:              models.NormalizeConsultationType(w.Time, w.Type),
		ServiceType:       w.ServiceType,
		ConsultationTopic: w.ConsultationTopic,
		Notes:             w.Notes,
		Status:            models.BookingStatusPending,
	}
}

// Submit persists the booking through the store. The success callback runs
// only after the write resolves; on failure every entered value is kept so
// the visitor can retry. Re-entrant calls while a write is in flight fail
// fast instead of double-submitting.
func (w *BookingWizard) Submit(ctx context.Context, store BookingCreator, onSuccess func(models.Booking)) error {
	if w.step != StepReview {
		return ErrNotAtReviewStep
	}
	if w.submitting {
		return ErrSubmitInFlight
	}
	// Revalidate both steps; the review step itself has no inputs.
	if err := w.validateSchedule(); err != nil {
		return err
	}
	if err := w.validatePersonal(); err != nil {
		return err
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	booking := w.Booking()
	if err := store.CreateBooking(ctx, &booking); err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess(booking)
	}
	return nil
}
