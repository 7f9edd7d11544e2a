package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCompleted BookingStatus = "Completed"
)

type ConsultationType string

const (
	ConsultationInPerson ConsultationType = "in_person"
	ConsultationOnline   ConsultationType = "online"
)

type ServiceType string

const (
	ServiceTypeGeneral        ServiceType = "general"
	ServiceTypeCommercial     ServiceType = "commercial"
	ServiceTypeLabor          ServiceType = "labor"
	ServiceTypeCriminal       ServiceType = "criminal"
	ServiceTypePersonalStatus ServiceType = "personal_status"
	ServiceTypeContracts      ServiceType = "contracts"
	ServiceTypeOther          ServiceType = "other"
)

// ServiceTypes lists every selectable consultation category.
var ServiceTypes = []ServiceType{
	ServiceTypeGeneral,
	ServiceTypeCommercial,
	ServiceTypeLabor,
	ServiceTypeCriminal,
	ServiceTypePersonalStatus,
	ServiceTypeContracts,
	ServiceTypeOther,
}

// IsValidServiceType checks if the service type is one of the known categories
func IsValidServiceType(s ServiceType) bool {
	for _, st := range ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	ClientName        string           `json:"client_name" gorm:"size:255;not null"`
	Email             string           `json:"email" gorm:"size:255"`
	Phone             string           `json:"phone" gorm:"size:20;not null"`
	Date              string           `json:"date" gorm:"size:10;not null;index"` // ISO YYYY-MM-DD
	Time              string           `json:"time" gorm:"size:5;not null"`        // HH:MM slot label
	Type              ConsultationType `json:"type" gorm:"type:varchar(20);not null;default:'in_person';check:type IN ('in_person','online')"`
	ServiceType       ServiceType      `json:"service_type" gorm:"type:varchar(30);not null"`
	ConsultationTopic string           `json:"consultation_topic" gorm:"size:255"`
	Notes             string           `json:"notes" gorm:"size:1000"`
	Status            BookingStatus    `json:"status" gorm:"type:varchar(20);not null;default:'Pending';check:status IN ('Pending','Confirmed','Rejected','Completed')"`
	RejectionReason   string           `json:"rejection_reason" gorm:"size:500"`
	CreatedAt         time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BookingAction is a transition the admin may invoke on a booking.
type BookingAction string

const (
	ActionAccept   BookingAction = "accept"
	ActionReject   BookingAction = "reject"
	ActionComplete BookingAction = "complete"
)

// InvalidTransitionError is returned when a transition is attempted from a
// status that does not allow it.
type InvalidTransitionError struct {
	From   BookingStatus
	Action BookingAction
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s booking in status %s", e.Action, e.From)
}

// Accept moves a pending booking to Confirmed.
func (b *Booking) Accept() error {
	if b.Status != BookingStatusPending {
		return &InvalidTransitionError{From: b.Status, Action: ActionAccept}
	}
	b.Status = BookingStatusConfirmed
	return nil
}

// Reject moves a pending booking to Rejected. The reason is optional and
// stored verbatim when given.
func (b *Booking) Reject(reason string) error {
	if b.Status != BookingStatusPending {
		return &InvalidTransitionError{From: b.Status, Action: ActionReject}
	}
	b.Status = BookingStatusRejected
	b.RejectionReason = reason
	return nil
}

// Complete moves a confirmed booking to Completed.
func (b *Booking) Complete() error {
	if b.Status != BookingStatusConfirmed {
		return &InvalidTransitionError{From: b.Status, Action: ActionComplete}
	}
	b.Status = BookingStatusCompleted
	return nil
}

// IsTerminal checks if no further transition exists for this booking.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusRejected || b.Status == BookingStatusCompleted
}

// IsPendingLike treats every status that is not Confirmed, Rejected or
// Completed as waiting for moderation, so unknown status values still land
// in the pending bucket of schedule summaries.
func (b *Booking) IsPendingLike() bool {
	switch b.Status {
	case BookingStatusConfirmed, BookingStatusRejected, BookingStatusCompleted:
		return false
	default:
		return true
	}
}

// AvailableActions returns the transitions valid for the current status.
// Terminal states return an empty list so the dashboard offers no controls.
func (b *Booking) AvailableActions() []BookingAction {
	switch b.Status {
	case BookingStatusPending:
		return []BookingAction{ActionAccept, ActionReject}
	case BookingStatusConfirmed:
		return []BookingAction{ActionComplete}
	default:
		return nil
	}
}
