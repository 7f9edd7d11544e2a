package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"lawfirm-server/models"
)

// fakeStore records created bookings and can be told to fail.
type fakeStore struct {
	created []models.Booking
	err     error
}

func (f *fakeStore) CreateBooking(_ context.Context, booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	booking.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *booking)
	return nil
}

func fixedClock(value string) func() time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return func() time.Time { return t }
}

func newTestWizard() *BookingWizard {
	w := NewBookingWizard()
	w.clock = fixedClock("2024-06-15")
	return w
}

func TestWizardStepGating(t *testing.T) {
	w := newTestWizard()
	if w.Step() != StepSchedule {
		t.Fatalf("new wizard step = %d, want %d", w.Step(), StepSchedule)
	}

	// Cannot advance without a schedule.
	if err := w.Next(); !errors.Is(err, ErrDateRequired) {
		t.Fatalf("Next() without date: err = %v, want ErrDateRequired", err)
	}
	if w.Step() != StepSchedule {
		t.Fatalf("failed Next() advanced to step %d", w.Step())
	}

	w.SetSchedule("2024-06-16", "10:00", models.ConsultationInPerson)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() after schedule: %v", err)
	}
	if w.Step() != StepPersonal {
		t.Fatalf("step = %d, want %d", w.Step(), StepPersonal)
	}

	// Cannot advance without the required personal fields.
	if err := w.Next(); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("Next() without name: err = %v, want ErrNameRequired", err)
	}

	w.ClientName = "Ahmed Salem"
	w.Phone = "+22244556677"
	w.ServiceType = models.ServiceTypeCommercial
	if err := w.Next(); err != nil {
		t.Fatalf("Next() after personal: %v", err)
	}
	if w.Step() != StepReview {
		t.Fatalf("step = %d, want %d", w.Step(), StepReview)
	}
}

func TestWizardScheduleValidation(t *testing.T) {
	tests := []struct {
		name string
		date string
		slot string
		want error
	}{
		{"missing date", "", "10:00", ErrDateRequired},
		{"missing slot", "2024-06-16", "", ErrTimeRequired},
		{"malformed date", "16/06/2024", "10:00", ErrDateRequired},
		{"past date", "2024-06-14", "10:00", ErrDateInPast},
		{"unknown slot", "2024-06-16", "09:00", ErrInvalidSlot},
		{"today is allowed", "2024-06-15", "10:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard()
			w.SetSchedule(tt.date, tt.slot, models.ConsultationInPerson)
			err := w.Next()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Next() err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWizardBackPreservesValues(t *testing.T) {
	w := newTestWizard()
	w.SetSchedule("2024-06-16", "11:00", models.ConsultationOnline)
	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}
	w.ClientName = "Fatima Mint"
	w.Phone = "44556677"

	w.Back()
	if w.Step() != StepSchedule {
		t.Fatalf("Back() step = %d, want %d", w.Step(), StepSchedule)
	}
	if w.ClientName != "Fatima Mint" || w.Phone != "44556677" {
		t.Fatal("Back() dropped entered personal values")
	}
	if w.Date != "2024-06-16" || w.Time != "11:00" {
		t.Fatal("Back() dropped the chosen schedule")
	}

	// Back from the first step is a no-op.
	w.Back()
	if w.Step() != StepSchedule {
		t.Fatalf("Back() below first step = %d", w.Step())
	}
}

func TestWizardEveningSlotForcesOnline(t *testing.T) {
	w := newTestWizard()
	w.SetSchedule("2024-06-16", "19:00", models.ConsultationInPerson)
	if w.Type != models.ConsultationOnline {
		t.Fatalf("evening slot type = %s, want %s", w.Type, models.ConsultationOnline)
	}

	b := w.Booking()
	if b.Type != models.ConsultationOnline {
		t.Fatalf("built booking type = %s, want %s", b.Type, models.ConsultationOnline)
	}
}

func TestWizardSubmit(t *testing.T) {
	w := newTestWizard()
	w.SetSchedule("2024-06-16", "10:30", models.ConsultationInPerson)
	w.ClientName = "Ahmed Salem"
	w.Phone = "+22244556677"
	w.Email = "ahmed@example.com"
	w.ServiceType = models.ServiceTypeLabor
	w.ConsultationTopic = "Dismissal claim"

	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}

	store := &fakeStore{}
	var notified models.Booking
	err := w.Submit(context.Background(), store, func(b models.Booking) {
		notified = b
	})
	if err != nil {
		t.Fatalf("Submit(): %v", err)
	}

	if len(store.created) != 1 {
		t.Fatalf("store has %d bookings, want 1", len(store.created))
	}
	created := store.created[0]
	if created.Status != models.BookingStatusPending {
		t.Fatalf("created status = %s, want %s", created.Status, models.BookingStatusPending)
	}
	if created.ClientName != "Ahmed Salem" || created.Date != "2024-06-16" || created.Time != "10:30" {
		t.Fatalf("created booking fields wrong: %+v", created)
	}
	if notified.ID == 0 {
		t.Fatal("success callback did not receive the stored booking")
	}
}

func TestWizardSubmitRequiresReviewStep(t *testing.T) {
	w := newTestWizard()
	w.SetSchedule("2024-06-16", "10:00", models.ConsultationInPerson)

	err := w.Submit(context.Background(), &fakeStore{}, nil)
	if !errors.Is(err, ErrNotAtReviewStep) {
		t.Fatalf("Submit() before review: err = %v, want ErrNotAtReviewStep", err)
	}
}

func TestWizardSubmitFailureKeepsValues(t *testing.T) {
	w := newTestWizard()
	w.SetSchedule("2024-06-16", "10:00", models.ConsultationInPerson)
	w.ClientName = "Ahmed Salem"
	w.Phone = "44556677"
	w.ServiceType = models.ServiceTypeGeneral
	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}

	store := &fakeStore{err: errors.New("connection refused")}
	callbackRan := false
	err := w.Submit(context.Background(), store, func(models.Booking) {
		callbackRan = true
	})
	if err == nil {
		t.Fatal("Submit() with failing store returned nil")
	}
	if callbackRan {
		t.Fatal("success callback ran on a failed write")
	}
	if w.ClientName != "Ahmed Salem" || w.Date != "2024-06-16" {
		t.Fatal("failed Submit() dropped entered values")
	}
	if w.Step() != StepReview {
		t.Fatalf("failed Submit() moved wizard to step %d", w.Step())
	}
	if w.Submitting() {
		t.Fatal("Submitting() still true after a failed write")
	}

	// Retry against a working store succeeds with the same values.
	if err := w.Submit(context.Background(), &fakeStore{}, nil); err != nil {
		t.Fatalf("retry Submit(): %v", err)
	}
}

func TestWizardSubmitRevalidates(t *testing.T) {
	w := newTestWizard()
	w.SetSchedule("2024-06-16", "10:00", models.ConsultationInPerson)
	w.ClientName = "Ahmed Salem"
	w.Phone = "44556677"
	w.ServiceType = models.ServiceTypeGeneral
	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}

	// Corrupt a field after passing the gates; Submit must catch it.
	w.Email = "not-an-email"
	store := &fakeStore{}
	err := w.Submit(context.Background(), store, nil)
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("Submit() err = %v, want ErrInvalidEmail", err)
	}
	if len(store.created) != 0 {
		t.Fatal("invalid submission reached the store")
	}
}
