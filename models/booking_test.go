package models

import (
	"errors"
	"testing"
)

func TestAcceptOnlyFromPending(t *testing.T) {
	tests := []struct {
		name    string
		status  BookingStatus
		wantErr bool
	}{
		{"pending", BookingStatusPending, false},
		{"confirmed", BookingStatusConfirmed, true},
		{"rejected", BookingStatusRejected, true},
		{"completed", BookingStatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{Status: tt.status}
			err := b.Accept()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Accept() from %s: expected error, got nil", tt.status)
				}
				if b.Status != tt.status {
					t.Fatalf("Accept() from %s mutated status to %s", tt.status, b.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("Accept() from %s: unexpected error: %v", tt.status, err)
			}
			if b.Status != BookingStatusConfirmed {
				t.Fatalf("Accept() status = %s, want %s", b.Status, BookingStatusConfirmed)
			}
		})
	}
}

func TestRejectRecordsReason(t *testing.T) {
	b := Booking{Status: BookingStatusPending}
	if err := b.Reject("conflict with court session"); err != nil {
		t.Fatalf("Reject() unexpected error: %v", err)
	}
	if b.Status != BookingStatusRejected {
		t.Fatalf("Reject() status = %s, want %s", b.Status, BookingStatusRejected)
	}
	if b.RejectionReason != "conflict with court session" {
		t.Fatalf("Reject() reason = %q", b.RejectionReason)
	}
}

func TestRejectWithoutReason(t *testing.T) {
	b := Booking{Status: BookingStatusPending}
	if err := b.Reject(""); err != nil {
		t.Fatalf("Reject() unexpected error: %v", err)
	}
	if b.RejectionReason != "" {
		t.Fatalf("Reject() reason = %q, want empty", b.RejectionReason)
	}
}

func TestCompleteOnlyFromConfirmed(t *testing.T) {
	tests := []struct {
		status  BookingStatus
		wantErr bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, false},
		{BookingStatusRejected, true},
		{BookingStatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := Booking{Status: tt.status}
			err := b.Complete()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Complete() from %s: err = %v, wantErr = %v", tt.status, err, tt.wantErr)
			}
			if !tt.wantErr && b.Status != BookingStatusCompleted {
				t.Fatalf("Complete() status = %s, want %s", b.Status, BookingStatusCompleted)
			}
		})
	}
}

func TestInvalidTransitionErrorDetails(t *testing.T) {
	b := Booking{Status: BookingStatusRejected}
	err := b.Accept()

	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("Accept() error type = %T, want *InvalidTransitionError", err)
	}
	if invalid.From != BookingStatusRejected {
		t.Fatalf("From = %s, want %s", invalid.From, BookingStatusRejected)
	}
	if invalid.Action != ActionAccept {
		t.Fatalf("Action = %s, want %s", invalid.Action, ActionAccept)
	}
}

func TestTerminalStatesStayTerminal(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusRejected, BookingStatusCompleted} {
		b := Booking{Status: status}
		if err := b.Accept(); err == nil {
			t.Fatalf("Accept() from terminal %s succeeded", status)
		}
		if err := b.Reject("late"); err == nil {
			t.Fatalf("Reject() from terminal %s succeeded", status)
		}
		if err := b.Complete(); err == nil {
			t.Fatalf("Complete() from terminal %s succeeded", status)
		}
		if !b.IsTerminal() {
			t.Fatalf("IsTerminal() = false for %s", status)
		}
	}
}

func TestIsPendingLike(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, false},
		{BookingStatusRejected, false},
		{BookingStatusCompleted, false},
		// Unknown values from older rows still count as pending
		{BookingStatus("Awaiting"), true},
		{BookingStatus(""), true},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.status}
		if got := b.IsPendingLike(); got != tt.want {
			t.Fatalf("IsPendingLike() for %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   []BookingAction
	}{
		{BookingStatusPending, []BookingAction{ActionAccept, ActionReject}},
		{BookingStatusConfirmed, []BookingAction{ActionComplete}},
		{BookingStatusRejected, nil},
		{BookingStatusCompleted, nil},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.status}
		got := b.AvailableActions()
		if len(got) != len(tt.want) {
			t.Fatalf("AvailableActions() for %s = %v, want %v", tt.status, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("AvailableActions() for %s = %v, want %v", tt.status, got, tt.want)
			}
		}
	}
}

func TestIsValidServiceType(t *testing.T) {
	for _, st := range ServiceTypes {
		if !IsValidServiceType(st) {
			t.Fatalf("IsValidServiceType(%s) = false", st)
		}
	}
	if IsValidServiceType("tax") {
		t.Fatal("IsValidServiceType(tax) = true, want false")
	}
	if IsValidServiceType("") {
		t.Fatal("IsValidServiceType(empty) = true, want false")
	}
}
