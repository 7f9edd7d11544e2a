package services

import (
	"testing"
	"time"

	"lawfirm-server/models"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return d
}

func TestFilterByDate(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, Date: "2024-06-16", Status: models.BookingStatusPending},
		{ID: 2, Date: "2024-06-16", Status: models.BookingStatusRejected},
		{ID: 3, Date: "2024-06-17", Status: models.BookingStatusConfirmed},
	}

	got := FilterByDate(bookings, "2024-06-16")
	if len(got) != 2 {
		t.Fatalf("FilterByDate returned %d bookings, want 2", len(got))
	}
	// Status does not affect day filtering; the rejected one stays visible.
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("FilterByDate returned IDs %d,%d, want 1,2", got[0].ID, got[1].ID)
	}

	if got := FilterByDate(bookings, "2024-06-20"); len(got) != 0 {
		t.Fatalf("FilterByDate on empty day returned %d bookings", len(got))
	}
}

func TestUpcomingWindow(t *testing.T) {
	now := mustDate(t, "2024-06-15")
	from, to := UpcomingWindow(now, 5)
	if from != "2024-06-15" {
		t.Fatalf("from = %s, want 2024-06-15", from)
	}
	if to != "2024-06-20" {
		t.Fatalf("to = %s, want 2024-06-20", to)
	}
}

func TestUpcomingWindowCrossesMonth(t *testing.T) {
	now := mustDate(t, "2024-06-28")
	from, to := UpcomingWindow(now, 5)
	if from != "2024-06-28" || to != "2024-07-03" {
		t.Fatalf("window = [%s, %s], want [2024-06-28, 2024-07-03]", from, to)
	}
}

func TestFilterUpcoming(t *testing.T) {
	now := mustDate(t, "2024-06-15")
	bookings := []models.Booking{
		{ID: 1, Date: "2024-06-14"}, // yesterday, excluded
		{ID: 2, Date: "2024-06-15"}, // today, included
		{ID: 3, Date: "2024-06-20"}, // last day of window, included
		{ID: 4, Date: "2024-06-21"}, // one past the window, excluded
		{ID: 5, Date: "2024-06-17"},
	}

	got := FilterUpcoming(bookings, now, 5)
	if len(got) != 3 {
		t.Fatalf("FilterUpcoming returned %d bookings, want 3", len(got))
	}
	wantOrder := []uint{2, 5, 3} // ascending by date
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("FilterUpcoming order[%d] = %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestFilterUpcomingStableWithinDay(t *testing.T) {
	now := mustDate(t, "2024-06-15")
	bookings := []models.Booking{
		{ID: 7, Date: "2024-06-16"},
		{ID: 3, Date: "2024-06-16"},
		{ID: 9, Date: "2024-06-16"},
	}

	got := FilterUpcoming(bookings, now, 5)
	wantOrder := []uint{7, 3, 9}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("same-day order[%d] = %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestDaysWithBookings(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2024-06-03"},
		{Date: "2024-06-03"},
		{Date: "2024-06-18", Status: models.BookingStatusRejected},
		{Date: "2024-07-01"},
		{Date: "not-a-date"},
	}

	days := DaysWithBookings(bookings, 2024, time.June)
	if len(days) != 2 {
		t.Fatalf("DaysWithBookings returned %d days, want 2", len(days))
	}
	if !days[3] || !days[18] {
		t.Fatalf("DaysWithBookings = %v, want days 3 and 18", days)
	}
}

func TestSummarize(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.BookingStatusConfirmed},
		{Status: models.BookingStatusConfirmed},
		{Status: models.BookingStatusPending},
		{Status: models.BookingStatusRejected},
		{Status: models.BookingStatusCompleted},
		{Status: models.BookingStatus("Awaiting")}, // unknown counts as pending
	}

	got := Summarize(bookings)
	if got.Confirmed != 2 {
		t.Fatalf("Confirmed = %d, want 2", got.Confirmed)
	}
	if got.Pending != 2 {
		t.Fatalf("Pending = %d, want 2", got.Pending)
	}
}

func TestMonthNavigation(t *testing.T) {
	y, m := NextMonth(2024, time.December)
	if y != 2025 || m != time.January {
		t.Fatalf("NextMonth(2024, December) = %d %s", y, m)
	}

	y, m = PrevMonth(2024, time.January)
	if y != 2023 || m != time.December {
		t.Fatalf("PrevMonth(2024, January) = %d %s", y, m)
	}

	// Navigating from a 31-day month never skips a month because
	// navigation always starts from day 1.
	y, m = NextMonth(2024, time.January)
	if y != 2024 || m != time.February {
		t.Fatalf("NextMonth(2024, January) = %d %s", y, m)
	}
}
