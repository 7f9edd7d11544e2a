package services

import (
	"sort"
	"time"

	"lawfirm-server/models"
)

// Schedule filtering for the dashboard calendar. Dates are fixed-width ISO
// strings (YYYY-MM-DD) so lexicographic comparison orders them correctly.

const isoDate = "2006-01-02"

// FilterByDate returns the bookings whose date equals the selected day
// (mode A), in natural order, regardless of status.
func FilterByDate(bookings []models.Booking, date string) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

// UpcomingWindow returns the inclusive [today, today+windowDays] range for
// the default "upcoming" view (mode B).
func UpcomingWindow(now time.Time, windowDays int) (from, to string) {
	from = now.Format(isoDate)
	to = now.AddDate(0, 0, windowDays).Format(isoDate)
	return from, to
}

// FilterUpcoming returns bookings dated within the upcoming window,
// sorted ascending by date.
func FilterUpcoming(bookings []models.Booking, now time.Time, windowDays int) []models.Booking {
	from, to := UpcomingWindow(now, windowDays)
	var out []models.Booking
	for _, b := range bookings {
		if b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// DaysWithBookings returns the days of the given month that have at least
// one booking, independent of status. Drives the event dots on day cells.
func DaysWithBookings(bookings []models.Booking, year int, month time.Month) map[int]bool {
	days := make(map[int]bool)
	for _, b := range bookings {
		d, err := time.Parse(isoDate, b.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			days[d.Day()] = true
		}
	}
	return days
}

// ScheduleSummary holds the counts shown under the calendar widget.
type ScheduleSummary struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

// Summarize counts confirmed bookings and pending-like bookings in the
// filtered set. Pending is everything that is not Confirmed, Rejected or
// Completed, per Booking.IsPendingLike.
func Summarize(bookings []models.Booking) ScheduleSummary {
	var s ScheduleSummary
	for i := range bookings {
		if bookings[i].Status == models.BookingStatusConfirmed {
			s.Confirmed++
		} else if bookings[i].IsPendingLike() {
			s.Pending++
		}
	}
	return s
}

// NextMonth returns the first day of the month after the given one.
// Navigation always lands on day 1 rather than carrying the day-of-month.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// PrevMonth returns the first day of the month before the given one.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}
