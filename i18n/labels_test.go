package i18n

import (
	"testing"

	"lawfirm-server/models"
)

func TestParseLocale(t *testing.T) {
	if got := ParseLocale("en"); got != LocaleEnglish {
		t.Fatalf("ParseLocale(en) = %s", got)
	}
	if got := ParseLocale("ar"); got != LocaleArabic {
		t.Fatalf("ParseLocale(ar) = %s", got)
	}
	// Anything unknown falls back to the default.
	if got := ParseLocale("fr"); got != DefaultLocale {
		t.Fatalf("ParseLocale(fr) = %s, want default", got)
	}
	if got := ParseLocale(""); got != DefaultLocale {
		t.Fatalf("ParseLocale(empty) = %s, want default", got)
	}
}

func TestStatusLabels(t *testing.T) {
	if got := StatusLabel(models.BookingStatusPending, LocaleArabic); got != "انتظار" {
		t.Fatalf("Arabic pending label = %q", got)
	}
	if got := StatusLabel(models.BookingStatusConfirmed, LocaleEnglish); got != "Confirmed" {
		t.Fatalf("English confirmed label = %q", got)
	}
	// Unknown enum values fall through to the raw string.
	if got := StatusLabel(models.BookingStatus("Archived"), LocaleArabic); got != "Archived" {
		t.Fatalf("unknown status label = %q", got)
	}
}

func TestEveryEnumHasLabelsInBothLocales(t *testing.T) {
	for _, loc := range []Locale{LocaleArabic, LocaleEnglish} {
		for _, st := range models.ServiceTypes {
			if ServiceTypeLabel(st, loc) == string(st) {
				t.Fatalf("service type %s has no %s label", st, loc)
			}
		}
		for _, s := range []models.BookingStatus{
			models.BookingStatusPending,
			models.BookingStatusConfirmed,
			models.BookingStatusRejected,
			models.BookingStatusCompleted,
		} {
			if StatusLabel(s, loc) == "" {
				t.Fatalf("status %s has no %s label", s, loc)
			}
		}
		for _, ct := range []models.ConsultationType{models.ConsultationInPerson, models.ConsultationOnline} {
			if ConsultationTypeLabel(ct, loc) == string(ct) {
				t.Fatalf("consultation type %s has no %s label", ct, loc)
			}
		}
	}
}

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		slot string
		loc  Locale
		want string
	}{
		{"10:00", LocaleArabic, "10:00 ص"},
		{"10:00", LocaleEnglish, "10:00 AM"},
		{"12:00", LocaleEnglish, "12:00 PM"},
		{"19:30", LocaleArabic, "07:30 م"},
		{"19:30", LocaleEnglish, "7:30 PM"},
		{"bogus", LocaleEnglish, "bogus"},
	}

	for _, tt := range tests {
		if got := SlotLabel(tt.slot, tt.loc); got != tt.want {
			t.Fatalf("SlotLabel(%q, %s) = %q, want %q", tt.slot, tt.loc, got, tt.want)
		}
	}
}
