// Package i18n maps stable enum values to display strings per locale.
// Business logic must branch on the enum, never on the localized label.
package i18n

import (
	"fmt"

	"lawfirm-server/models"
)

type Locale string

const (
	LocaleArabic  Locale = "ar"
	LocaleEnglish Locale = "en"
)

// DefaultLocale is Arabic, matching the primary audience of the site.
const DefaultLocale = LocaleArabic

var serviceTypeLabels = map[Locale]map[models.ServiceType]string{
	LocaleArabic: {
		models.ServiceTypeGeneral:        "استشارة عامة",
		models.ServiceTypeCommercial:     "قضايا تجارية",
		models.ServiceTypeLabor:          "قضايا عمالية",
		models.ServiceTypeCriminal:       "قضايا جنائية",
		models.ServiceTypePersonalStatus: "أحوال شخصية",
		models.ServiceTypeContracts:      "صياغة عقود",
		models.ServiceTypeOther:          "أخرى",
	},
	LocaleEnglish: {
		models.ServiceTypeGeneral:        "General Consultation",
		models.ServiceTypeCommercial:     "Commercial Cases",
		models.ServiceTypeLabor:          "Labor Cases",
		models.ServiceTypeCriminal:       "Criminal Cases",
		models.ServiceTypePersonalStatus: "Personal Status",
		models.ServiceTypeContracts:      "Contract Drafting",
		models.ServiceTypeOther:          "Other",
	},
}

var statusLabels = map[Locale]map[models.BookingStatus]string{
	LocaleArabic: {
		models.BookingStatusPending:   "انتظار",
		models.BookingStatusConfirmed: "مؤكد",
		models.BookingStatusRejected:  "مرفوض",
		models.BookingStatusCompleted: "منتهي",
	},
	LocaleEnglish: {
		models.BookingStatusPending:   "Pending",
		models.BookingStatusConfirmed: "Confirmed",
		models.BookingStatusRejected:  "Rejected",
		models.BookingStatusCompleted: "Completed",
	},
}

var consultationTypeLabels = map[Locale]map[models.ConsultationType]string{
	LocaleArabic: {
		models.ConsultationInPerson: "حضور شخصي",
		models.ConsultationOnline:   "عن بعد (أونلاين)",
	},
	LocaleEnglish: {
		models.ConsultationInPerson: "In-Person",
		models.ConsultationOnline:   "Online",
	},
}

var employeeRoleLabels = map[Locale]map[models.EmployeeRole]string{
	LocaleArabic: {
		models.EmployeeRoleLawyer:     "محامي",
		models.EmployeeRoleParalegal:  "مساعد قانوني",
		models.EmployeeRoleSecretary:  "سكرتير",
		models.EmployeeRoleAccountant: "محاسب",
		models.EmployeeRoleManager:    "مدير",
	},
	LocaleEnglish: {
		models.EmployeeRoleLawyer:     "Lawyer",
		models.EmployeeRoleParalegal:  "Paralegal",
		models.EmployeeRoleSecretary:  "Secretary",
		models.EmployeeRoleAccountant: "Accountant",
		models.EmployeeRoleManager:    "Manager",
	},
}

// ParseLocale returns the locale for a raw query/header value, falling back
// to the default for anything unknown.
func ParseLocale(raw string) Locale {
	switch Locale(raw) {
	case LocaleArabic, LocaleEnglish:
		return Locale(raw)
	default:
		return DefaultLocale
	}
}

// ServiceTypeLabel returns the display label for a consultation category.
func ServiceTypeLabel(s models.ServiceType, loc Locale) string {
	if l, ok := serviceTypeLabels[loc][s]; ok {
		return l
	}
	return string(s)
}

// StatusLabel returns the display label for a booking status.
func StatusLabel(s models.BookingStatus, loc Locale) string {
	if l, ok := statusLabels[loc][s]; ok {
		return l
	}
	return string(s)
}

// ConsultationTypeLabel returns the display label for a consultation type.
func ConsultationTypeLabel(t models.ConsultationType, loc Locale) string {
	if l, ok := consultationTypeLabels[loc][t]; ok {
		return l
	}
	return string(t)
}

// EmployeeRoleLabel returns the display label for a staff role.
func EmployeeRoleLabel(r models.EmployeeRole, loc Locale) string {
	if l, ok := employeeRoleLabels[loc][r]; ok {
		return l
	}
	return string(r)
}

// SlotLabel renders an HH:MM slot as a localized 12-hour label, e.g.
// "10:00 ص" / "10:00 AM" and "19:30 م" as "07:30 م" / "7:30 PM".
func SlotLabel(slot string, loc Locale) string {
	var h, m int
	if _, err := fmt.Sscanf(slot, "%d:%d", &h, &m); err != nil {
		return slot
	}
	suffixAr, suffixEn := "ص", "AM"
	if h >= 12 {
		suffixAr, suffixEn = "م", "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	if loc == LocaleEnglish {
		return fmt.Sprintf("%d:%02d %s", h12, m, suffixEn)
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffixAr)
}
