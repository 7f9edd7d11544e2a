package models

import "fmt"

// Consultation slots are fixed half-hour labels. The morning block runs
// 10:00 through 15:30 and allows either consultation type; the evening
// block runs 16:00 through 22:00 and is online-only.
const eveningStartHour = 16

func buildSlots(startHour, startMin, endHour, endMin int) []string {
	var slots []string
	for h, m := startHour, startMin; h < endHour || (h == endHour && m <= endMin); {
		slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		m += 30
		if m >= 60 {
			m = 0
			h++
		}
	}
	return slots
}

var (
	morningSlots = buildSlots(10, 0, 15, 30)
	eveningSlots = buildSlots(16, 0, 22, 0)
)

// MorningSlots returns the morning slot labels (10:00–15:30).
func MorningSlots() []string {
	out := make([]string, len(morningSlots))
	copy(out, morningSlots)
	return out
}

// EveningSlots returns the evening slot labels (16:00–22:00).
func EveningSlots() []string {
	out := make([]string, len(eveningSlots))
	copy(out, eveningSlots)
	return out
}

// AllSlots returns morning slots followed by evening slots.
func AllSlots() []string {
	return append(MorningSlots(), EveningSlots()...)
}

// IsValidSlot checks if the label is one of the enumerated slots
func IsValidSlot(slot string) bool {
	for _, s := range morningSlots {
		if s == slot {
			return true
		}
	}
	for _, s := range eveningSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsEveningSlot checks if the slot belongs to the evening block
func IsEveningSlot(slot string) bool {
	if len(slot) < 2 {
		return false
	}
	var h, m int
	if _, err := fmt.Sscanf(slot, "%d:%d", &h, &m); err != nil {
		return false
	}
	return h >= eveningStartHour
}

// NormalizeConsultationType applies the slot rule: evening slots force an
// online consultation regardless of what the client asked for. Morning
// slots keep the requested type, defaulting to in-person when unset.
func NormalizeConsultationType(slot string, requested ConsultationType) ConsultationType {
	if IsEveningSlot(slot) {
		return ConsultationOnline
	}
	if requested == "" {
		return ConsultationInPerson
	}
	return requested
}
